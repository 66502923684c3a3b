package aregex

import (
	"errors"
	"fmt"
)

// ErrTooComplex indicates a term was rejected for exceeding
// Config.MaxLiveThreads before any matching was attempted.
var ErrTooComplex = errors.New("aregex: term too complex")

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("aregex: invalid config field %q: %s", e.Field, e.Message)
}

// PrefilterError reports a failure building a literal-based prefilter,
// returned by prefilter.Build and prefilter.FromTerm. bytestream's matcher
// constructors do not return it: they fall back to the thread simulation
// when a prefilter cannot be built. The core Match entry point never
// returns this: it recognises only match and no-match (spec §7). Prefilter
// construction can fail before any input is seen because it depends on
// external term structure (an extracted literal set) rather than purely on
// well-typed combinator use.
type PrefilterError struct {
	Reason string
	Err    error
}

func (e *PrefilterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aregex: prefilter: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("aregex: prefilter: %s", e.Reason)
}

func (e *PrefilterError) Unwrap() error {
	return e.Err
}

// ThreadLimitError reports that a term's Symbol-node count exceeded
// Config.MaxLiveThreads, returned by bytestream.Compile before it builds a
// Matcher.
type ThreadLimitError struct {
	SymbolCount int
	Limit       int
}

func (e *ThreadLimitError) Error() string {
	return fmt.Sprintf("aregex: term has %d symbol nodes, exceeding MaxLiveThreads (%d)", e.SymbolCount, e.Limit)
}

func (e *ThreadLimitError) Unwrap() error {
	return ErrTooComplex
}
