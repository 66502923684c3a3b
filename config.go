package aregex

// Config controls the optional byte-oriented fast paths in the bytestream
// and prefilter packages, plus the belt-and-braces complexity cap enforced
// at construction time. The core Match entry point in this package ignores
// Config entirely — it always runs the full thread simulation — because the
// engine's cost is already bounded by spec: O(#Symbol nodes) live threads
// per step, independent of Config. Config exists for callers that build on
// bytestream.Compile and want to trade prefilter setup cost for a faster
// rejection path on non-matching input, or reject pathologically large terms
// before ever running one.
//
// Example:
//
//	config := aregex.DefaultConfig()
//	config.MinLiteralLen = 3
//	m, err := bytestream.Compile(term, config)
type Config struct {
	// EnablePrefilter turns on literal-based prefiltering in the bytestream
	// package (an Aho-Corasick or single-byte scan run before the thread
	// simulation, to reject inputs that cannot possibly match). Default:
	// true.
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal an extracted literal set may
	// contain before bytestream.NewMatcher and NewBoolMatcher will use it to
	// build a prefilter. Below this length, the thread simulation is already
	// cheap enough that the automaton or comparison overhead isn't worth
	// paying — unlike a find-anywhere engine's prefix/suffix hints, this
	// module's literal-set prefilter is an exact decision procedure (see
	// prefilter's package doc), so a too-short literal is skipped by leaving
	// the whole set out of the prefilter rather than by narrowing the set,
	// which would make the decision unsound. Default: 1.
	MinLiteralLen int

	// AhoCorasickThreshold is the number of literal alternatives at or above
	// which prefilter.Build constructs an Aho-Corasick automaton instead of
	// comparing the input against each literal in turn. A set of exactly one
	// literal is always compared directly. Default: 8.
	AhoCorasickThreshold int

	// MaxLiveThreads is the largest number of distinct Symbol nodes
	// bytestream.Compile will accept in a term before refusing to build a
	// Matcher. It is a belt-and-braces cap on top of spec.md §5's existing
	// O(#Symbol nodes) bound: that bound keeps any single term's matching
	// cost linear in its own size, but says nothing about how large a term a
	// caller might hand Compile in the first place (e.g. one assembled
	// programmatically from untrusted input). Default: 10000.
	MaxLiveThreads int
}

// DefaultConfig returns a Config with sensible defaults: prefiltering
// enabled, single-byte literals allowed, an Aho-Corasick threshold that
// matches the point past which a handful of independent literal comparisons
// cost more than building one automaton, and a live-thread cap generous enough
// for any hand-written term.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		MinLiteralLen:        1,
		AhoCorasickThreshold: 8,
		MaxLiveThreads:       10000,
	}
}

// Validate reports an error if c's fields are out of range.
func (c Config) Validate() error {
	if c.MinLiteralLen < 1 {
		return &ConfigError{Field: "MinLiteralLen", Message: "must be at least 1"}
	}
	if c.AhoCorasickThreshold < 1 {
		return &ConfigError{Field: "AhoCorasickThreshold", Message: "must be at least 1"}
	}
	if c.MaxLiveThreads < 1 {
		return &ConfigError{Field: "MaxLiveThreads", Message: "must be at least 1"}
	}
	return nil
}
