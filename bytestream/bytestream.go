// Package bytestream provides convenience entry points specialised to
// byte and rune input, the layer the core combinator surface leaves out by
// design: Term and Match work over any symbol type, but most callers match
// against []byte or a string and want a literal-text constructor plus a
// reusable matcher that takes advantage of the literal/prefilter packages
// without having to wire them by hand each time.
package bytestream

import (
	"github.com/coregx/aregex"
	"github.com/coregx/aregex/literal"
	"github.com/coregx/aregex/prefilter"
)

// Literal builds a term matching exactly the bytes of s.
func Literal(s string) aregex.Term[byte, []byte] {
	return aregex.String([]byte(s))
}

// LiteralRunes builds a term matching exactly the runes of s.
func LiteralRunes(s string) aregex.Term[rune, []rune] {
	return aregex.String([]rune(s))
}

// MatchBytes runs t against b and reports whether the whole of b matches,
// together with t's result on success. It is aregex.Match specialised to
// byte input, with no prefilter: callers who run the same term repeatedly
// should build a Matcher instead.
func MatchBytes[A any](t aregex.Term[byte, A], b []byte) (A, bool) {
	return aregex.Match(t, b)
}

// MatchString runs t against s's runes and reports whether the whole of s
// matches, together with t's result on success.
func MatchString[A any](t aregex.Term[rune, A], s string) (A, bool) {
	return aregex.Match(t, []rune(s))
}

// Matcher wraps a byte term with the fast-reject hints the prefilter
// package can derive from it, so repeated matching against the same term
// does not redo that analysis on every call.
type Matcher[A any] struct {
	term     aregex.Term[byte, A]
	lits     *prefilter.Prefilter
	required byte
	hasReq   bool
}

// NewMatcher builds a Matcher for t. When cfg.EnablePrefilter is set, it
// extracts whatever fast-reject hints literal and prefilter can determine
// from t's structure; Match below falls back to the full thread simulation
// whenever those hints don't settle the answer on their own.
func NewMatcher[A any](t aregex.Term[byte, A], cfg aregex.Config) *Matcher[A] {
	m := &Matcher[A]{term: t}
	if !cfg.EnablePrefilter {
		return m
	}
	if lits, ok := literal.ExtractAlternatives(t); ok && shortestLen(lits) >= cfg.MinLiteralLen {
		if pf, err := prefilter.Build(lits, cfg.AhoCorasickThreshold); err == nil {
			m.lits = pf
		}
	}
	if b, ok := prefilter.RequiredByte(t); ok {
		m.required, m.hasReq = b, true
	}
	return m
}

// shortestLen returns the length of the shortest literal in lits, or -1 if
// lits is empty.
func shortestLen(lits [][]byte) int {
	shortest := -1
	for _, lit := range lits {
		if shortest == -1 || len(lit) < shortest {
			shortest = len(lit)
		}
	}
	return shortest
}

// Match reports whether input matches m's term, and the term's result on
// success.
func (m *Matcher[A]) Match(input []byte) (A, bool) {
	if m.lits != nil && !m.lits.Matches(input) {
		var zero A
		return zero, false
	}
	if m.hasReq && !prefilter.ContainsByte(input, m.required) {
		var zero A
		return zero, false
	}
	return aregex.Match(m.term, input)
}

// BoolMatcher is Matcher narrowed to the common case of wanting only a
// yes/no answer. When t is entirely a literal alternation, cfg enables the
// prefilter, and no literal is shorter than cfg.MinLiteralLen, the
// BoolMatcher decides membership with the prefilter's automaton or
// comparison directly and never runs the thread simulation at all; in every
// other case it runs the thread simulation.
type BoolMatcher struct {
	voided aregex.Term[byte, aregex.Unit]
	lits   *prefilter.Prefilter
}

// NewBoolMatcher builds a BoolMatcher for t.
func NewBoolMatcher[A any](t aregex.Term[byte, A], cfg aregex.Config) *BoolMatcher {
	bm := &BoolMatcher{voided: aregex.Void(t)}
	if !cfg.EnablePrefilter {
		return bm
	}
	if lits, ok := literal.ExtractAlternatives(t); ok && shortestLen(lits) >= cfg.MinLiteralLen {
		if pf, err := prefilter.Build(lits, cfg.AhoCorasickThreshold); err == nil {
			bm.lits = pf
		}
	}
	return bm
}

// Match reports whether input matches. If the term was recognised as a
// literal alternation, this is exact and skips the thread simulation.
func (bm *BoolMatcher) Match(input []byte) bool {
	if bm.lits != nil {
		return bm.lits.Matches(input)
	}
	_, ok := aregex.Match(bm.voided, input)
	return ok
}

// Compile validates cfg, rejects t if it exceeds cfg.MaxLiveThreads, and
// otherwise builds a Matcher for t — the same construction the teacher's own
// root package offers for a pattern string, here wrapping an already-built
// term instead of parsing one, since this engine builds terms from
// combinators rather than a pattern-string DSL.
func Compile[A any](t aregex.Term[byte, A], cfg aregex.Config) (*Matcher[A], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n := aregex.SymbolCount(t); n > cfg.MaxLiveThreads {
		return nil, &aregex.ThreadLimitError{SymbolCount: n, Limit: cfg.MaxLiveThreads}
	}
	return NewMatcher(t, cfg), nil
}

// MustCompile is Compile, but panics instead of returning an error. Use it
// for terms and configs fixed at init time.
func MustCompile[A any](t aregex.Term[byte, A], cfg aregex.Config) *Matcher[A] {
	m, err := Compile(t, cfg)
	if err != nil {
		panic(err)
	}
	return m
}
