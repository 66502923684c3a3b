// Package prefilter turns a literal set extracted by the literal package into
// a direct membership test, bypassing thread simulation entirely.
//
// Under full-input-match semantics a term recognising a finite literal set L
// matches an input xs iff xs is equal to some member of L — there is no
// "candidate" vs "confirmed" distinction the way a substring search prefilter
// has for a find-anywhere engine. So where the teacher's meta package used
// Aho-Corasick as a fast candidate generator ahead of a confirming NFA walk
// (see DESIGN.md), Prefilter here uses it (or a single-literal comparison) as
// the complete decision procedure.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"golang.org/x/sys/cpu"

	"github.com/coregx/aregex"
	"github.com/coregx/aregex/internal/term"
)

// Prefilter answers whether an input belongs to the literal language it was
// built from. Exactly one of single, literals, or auto is populated,
// depending on which path Build took.
type Prefilter struct {
	single   []byte
	literals [][]byte
	auto     *ahocorasick.Automaton
}

// DefaultThreshold is the literal-count cutoff Build uses when a caller has
// no aregex.Config of its own to supply — e.g. FromTerm's direct callers. It
// mirrors the teacher engine's own large-alternation cutoff (see
// meta/compile.go's ">8/>32 patterns" commentary in DESIGN.md), chosen so
// that small alternations — the common case — skip automaton construction
// entirely. bytestream.NewMatcher and NewBoolMatcher instead pass
// aregex.Config.AhoCorasickThreshold, so that cutoff is configurable
// end-to-end.
const DefaultThreshold = 8

// Build constructs a Prefilter from a literal set. threshold is the
// literal-count cutoff at or above which Build constructs an Aho-Corasick
// automaton instead of comparing literals one at a time; callers with an
// aregex.Config should pass cfg.AhoCorasickThreshold, and DefaultThreshold
// otherwise. Build returns a *aregex.PrefilterError if literals is empty or
// the underlying automaton fails to build. The returned Prefilter owns
// literals; callers must not mutate the slices afterwards.
func Build(literals [][]byte, threshold int) (*Prefilter, error) {
	switch {
	case len(literals) == 0:
		return nil, &aregex.PrefilterError{Reason: "empty literal set"}
	case len(literals) == 1:
		return &Prefilter{single: literals[0]}, nil
	case len(literals) < threshold:
		return &Prefilter{literals: literals}, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &aregex.PrefilterError{Reason: "building aho-corasick automaton", Err: err}
	}
	return &Prefilter{auto: auto}, nil
}

// Matches reports whether input is exactly one of the literals Build was
// given.
func (p *Prefilter) Matches(input []byte) bool {
	switch {
	case p.single != nil:
		return equalBytes(p.single, input)
	case p.auto != nil:
		m := p.auto.Find(input, 0)
		return m != nil && m.Start == 0 && m.End == len(input)
	default:
		for _, lit := range p.literals {
			if equalBytes(lit, input) {
				return true
			}
		}
		return false
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if hasSSE2 && len(a) >= wordCompareMin {
		return equalBytesWord(a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasSSE2 gates the word-at-a-time comparison path below. SSE2 is baseline
// on amd64, but checking it the way the teacher's simd package checks AVX2
// keeps this honest about being a feature-detected fast path rather than an
// architecture assumption, and keeps the same cpu.X86 flag group wired here
// that the teacher wires for its byte-scan fast paths.
var hasSSE2 = cpu.X86.HasSSE2

// wordCompareMin is the shortest length worth dispatching to the
// word-at-a-time comparator; below it, per-byte comparison already finishes
// in about the same number of instructions.
const wordCompareMin = 16

// equalBytesWord compares a and b word-at-a-time. a and b are already known
// equal in length. This is the pure-Go SWAR fallback the teacher's simd
// package reaches for when no assembly kernel is available for a platform
// (see DESIGN.md on why no .s file was ported for this module).
func equalBytesWord(a, b []byte) bool {
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		var wa, wb uint64
		for j := 0; j < 8; j++ {
			wa |= uint64(a[i+j]) << (8 * j)
			wb |= uint64(b[i+j]) << (8 * j)
		}
		if wa != wb {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RequiredByte reports a single byte that every matching input must
// contain, when one can be determined by simple structural inspection of t
// — a single-byte Sym, possibly under Fmap/Void, found in either operand of
// an App chain (the right operand is searched first, then the left). It
// reports ok=false whenever it cannot determine such a byte,
// which is not a claim that no such byte exists: Alt branches and Rep
// bodies can be skipped entirely by a match, so neither contributes a
// required byte under this analysis even when one might hold in practice.
func RequiredByte[A any](t aregex.Term[byte, A]) (b byte, ok bool) {
	return requiredByte(aregex.Expose(t))
}

func requiredByte(n *term.Node[byte]) (byte, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Kind {
	case term.KSymbol:
		if len(n.LitSeq) == 1 {
			return n.LitSeq[0], true
		}
		return 0, false
	case term.KFmap, term.KVoid:
		return requiredByte(n.T)
	case term.KApp:
		if b, ok := requiredByte(n.R); ok {
			return b, true
		}
		return requiredByte(n.L)
	default: // KAlt, KRep, KEps, KFail
		return 0, false
	}
}

// ContainsByte reports whether b occurs anywhere in haystack. It exists
// alongside equalBytes as the other half of this package's byte-scan fast
// path: RequiredByte's caller uses it to reject an input in one pass before
// starting the thread simulation.
func ContainsByte(haystack []byte, b byte) bool {
	if hasSSE2 && len(haystack) >= wordCompareMin {
		return containsByteWord(haystack, b)
	}
	for _, c := range haystack {
		if c == b {
			return true
		}
	}
	return false
}

// containsByteWord is the classic SWAR "find a zero byte" trick applied to
// haystack XORed with a byte-repeated pattern of b: a lane is zero exactly
// where haystack matched b in that position.
func containsByteWord(haystack []byte, b byte) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	pattern := uint64(b) * lo
	n := len(haystack)
	i := 0
	for ; i+8 <= n; i += 8 {
		var w uint64
		for j := 0; j < 8; j++ {
			w |= uint64(haystack[i+j]) << (8 * j)
		}
		x := w ^ pattern
		if (x-lo)&^x&hi != 0 {
			return true
		}
	}
	for ; i < n; i++ {
		if haystack[i] == b {
			return true
		}
	}
	return false
}

// FromTerm extracts a literal set from t via extract (typically
// literal.ExtractAlternatives) and builds a Prefilter in one step, using
// threshold as Build's automaton cutoff (DefaultThreshold for callers with
// no aregex.Config of their own). It reports ok=false only when extract
// itself finds no literal structure in t; a failure inside Build is
// returned as an error.
func FromTerm[A any](t aregex.Term[byte, A], extract func(aregex.Term[byte, A]) ([][]byte, bool), threshold int) (p *Prefilter, ok bool, err error) {
	lits, ok := extract(t)
	if !ok {
		return nil, false, nil
	}
	p, err = Build(lits, threshold)
	return p, true, err
}
