// Package literal extracts literal-alternation structure from byte-symbol
// terms for prefilter optimisation: a term built as an Alt-chain of String
// (or Sym) literals is exactly a finite language, and the prefilter package
// can test membership in that language directly instead of running the
// thread simulation.
//
// This mirrors the role of the teacher engine's own literal package (see
// DESIGN.md) narrowed to this engine's full-input-match semantics: rather
// than extracting prefixes/suffixes as candidate-filtering hints, extraction
// here either recognises the whole term as a literal set or reports nothing,
// since anything less than the whole term cannot be verified without running
// the combinator continuation it feeds into.
package literal

import (
	"github.com/coregx/aregex"
	"github.com/coregx/aregex/internal/term"
)

// ExtractAlternatives reports the literal set an Alt-chain of byte String
// (or Sym) terms recognises. It returns ok=false if t is not built entirely
// from such a chain. A single literal with no Alt at all counts as a chain
// and is reported as a one-element set.
func ExtractAlternatives[A any](t aregex.Term[byte, A]) (literals [][]byte, ok bool) {
	n := aregex.Expose(t)
	var lits [][]byte
	if !collect(n, &lits) {
		return nil, false
	}
	return lits, true
}

func collect(n *term.Node[byte], out *[][]byte) bool {
	if n == nil {
		return false
	}
	if n.LitSeq != nil {
		*out = append(*out, n.LitSeq)
		return true
	}
	if n.Kind == term.KAlt {
		return collect(n.L, out) && collect(n.R, out)
	}
	return false
}
