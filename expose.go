package aregex

import "github.com/coregx/aregex/internal/term"

// Expose returns t's underlying term node. It exists so sibling packages in
// this module (literal, prefilter) can walk a term's structure to extract
// optimisation hints — e.g. a literal alternation worth prefiltering —
// without the core Term type giving up its field privacy to arbitrary
// callers. Ordinary use of this package never needs it.
func Expose[S, A any](t Term[S, A]) *term.Node[S] {
	return t.n
}
