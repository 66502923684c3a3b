package aregex

import "github.com/coregx/aregex/internal/term"

// Unit is the result type of Eps and Void: a term whose value carries no
// information, only the fact that it matched.
type Unit = struct{}

// RepMode controls priority tie-breaking for repetition, not the language a
// Rep-derived term recognises: see Many, Some, and ReFoldl.
type RepMode = term.RepMode

const (
	// Greedy prefers another iteration over stopping when both are viable.
	Greedy = term.Greedy
	// NonGreedy prefers stopping over another iteration when both are viable.
	// Full-input matching can still force further iterations regardless of
	// this preference: NonGreedy only breaks ties between otherwise-equal
	// parses, and consuming all of the input is not optional.
	NonGreedy = term.NonGreedy
)

// Term is an immutable value describing a regular expression over symbols of
// type S and how to assemble a result of type A from a match. Terms are
// built by the combinators in this package and consumed by Match; the
// internal node representation is not exported because App and Fmap need to
// combine children whose result types differ, which Go's type system cannot
// express without erasure (see internal/term's package doc).
type Term[S, A any] struct {
	n *term.Node[S]
}

// Eps matches the empty input and yields Unit{}.
func Eps[S any]() Term[S, Unit] {
	return Term[S, Unit]{n: &term.Node[S]{Kind: term.KEps}}
}

// Fail matches nothing. It is the identity element for Alt and an absorbing
// element for App.
func Fail[S, A any]() Term[S, A] {
	return Term[S, A]{n: &term.Node[S]{Kind: term.KFail}}
}

// MSym matches a single symbol for which p returns a value, and yields that
// value. This is the most general symbol combinator; PSym, Sym, and AnySym
// are all defined in terms of it.
func MSym[S, A any](p func(S) (A, bool)) Term[S, A] {
	return Term[S, A]{n: &term.Node[S]{
		Kind: term.KSymbol,
		Pred: func(s S) (any, bool) { return p(s) },
	}}
}

// PSym matches a single symbol passing p, yielding that symbol.
func PSym[S any](p func(S) bool) Term[S, S] {
	return MSym(func(s S) (S, bool) {
		if p(s) {
			return s, true
		}
		var zero S
		return zero, false
	})
}

// Sym matches exactly the symbol x, yielding it.
func Sym[S comparable](x S) Term[S, S] {
	t := PSym(func(s S) bool { return s == x })
	if b, ok := any(x).(byte); ok {
		t.n.LitSeq = []byte{b}
	}
	return t
}

// AnySym matches any single symbol, yielding it.
func AnySym[S any]() Term[S, S] {
	return PSym[S](func(S) bool { return true })
}

// Map transforms t's result with h. Map(id, t) is equivalent to t, and
// Map(f, Map(g, t)) is equivalent to Map(compose(f, g), t).
func Map[S, A, B any](h func(A) B, t Term[S, A]) Term[S, B] {
	return Term[S, B]{n: &term.Node[S]{
		Kind: term.KFmap,
		T:    t.n,
		H:    func(a any) any { return h(a.(A)) },
	}}
}

// App matches the concatenation of f's language followed by x's language,
// yielding f's result applied to x's result. This is the applicative
// operator that lets combinators build sequences: to match l then r and keep
// both results as a pair, write
//
//	pair := func(a A) func(B) [2]any { return func(b B) [2]any { return [2]any{a, b} } }
//	both := App(Map(pair, l), r)
func App[S, A, B any](f Term[S, func(A) B], x Term[S, A]) Term[S, B] {
	return Term[S, B]{n: &term.Node[S]{
		Kind: term.KApp,
		L:    f.n,
		R:    x.n,
		Apply: func(fResult, xResult any) any {
			return fResult.(func(A) B)(xResult.(A))
		},
	}}
}

// Alt matches if either l or r matches. It is left-biased: if both branches
// would accept the same input, l's result wins.
func Alt[S, A any](l, r Term[S, A]) Term[S, A] {
	return Term[S, A]{n: &term.Node[S]{Kind: term.KAlt, L: l.n, R: r.n}}
}

// Void matches t and discards its result, yielding Unit{}. This is purely an
// optimisation hint for callers who don't need t's value; it does not change
// what language is recognised.
func Void[S, A any](t Term[S, A]) Term[S, Unit] {
	return Term[S, Unit]{n: &term.Node[S]{Kind: term.KVoid, T: t.n}}
}

// ReFoldl matches zero or more repetitions of t, folding each iteration's
// result into an accumulator seeded at z. mode controls whether another
// iteration or stopping is preferred when both are viable — see RepMode.
func ReFoldl[S, A, B any](mode RepMode, fold func(B, A) B, z B, t Term[S, A]) Term[S, B] {
	return Term[S, B]{n: &term.Node[S]{
		Kind: term.KRep,
		Mode: mode,
		T:    t.n,
		Z:    z,
		Fold: func(acc, elem any) any { return fold(acc.(B), elem.(A)) },
	}}
}
