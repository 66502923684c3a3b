// Package term implements the tagged-variant term representation that backs
// the public combinator surface: Eps, Symbol, Alt, App, Fmap, Fail, Rep, and
// Void (see the package doc of the root module for the algebra these
// combinators satisfy).
//
// Term is generic in the symbol type S only. Go has no GADT-like refinement
// for a tree whose nodes carry different result types (App combines a
// Term[S, func(A) B] and a Term[S, A] into a Term[S, B]), so the result type
// is erased here: every node's semantic payload is carried as interface{},
// and the closures stored on App/Fmap/Rep nodes perform the type-safe cast
// back to a concrete type at the point they were built, where the concrete
// type parameters are still in scope. The root package's builder functions
// are the only place that constructs a Node, and they are what keeps this
// erasure sound; Node itself enforces nothing.
package term

// Kind tags the variant a Node represents.
type Kind uint8

const (
	KEps Kind = iota
	KSymbol
	KAlt
	KApp
	KFmap
	KFail
	KRep
	KVoid
)

// RepMode controls priority tie-breaking for Rep, not the language recognised.
type RepMode int

const (
	// Greedy prefers another iteration of the repeated term over stopping.
	Greedy RepMode = iota
	// NonGreedy prefers stopping over another iteration.
	NonGreedy
)

// ThreadID identifies a Symbol node uniquely within a numbered term. It is
// the NFA state identity used to deduplicate live threads.
type ThreadID uint32

// Node is the erased term representation. Only the fields relevant to a
// node's Kind are populated; the comment above each field group names the
// Kinds that use it.
type Node[S any] struct {
	Kind Kind

	// KSymbol
	ID   ThreadID
	Pred func(S) (any, bool)

	// KAlt, KApp: L and R are the two children.
	// KFmap, KVoid, KRep: T is the single child.
	L, R, T *Node[S]

	// KApp: combines the value produced by L (a func(A) B, erased) with the
	// value produced by R (an A, erased) into a B, erased.
	Apply func(fResult, xResult any) any

	// KFmap: transforms T's result.
	H func(any) any

	// KRep
	Mode RepMode
	Fold func(acc, elem any) any
	Z    any

	// LitSeq is an optional prefilter hint: when non-nil, this node matches
	// exactly this literal byte sequence and nothing else. It is set by the
	// root package's Sym and String combinators when their symbol type is
	// byte, and read by the literal package to find literal-alternation
	// terms worth prefiltering. It plays no role in matching semantics —
	// Compile never looks at it.
	LitSeq []byte
}
