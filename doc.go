// Package aregex is an applicative regular expression engine: it lets you
// build regular expressions as first-class values by algebraic composition
// (Map, App, Alt, ReFoldl) and match them against a finite input sequence to
// produce a typed result value assembled by the combinator tree — not merely
// a boolean or a list of captured substrings.
//
// A Term[S, A] describes a language over symbols of type S and how to build
// a value of type A from a match. Terms compose functorially and
// applicatively:
//
//	digit := aregex.PSym(func(r rune) bool { return r >= '0' && r <= '9' })
//	number := aregex.Map(func(ds []rune) string { return string(ds) }, aregex.Some(digit))
//	one := aregex.Map(func([]rune) int { return 1 }, aregex.String([]rune("one")))
//	two := aregex.Map(func([]rune) int { return 2 }, aregex.String([]rune("two")))
//	n, ok := aregex.Match(aregex.Alt(two, one), []rune("one")) // n == 1, ok == true
//
// Matching is against the entire input: there is no partial-prefix match
// exposed at the top level. The symbol type S is opaque — the engine only
// ever passes a symbol to a caller-supplied predicate — except for the Sym
// and String conveniences, which require S to be comparable.
//
// The matching engine is a Thompson-style NFA simulation (see internal/term
// and internal/thread): a thread list is advanced through ε-transitions and
// one symbol-consuming step at a time, carrying partial semantic values, with
// duplicate threads collapsed by ThreadID in priority order so the live
// thread count never exceeds the number of Symbol nodes in the term.
//
// Backreferences, lookaround, anchors other than implicit full-input match,
// streaming over unbounded input, and compilation to a DFA are out of scope.
package aregex
