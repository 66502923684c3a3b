package aregex

import (
	"github.com/coregx/aregex/internal/conv"
	"github.com/coregx/aregex/internal/sparse"
	"github.com/coregx/aregex/internal/term"
	"github.com/coregx/aregex/internal/thread"
)

// Match numbers t, builds the initial thread list, and steps it once per
// symbol of xs in order, consuming all of xs exactly once. It returns the
// value carried by the highest-priority Accept thread remaining once xs is
// exhausted, or the zero value of A and false if no thread accepted.
//
// Matching is against the entire input: Match never returns a result for a
// proper prefix or suffix of xs.
func Match[S, A any](t Term[S, A], xs []S) (A, bool) {
	numbered, symbolCount := term.Number(t.n)
	seen := sparse.NewSparseSet(conv.IntToUint32(symbolCount))

	threads := thread.Dedup(thread.InitialThreads[S, A](numbered), seen)
	for _, s := range xs {
		threads = thread.Dedup(thread.Step(threads, s), seen)
	}

	return thread.FirstAccept(threads)
}

// SymbolCount reports the number of distinct Symbol nodes in t — the static
// bound on live threads per spec.md §5, and the figure
// Config.MaxLiveThreads is checked against by bytestream.Compile.
func SymbolCount[S, A any](t Term[S, A]) int {
	_, n := term.Number(t.n)
	return n
}
