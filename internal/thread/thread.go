// Package thread implements the NFA evaluation core: compiling a numbered
// term plus an abstract continuation into a priority-ordered thread list, and
// advancing that list one input symbol at a time.
//
// This is the Thompson-style simulation at the heart of the engine. A Live
// thread is a ThreadID (inherited from the Symbol node it is waiting on)
// together with a step function which, fed one input symbol, yields the next
// generation's threads. An Accept thread carries the fully assembled result.
// Thread list order is priority order throughout: Alt tries its left operand
// first, and Rep tries iterate-then-stop or stop-then-iterate depending on
// its greediness, and both of those orderings are implemented purely by the
// order threads are appended to the returned slice.
package thread

import (
	"github.com/coregx/aregex/internal/sparse"
	"github.com/coregx/aregex/internal/term"
)

// Thread is either Live (waiting to consume one symbol) or an Accept
// terminal carrying the final result of type R.
type Thread[S, R any] struct {
	Live   bool
	ID     term.ThreadID
	Step   func(s S) []Thread[S, R]
	Result R
}

// cont is the abstract continuation of spec §4.3: given the semantic value
// produced by a sub-term (erased to any), it returns the thread list that
// results from whatever follows that sub-term in the surrounding term.
type cont[S, R any] func(value any) []Thread[S, R]

// Compile realises spec §4.3's compilation table: given a numbered term node
// and a continuation k, it returns the initial thread list for that
// (node, k) pair. visiting tracks Rep nodes currently being expanded at the
// current input position with no symbol consumed yet, so that a Rep whose
// body can match empty does not recurse forever building the initial
// thread list (see SPEC_FULL.md's empty-body repetition loop guard).
func Compile[S, R any](n *term.Node[S], k cont[S, R], visiting map[*term.Node[S]]bool) []Thread[S, R] {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case term.KEps:
		return k(struct{}{})

	case term.KFail:
		return nil

	case term.KSymbol:
		id, pred := n.ID, n.Pred
		return []Thread[S, R]{{
			Live: true,
			ID:   id,
			Step: func(s S) []Thread[S, R] {
				if a, ok := pred(s); ok {
					return k(a)
				}
				return nil
			},
		}}

	case term.KAlt:
		left := Compile(n.L, k, visiting)
		right := Compile(n.R, k, visiting)
		return append(left, right...)

	case term.KApp:
		apply := n.Apply
		return Compile(n.L, func(f any) []Thread[S, R] {
			return Compile(n.R, func(x any) []Thread[S, R] {
				return k(apply(f, x))
			}, visiting)
		}, visiting)

	case term.KFmap:
		h := n.H
		return Compile(n.T, func(a any) []Thread[S, R] {
			return k(h(a))
		}, visiting)

	case term.KVoid:
		return Compile(n.T, func(any) []Thread[S, R] {
			return k(struct{}{})
		}, visiting)

	case term.KRep:
		return compileRep(n, k, visiting)
	}

	return nil
}

func compileRep[S, R any](n *term.Node[S], k cont[S, R], visiting map[*term.Node[S]]bool) []Thread[S, R] {
	var loop func(acc any) []Thread[S, R]
	loop = func(acc any) []Thread[S, R] {
		// Re-entering the same Rep node without having consumed a symbol
		// means the body matched empty on this pass: stop here rather than
		// unwind forever, keeping the accumulator from the prior iteration.
		if visiting[n] {
			return k(acc)
		}
		visiting[n] = true
		iterate := Compile(n.T, func(a any) []Thread[S, R] {
			return loop(n.Fold(acc, a))
		}, visiting)
		delete(visiting, n)

		stop := k(acc)

		if n.Mode == term.Greedy {
			return append(iterate, stop...)
		}
		return append(stop, iterate...)
	}
	return loop(n.Z)
}

// InitialThreads compiles n with the identity continuation a -> [Accept(a)],
// producing the thread list a Match call starts with.
func InitialThreads[S, R any](n *term.Node[S]) []Thread[S, R] {
	return Compile[S, R](n, func(a any) []Thread[S, R] {
		return []Thread[S, R]{{Live: false, Result: a.(R)}}
	}, map[*term.Node[S]]bool{})
}

// Step advances every Live thread in threads past the given symbol, in
// priority order, concatenating the successor lists. Accept threads in
// threads are dropped: they represent a match that would have been complete
// had input ended one symbol earlier, and full-input matching requires every
// symbol to be consumed (spec §4.3, "short-circuit is forbidden").
func Step[S, R any](threads []Thread[S, R], s S) []Thread[S, R] {
	var next []Thread[S, R]
	for _, t := range threads {
		if t.Live {
			next = append(next, t.Step(s)...)
		}
	}
	return next
}

// Dedup walks threads in priority order and drops any Live thread whose
// ThreadID has already been seen, keeping the earlier (higher-priority) one.
// Accept threads are always kept, since they carry no ThreadID to collapse
// on. seen is cleared before use and is expected to be sized to the number
// of Symbol nodes in the numbered term.
func Dedup[S, R any](threads []Thread[S, R], seen *sparse.SparseSet) []Thread[S, R] {
	seen.Clear()
	out := make([]Thread[S, R], 0, len(threads))
	for _, t := range threads {
		if !t.Live {
			out = append(out, t)
			continue
		}
		if seen.Insert(uint32(t.ID)) {
			out = append(out, t)
		}
	}
	return out
}

// FirstAccept scans threads in priority order and returns the first Accept
// thread's result, matching spec §4.4's termination rule.
func FirstAccept[S, R any](threads []Thread[S, R]) (R, bool) {
	for _, t := range threads {
		if !t.Live {
			return t.Result, true
		}
	}
	var zero R
	return zero, false
}
