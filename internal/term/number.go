package term

// Number assigns a globally unique ThreadID to every Symbol node in n, by a
// pre-order traversal with a monotonically increasing counter. It returns an
// isomorphic copy of n (the input is never mutated, so a Term value remains
// safe to Match repeatedly or concurrently) together with the count of
// Symbol nodes numbered, which callers use to size a ThreadID-indexed
// sparse set for dedup.
func Number[S any](n *Node[S]) (*Node[S], int) {
	next := ThreadID(0)
	numbered := number(n, &next)
	return numbered, int(next)
}

func number[S any](n *Node[S], next *ThreadID) *Node[S] {
	if n == nil {
		return nil
	}
	cp := *n
	switch n.Kind {
	case KSymbol:
		cp.ID = *next
		*next++
	case KAlt, KApp:
		cp.L = number(n.L, next)
		cp.R = number(n.R, next)
	case KFmap, KVoid, KRep:
		cp.T = number(n.T, next)
	case KEps, KFail:
		// no children, nothing to number
	}
	return &cp
}
