package aregex

// Many matches zero or more repetitions of t, greedily: among equally
// accepting parses, the one with more iterations of t wins. The returned
// slice is in input order.
func Many[S, A any](t Term[S, A]) Term[S, []A] {
	return ReFoldl(Greedy, appendCopy[A], []A{}, t)
}

// Some matches one or more repetitions of t, greedily.
func Some[S, A any](t Term[S, A]) Term[S, []A] {
	cons := func(a A) func([]A) []A {
		return func(rest []A) []A {
			out := make([]A, 0, len(rest)+1)
			out = append(out, a)
			out = append(out, rest...)
			return out
		}
	}
	return App(Map(cons, t), Many(t))
}

// appendCopy appends elem to a fresh copy of acc, rather than growing acc's
// backing array in place. ReFoldl's accumulator is shared across sibling
// threads produced by Alt/Rep priority branching (an iterate branch and a
// stop branch both start from the same acc value); appending in place would
// let one branch's growth corrupt another branch's slice through a shared
// backing array.
func appendCopy[A any](acc []A, elem A) []A {
	out := make([]A, len(acc)+1)
	copy(out, acc)
	out[len(acc)] = elem
	return out
}
