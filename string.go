package aregex

// String matches the concatenation of Sym for each element of xs, in order,
// yielding the matched sequence. String([]S{}) matches only the empty input.
func String[S comparable](xs []S) Term[S, []S] {
	var result Term[S, []S]
	if len(xs) == 0 {
		result = Map(func(Unit) []S { return []S{} }, Eps[S]())
	} else {
		result = Map(func(x S) []S { return []S{x} }, Sym(xs[0]))
		for _, x := range xs[1:] {
			snoc := func(acc []S) func(S) []S {
				return func(x S) []S {
					out := make([]S, len(acc)+1)
					copy(out, acc)
					out[len(acc)] = x
					return out
				}
			}
			result = App(Map(snoc, result), Sym(x))
		}
	}

	if lit, ok := any(xs).([]byte); ok {
		result.n.LitSeq = lit
	}
	return result
}
