package thread

import (
	"testing"
	"time"

	"github.com/coregx/aregex/internal/sparse"
	"github.com/coregx/aregex/internal/term"
)

// acceptK is the continuation every top-level compile in these tests uses:
// it turns the final folded value into a single non-live Accept thread,
// mirroring what match.Match's InitialThreads wiring does.
func acceptK[S, R any](a any) []Thread[S, R] {
	return []Thread[S, R]{{Live: false, Result: a.(R)}}
}

func symNode(b byte) *term.Node[byte] {
	return &term.Node[byte]{
		Kind: term.KSymbol,
		Pred: func(s byte) (any, bool) {
			if s == b {
				return s, true
			}
			return nil, false
		},
	}
}

func run[R any](t *testing.T, threads []Thread[byte, R], input []byte) (R, bool) {
	t.Helper()
	seen := sparse.NewSparseSet(64)
	threads = Dedup(threads, seen)
	for _, s := range input {
		threads = Dedup(Step(threads, s), seen)
	}
	return FirstAccept(threads)
}

func TestCompileEpsAcceptsEmptyInput(t *testing.T) {
	n, _ := term.Number(&term.Node[byte]{Kind: term.KEps})
	var fixed byte = 'z'
	threads := Compile[byte, byte](n, func(any) []Thread[byte, byte] {
		return acceptK[byte, byte](fixed)
	}, map[*term.Node[byte]]bool{})
	got, ok := run(t, threads, nil)
	if !ok || got != fixed {
		t.Fatalf("got (%v, %v), want (%v, true)", got, ok, fixed)
	}
}

func TestCompileFailNeverAccepts(t *testing.T) {
	n, _ := term.Number(&term.Node[byte]{Kind: term.KFail})
	threads := Compile[byte, byte](n, acceptK[byte, byte], map[*term.Node[byte]]bool{})
	if len(threads) != 0 {
		t.Fatalf("Fail compiled to %d threads, want 0", len(threads))
	}
}

func TestCompileSymbolConsumesMatchingInput(t *testing.T) {
	n, _ := term.Number(symNode('a'))
	threads := Compile[byte, byte](n, acceptK[byte, byte], map[*term.Node[byte]]bool{})
	got, ok := run(t, threads, []byte("a"))
	if !ok || got != 'a' {
		t.Fatalf("got (%v, %v), want ('a', true)", got, ok)
	}
	threads = Compile[byte, byte](n, acceptK[byte, byte], map[*term.Node[byte]]bool{})
	if _, ok := run(t, threads, []byte("b")); ok {
		t.Error("expected no match on a non-matching symbol")
	}
}

func TestCompileAltIsLeftBiased(t *testing.T) {
	left := &term.Node[byte]{Kind: term.KEps}
	right := &term.Node[byte]{Kind: term.KEps}
	alt, _ := term.Number(&term.Node[byte]{Kind: term.KAlt, L: left, R: right})

	calls := 0
	threads := Compile[byte, int](alt, func(any) []Thread[byte, int] {
		calls++
		return []Thread[byte, int]{{Live: false, Result: calls}}
	}, map[*term.Node[byte]]bool{})

	got, ok := FirstAccept(threads)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != 1 {
		t.Errorf("got %d, want 1 (left branch result observed first)", got)
	}
}

func TestCompileAppSequencesAndCombines(t *testing.T) {
	a := symNode('a')
	b := symNode('b')
	app, _ := term.Number(&term.Node[byte]{
		Kind: term.KApp,
		L: &term.Node[byte]{
			Kind: term.KFmap,
			T:    a,
			H: func(x any) any {
				return func(y byte) [2]byte { return [2]byte{x.(byte), y} }
			},
		},
		R: b,
		Apply: func(f, x any) any {
			return f.(func(byte) [2]byte)(x.(byte))
		},
	})
	threads := Compile[byte, [2]byte](app, acceptK[byte, [2]byte], map[*term.Node[byte]]bool{})
	got, ok := run(t, threads, []byte("ab"))
	if !ok || got != [2]byte{'a', 'b'} {
		t.Fatalf("got (%v, %v), want ([a b], true)", got, ok)
	}
}

func TestCompileFmapTransformsResult(t *testing.T) {
	n, _ := term.Number(&term.Node[byte]{
		Kind: term.KFmap,
		T:    symNode('a'),
		H:    func(x any) any { return x.(byte) + 1 },
	})
	threads := Compile[byte, byte](n, acceptK[byte, byte], map[*term.Node[byte]]bool{})
	got, ok := run(t, threads, []byte("a"))
	if !ok || got != 'b' {
		t.Fatalf("got (%v, %v), want ('b', true)", got, ok)
	}
}

func TestCompileVoidDiscardsResult(t *testing.T) {
	n, _ := term.Number(&term.Node[byte]{Kind: term.KVoid, T: symNode('a')})
	threads := Compile[byte, struct{}](n, acceptK[byte, struct{}], map[*term.Node[byte]]bool{})
	_, ok := run(t, threads, []byte("a"))
	if !ok {
		t.Fatal("expected a match")
	}
}

func TestCompileRepGreedyPrefersIteratingOverStopping(t *testing.T) {
	rep := &term.Node[byte]{
		Kind: term.KRep,
		Mode: term.Greedy,
		T:    symNode('a'),
		Z:    0,
		Fold: func(acc, _ any) any { return acc.(int) + 1 },
	}
	numbered, _ := term.Number(rep)

	var order []int
	threads := Compile[byte, int](numbered, func(a any) []Thread[byte, int] {
		order = append(order, a.(int))
		return []Thread[byte, int]{{Live: false, Result: a.(int)}}
	}, map[*term.Node[byte]]bool{})

	if len(threads) != 2 || !threads[0].Live || threads[1].Live {
		t.Fatalf("initial threads not in iterate-then-stop order: %d threads", len(threads))
	}

	got, ok := run(t, threads, []byte("aaa"))
	if !ok {
		t.Fatal("expected a match")
	}
	if got != 3 {
		t.Errorf("got %d, want 3 iterations consumed", got)
	}
}

func TestCompileRepNonGreedyStillConsumesAllInputOnFullMatch(t *testing.T) {
	rep := &term.Node[byte]{
		Kind: term.KRep,
		Mode: term.NonGreedy,
		T:    symNode('a'),
		Z:    0,
		Fold: func(acc, _ any) any { return acc.(int) + 1 },
	}
	numbered, _ := term.Number(rep)
	threads := Compile[byte, int](numbered, acceptK[byte, int], map[*term.Node[byte]]bool{})
	got, ok := run(t, threads, []byte("aaa"))
	if !ok {
		t.Fatal("full-input match must still force all three iterations")
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestCompileRepOverEmptyAcceptingBodyDoesNotLoopForever(t *testing.T) {
	// A Rep whose body matches the empty string would recurse forever in
	// compileRep's iterate branch without the visiting guard: each
	// iteration folds on no input consumed and immediately tries another.
	body := &term.Node[byte]{Kind: term.KEps}
	rep := &term.Node[byte]{
		Kind: term.KRep,
		Mode: term.Greedy,
		T:    body,
		Z:    0,
		Fold: func(acc, _ any) any { return acc.(int) + 1 },
	}
	numbered, _ := term.Number(rep)

	done := make(chan []Thread[byte, int], 1)
	go func() {
		threads := Compile[byte, int](numbered, acceptK[byte, int], map[*term.Node[byte]]bool{})
		done <- threads
	}()
	select {
	case threads := <-done:
		if len(threads) == 0 {
			t.Error("expected at least one thread out of the guarded loop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Compile over an empty-body Rep did not terminate")
	}
}

func TestDedupPreservesPriorityOrderAndDropsDuplicates(t *testing.T) {
	threads := []Thread[byte, int]{
		{Live: true, ID: 2, Step: func(byte) []Thread[byte, int] { return nil }},
		{Live: true, ID: 1, Step: func(byte) []Thread[byte, int] { return nil }},
		{Live: true, ID: 2, Step: func(byte) []Thread[byte, int] { return nil }},
		{Live: false, Result: 42},
	}
	seen := sparse.NewSparseSet(8)
	out := Dedup(threads, seen)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3 (one duplicate dropped)", len(out))
	}
	if out[0].ID != 2 || out[1].ID != 1 {
		t.Errorf("priority order not preserved: got IDs %d, %d", out[0].ID, out[1].ID)
	}
	if out[2].Live {
		t.Error("expected the Accept thread to survive dedup unconditionally")
	}
}

func TestFirstAcceptReturnsFirstNonLiveThread(t *testing.T) {
	threads := []Thread[byte, int]{
		{Live: true, ID: 0, Step: func(byte) []Thread[byte, int] { return nil }},
		{Live: false, Result: 7},
		{Live: false, Result: 9},
	}
	got, ok := FirstAccept(threads)
	if !ok || got != 7 {
		t.Fatalf("got (%v, %v), want (7, true)", got, ok)
	}
}

func TestFirstAcceptNoAcceptThread(t *testing.T) {
	threads := []Thread[byte, int]{
		{Live: true, ID: 0, Step: func(byte) []Thread[byte, int] { return nil }},
	}
	if _, ok := FirstAccept(threads); ok {
		t.Error("expected no accept among only-live threads")
	}
}

