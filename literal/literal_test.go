package literal

import (
	"reflect"
	"testing"

	"github.com/coregx/aregex"
)

func TestExtractSingleLiteral(t *testing.T) {
	term := aregex.String([]byte("cat"))
	lits, ok := ExtractAlternatives(term)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if len(lits) != 1 || string(lits[0]) != "cat" {
		t.Fatalf("got %q, want [\"cat\"]", lits)
	}
}

func TestExtractSingleSym(t *testing.T) {
	term := aregex.Sym[byte]('x')
	lits, ok := ExtractAlternatives(term)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if len(lits) != 1 || string(lits[0]) != "x" {
		t.Fatalf("got %q, want [\"x\"]", lits)
	}
}

func TestExtractAlternationChain(t *testing.T) {
	term := aregex.Alt(
		aregex.Alt(aregex.String([]byte("one")), aregex.String([]byte("two"))),
		aregex.String([]byte("three")),
	)
	lits, ok := ExtractAlternatives(term)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	want := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	if !reflect.DeepEqual(lits, want) {
		t.Fatalf("got %q, want %q", lits, want)
	}
}

func TestExtractFailsOnNonLiteralTerm(t *testing.T) {
	term := aregex.Map(func(b byte) byte { return b }, aregex.AnySym[byte]())
	if _, ok := ExtractAlternatives(term); ok {
		t.Fatal("expected extraction to fail on a non-literal term")
	}
}

func TestExtractFailsOnMixedAlternation(t *testing.T) {
	term := aregex.Alt(
		aregex.String([]byte("one")),
		aregex.Map(func(b byte) []byte { return []byte{b} }, aregex.AnySym[byte]()),
	)
	if _, ok := ExtractAlternatives(term); ok {
		t.Fatal("expected extraction to fail when one branch is not a literal")
	}
}
