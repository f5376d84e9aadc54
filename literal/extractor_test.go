package literal

import (
	"testing"

	"github.com/coregx/symregex/syntax"
)

func lit(s string) *syntax.Expr[string] { return syntax.Literal(s) }

func extract(e *syntax.Expr[string]) *Seq[string] {
	return New[string](DefaultConfig()).Prefixes(e)
}

func literalStrings(s *Seq[string]) []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		var joined string
		for _, sym := range s.Get(i).Syms {
			joined += sym
		}
		out = append(out, joined)
	}
	return out
}

func wantLiterals(t *testing.T, s *Seq[string], want ...string) {
	t.Helper()
	got := literalStrings(s)
	if len(got) != len(want) {
		t.Fatalf("literals = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("literals = %q, want %q", got, want)
		}
	}
}

func TestLeaves(t *testing.T) {
	s := extract(syntax.Null[string]())
	if !s.IsExact() || !s.IsEmpty() {
		t.Error("Null: want exact empty sequence")
	}

	s = extract(syntax.Empty[string]())
	if !s.IsExact() || s.Len() != 1 || !s.Get(0).Complete || s.Get(0).Len() != 0 {
		t.Error("Empty: want one exact complete empty literal")
	}
	if !s.HasEmpty() {
		t.Error("Empty: HasEmpty should be true")
	}

	s = extract(lit("a"))
	if !s.IsExact() || !s.AllComplete() {
		t.Error("Literal: want exact complete")
	}
	wantLiterals(t, s, "a")
}

func TestUnionAndConcat(t *testing.T) {
	// (a·b) | c
	e := syntax.Union(syntax.Concat(lit("a"), lit("b")), lit("c"))
	s := extract(e)
	if !s.IsExact() || !s.AllComplete() {
		t.Errorf("want exact all-complete, got exact=%v", s.IsExact())
	}
	wantLiterals(t, s, "ab", "c")
	if s.MinLen() != 1 || s.MaxLen() != 2 {
		t.Errorf("MinLen/MaxLen = %d/%d, want 1/2", s.MinLen(), s.MaxLen())
	}

	// (a|b)·(c|d): the cross product
	e = syntax.Concat(
		syntax.Union(lit("a"), lit("b")),
		syntax.Union(lit("c"), lit("d")),
	)
	s = extract(e)
	wantLiterals(t, s, "ac", "ad", "bc", "bd")
	if !s.IsExact() || !s.AllComplete() {
		t.Error("cross product should stay exact and complete")
	}
}

func TestClosurePrefixes(t *testing.T) {
	s := extract(syntax.Closure(lit("a")))
	if !s.IsExact() {
		t.Error("closure extraction is exact (the empty prefix)")
	}
	if !s.HasEmpty() {
		t.Error("closure must contribute the empty prefix")
	}
	if s.AllComplete() {
		t.Error("the closure prefix is not a complete match")
	}

	// a·b* keeps "a" as an incomplete prefix.
	s = extract(syntax.Concat(lit("a"), syntax.Closure(lit("b"))))
	if !s.IsExact() {
		t.Error("want exact")
	}
	wantLiterals(t, s, "a")
	if s.AllComplete() {
		t.Error("prefix before a closure cannot be complete")
	}
	if s.HasEmpty() {
		t.Error("the closure's empty prefix is absorbed by the leading literal")
	}
}

func TestConcatWithNull(t *testing.T) {
	// a·Null matches nothing: the literal set is exactly empty.
	s := extract(syntax.Concat(lit("a"), syntax.Null[string]()))
	if !s.IsExact() || !s.IsEmpty() {
		t.Errorf("want exact empty, got exact=%v len=%d", s.IsExact(), s.Len())
	}

	// Null·a likewise.
	s = extract(syntax.Concat(syntax.Null[string](), lit("a")))
	if !s.IsExact() || !s.IsEmpty() {
		t.Errorf("want exact empty, got exact=%v len=%d", s.IsExact(), s.Len())
	}
}

func TestMaxLiteralsOverflow(t *testing.T) {
	// A union of 5 alternatives against a limit of 4.
	e := syntax.Union(lit("a"), syntax.Union(lit("b"), syntax.Union(lit("c"), syntax.Union(lit("d"), lit("e")))))
	s := New[string](ExtractorConfig{MaxLiterals: 4, MaxLiteralLen: 64}).Prefixes(e)
	if s.IsExact() {
		t.Error("overflowing MaxLiterals must clear exactness")
	}
	if s.Len() > 4 {
		t.Errorf("len = %d, want <= 4", s.Len())
	}
}

func TestMaxLiteralLenTruncation(t *testing.T) {
	// a·b·c against a length limit of 2: truncation keeps the sequence
	// exact but the literal becomes a prefix.
	e := syntax.Concat(lit("a"), syntax.Concat(lit("b"), lit("c")))
	s := New[string](ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 2}).Prefixes(e)
	if !s.IsExact() {
		t.Error("length truncation must keep exactness")
	}
	wantLiterals(t, s, "ab")
	if s.Get(0).Complete {
		t.Error("truncated literal cannot be complete")
	}
}

func TestMinimizeDeduplicates(t *testing.T) {
	e := syntax.Union(lit("a"), syntax.Union(lit("a"), lit("b")))
	s := extract(e)
	wantLiterals(t, s, "a", "b")
}

func TestUnionOfCompleteAndPrefix(t *testing.T) {
	// a | b·c* yields a complete "a" and an incomplete "b".
	e := syntax.Union(lit("a"), syntax.Concat(lit("b"), syntax.Closure(lit("c"))))
	s := extract(e)
	if !s.IsExact() {
		t.Error("want exact")
	}
	wantLiterals(t, s, "a", "b")
	if !s.Get(0).Complete || s.Get(1).Complete {
		t.Error("completeness flags: want [complete, prefix]")
	}
}
