package prefilter

import (
	"errors"
	"testing"

	"github.com/coregx/symregex/literal"
	"github.com/coregx/symregex/syntax"
)

func blit(b byte) *syntax.Expr[byte] { return syntax.Literal(b) }

func bconcat(s string) *syntax.Expr[byte] {
	e := blit(s[0])
	for i := 1; i < len(s); i++ {
		e = syntax.Concat(e, blit(s[i]))
	}
	return e
}

func prefixes(e *syntax.Expr[byte]) *literal.Seq[byte] {
	return literal.New[byte](literal.DefaultConfig()).Prefixes(e)
}

func TestUnsuitableSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  *literal.Seq[byte]
	}{
		{"nil", nil},
		{"empty language", prefixes(syntax.Null[byte]())},
		{"empty literal from nullable expression", prefixes(syntax.Closure(blit('a')))},
		{"empty word", prefixes(syntax.Empty[byte]())},
		{
			"inexact extraction",
			literal.New[byte](literal.ExtractorConfig{MaxLiterals: 1, MaxLiteralLen: 64}).
				Prefixes(syntax.Union(blit('a'), syntax.Union(blit('b'), blit('c')))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAhoCorasick(tt.seq); !errors.Is(err, ErrUnsuitable) {
				t.Errorf("err = %v, want ErrUnsuitable", err)
			}
		})
	}
}

func TestSingleLiteral(t *testing.T) {
	pf, err := NewAhoCorasick(prefixes(bconcat("ab")))
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}
	if !pf.IsComplete() {
		t.Error("a single complete literal is a complete prefilter")
	}

	haystack := []byte("zzzab")
	if got := pf.Find(haystack, 0); got != 3 {
		t.Errorf("Find = %d, want 3", got)
	}
	if got := pf.Find(haystack, 4); got != -1 {
		t.Errorf("Find past the occurrence = %d, want -1", got)
	}
	if got := pf.Find([]byte("zzz"), 0); got != -1 {
		t.Errorf("Find with no occurrence = %d, want -1", got)
	}
	if got := pf.Find(haystack, len(haystack)+1); got != -1 {
		t.Errorf("Find beyond haystack = %d, want -1", got)
	}
}

func TestAlternationEqualLengths(t *testing.T) {
	// With equal literal lengths every reporting order yields the same
	// candidate: occurrence end minus literal length is the occurrence
	// start.
	e := syntax.Union(bconcat("ab"), bconcat("cd"))
	pf, err := NewAhoCorasick(prefixes(e))
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}
	if pf.IsComplete() {
		t.Error("multi-literal prefilters require verification")
	}

	if got := pf.Find([]byte("xxcdab"), 0); got != 2 {
		t.Errorf("Find = %d, want 2", got)
	}
	if got := pf.Find([]byte("xxcdab"), 3); got != 4 {
		t.Errorf("Find from 3 = %d, want 4", got)
	}
}

func TestMixedLengthsCandidateIsSound(t *testing.T) {
	// a | bcd: the candidate may undershoot the true occurrence start by
	// up to maxLen-1 positions but must never overshoot it.
	e := syntax.Union(blit('a'), bconcat("bcd"))
	pf, err := NewAhoCorasick(prefixes(e))
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}

	haystack := []byte("zzbcdza")
	// Occurrences start at 2 ("bcd") and 6 ("a").
	cand := pf.Find(haystack, 0)
	if cand < 0 || cand > 2 {
		t.Errorf("first candidate = %d, want in [0, 2]", cand)
	}
	cand = pf.Find(haystack, 5)
	if cand < 5 || cand > 6 {
		t.Errorf("second candidate = %d, want in [5, 6]", cand)
	}
}

func TestCandidateClampedToStart(t *testing.T) {
	pf, err := NewAhoCorasick(prefixes(bconcat("abc")))
	if err != nil {
		t.Fatalf("NewAhoCorasick: %v", err)
	}
	// Occurrence at 0; searching from 0 must not produce a negative
	// candidate.
	if got := pf.Find([]byte("abczz"), 0); got != 0 {
		t.Errorf("Find = %d, want 0", got)
	}
}
