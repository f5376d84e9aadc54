package symregex

import (
	"testing"

	"github.com/coregx/coregex"
)

// chars splits a string into one-character string symbols.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i:i+1])
	}
	return out
}

// exprPool deterministically enumerates expressions over one-character
// string literals, Null excluded: the round-trip property is defined for
// trees built from Empty, Literal, Concat, Union and Closure.
func exprPool(alphabet []string, n int) []*Expr[string] {
	pool := []*Expr[string]{Empty[string]()}
	for _, s := range alphabet {
		pool = append(pool, Literal(s))
	}
	for i := 0; len(pool) < n; i++ {
		a := pool[i%len(pool)]
		b := pool[(i*7+3)%len(pool)]
		pool = append(pool, Concat(a, b), Union(a, b), Closure(a))
	}
	return pool[:n]
}

// allStrings enumerates every string over alphabet with length <= k.
func allStrings(alphabet []string, k int) []string {
	strs := []string{""}
	frontier := []string{""}
	for i := 0; i < k; i++ {
		var next []string
		for _, s := range frontier {
			for _, c := range alphabet {
				next = append(next, s+c)
				strs = append(strs, s+c)
			}
		}
		frontier = next
	}
	return strs
}

// A conventional regex engine compiling the emitted pattern must agree
// with the evaluation engine on full matches.
func TestPatternRoundTrip(t *testing.T) {
	alphabet := []string{"a", "b"}
	for _, e := range exprPool(alphabet, 100) {
		p, err := Pattern(e)
		if err != nil {
			t.Fatalf("Pattern(%v): %v", e, err)
		}
		re, err := coregex.Compile("^" + p + "$")
		if err != nil {
			t.Fatalf("coregex.Compile(%q) from %v: %v", p, e, err)
		}
		for _, s := range allStrings(alphabet, 4) {
			_, engineFull := Match(e, chars(s))
			if reFull := re.MatchString(s); reFull != engineFull {
				t.Errorf("%v (pattern %q) on %q: coregex %v, engine %v",
					e, p, s, reFull, engineFull)
			}
		}
	}
}

// The longest matching prefix must agree with what the conventional engine
// accepts over all prefixes of the input.
func TestPrefixAgreesWithConventionalEngine(t *testing.T) {
	alphabet := []string{"a", "b"}
	for _, e := range exprPool(alphabet, 40) {
		p, err := Pattern(e)
		if err != nil {
			t.Fatalf("Pattern(%v): %v", e, err)
		}
		re, err := coregex.Compile("^" + p + "$")
		if err != nil {
			t.Fatalf("coregex.Compile(%q): %v", p, err)
		}
		for _, s := range allStrings(alphabet, 4) {
			wantLen, wantOK := -1, false
			for i := 0; i <= len(s); i++ {
				if re.MatchString(s[:i]) {
					wantLen, wantOK = i, true
				}
			}
			gotLen, gotOK := MatchPrefix(e, chars(s))
			if gotOK != wantOK || (wantOK && gotLen != wantLen) {
				t.Errorf("%v (pattern %q) on %q: engine prefix (%d, %v), conventional (%d, %v)",
					e, p, s, gotLen, gotOK, wantLen, wantOK)
			}
		}
	}
}

// The never-matching class emitted for the empty language must be rejected
// by a conventional engine on every input.
func TestNeverMatchPattern(t *testing.T) {
	p, err := Pattern(Null[string]())
	if err != nil {
		t.Fatalf("Pattern(Null): %v", err)
	}
	re, err := coregex.Compile("^" + p + "$")
	if err != nil {
		t.Fatalf("coregex.Compile(%q): %v", p, err)
	}
	for _, s := range []string{"", "a", "_", " ", "ab"} {
		if re.MatchString(s) {
			t.Errorf("pattern %q matched %q", p, s)
		}
	}
}
