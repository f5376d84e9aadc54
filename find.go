package symregex

import (
	"github.com/coregx/symregex/engine"
	"github.com/coregx/symregex/literal"
	"github.com/coregx/symregex/prefilter"
)

// Find returns the leftmost-longest unanchored match of e in seq: the
// smallest start index at which e matches and the largest end index
// reachable from that start. ok is false when no position matches.
//
// For byte symbols, expressions whose matches must begin with one of a
// finite set of extracted literals are searched with an Aho-Corasick
// prefilter; every other case scans start positions with the engine
// directly. The two paths return identical results.
//
// Example:
//
//	e := symregex.Concat(symregex.Literal(byte('a')), symregex.Literal(byte('b')))
//	start, end, ok := symregex.Find(e, []byte("xxab"))
//	// start == 2, end == 4, ok == true
func Find[T comparable](e *Expr[T], seq []T) (start, end int, ok bool) {
	if eb, isByteExpr := any(e).(*Expr[byte]); isByteExpr {
		if bs, isBytes := any(seq).([]byte); isBytes {
			return findBytes(eb, bs)
		}
	}
	return engine.Find(e, seq)
}

// findBytes is the prefiltered search path for byte symbols.
func findBytes(e *Expr[byte], seq []byte) (start, end int, ok bool) {
	lits := literal.New[byte](literal.DefaultConfig()).Prefixes(e)

	// An exact extraction with no literals means the language is empty.
	if lits.IsExact() && lits.IsEmpty() {
		return 0, 0, false
	}

	pf, err := prefilter.NewAhoCorasick(lits)
	if err != nil {
		// Unsuitable literals (nullable expression, inexact extraction);
		// nothing to accelerate.
		return engine.Find(e, seq)
	}

	s := engine.NewSearcher(e, seq)
	at := 0
	for at <= len(seq) {
		cand := pf.Find(seq, at)
		if cand < 0 {
			return 0, 0, false
		}
		if end, matched := s.MatchAt(cand); matched {
			return cand, end, true
		}
		at = cand + 1
	}
	return 0, 0, false
}
