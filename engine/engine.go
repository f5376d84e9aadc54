// Package engine implements matching of abstract regular expressions
// against finite symbol sequences.
//
// The engine computes, for an expression node and a start index, the set of
// end indices the node can reach in the input (the reachable-position set).
// Working over sets of positions rather than a single greedy split makes
// every match derivable without backtracking: a full match exists exactly
// when the sequence length is reachable from index 0, and the longest
// matching prefix is the maximum reachable index.
//
// Reachable sets depend only on the identity of the expression node and the
// start index, so they are memoized per evaluation. This keeps the running
// time polynomial in len(sequence) * size(expression) where a naive
// recursive matcher is exponential on expressions like nested alternations
// of overlapping literals.
//
// The engine keeps no state between calls. All bookkeeping lives in a
// per-call table, so concurrent evaluations of a shared expression tree
// need no synchronization.
package engine

import (
	"github.com/coregx/symregex/internal/conv"
	"github.com/coregx/symregex/internal/sparse"
	"github.com/coregx/symregex/syntax"
)

// Mode selects the matching discipline.
type Mode uint8

const (
	// Full requires the entire sequence to satisfy the expression.
	Full Mode = iota

	// Prefix asks for the longest leading portion of the sequence that
	// satisfies the expression.
	Prefix
)

// String returns a human-readable representation of the Mode.
func (m Mode) String() string {
	switch m {
	case Full:
		return "Full"
	case Prefix:
		return "Prefix"
	default:
		return "Unknown"
	}
}

// Evaluate matches seq against e.
//
// In Full mode it returns (len(seq), true) when the whole sequence
// satisfies e. In Prefix mode it returns the length of the longest
// satisfying prefix, which may be zero when e matches the empty sequence.
// In both modes ok is false when nothing matches; a zero length with
// ok true is a real (empty) match, not a failure.
//
// Example:
//
//	e := syntax.Closure(syntax.Concat(syntax.Literal(1), syntax.Literal(2)))
//	n, ok := engine.Evaluate(e, []int{1, 2, 1, 2}, engine.Full)
//	// n == 4, ok == true
func Evaluate[T comparable](e *syntax.Expr[T], seq []T, mode Mode) (int, bool) {
	ev := newEvaluator(e, seq)
	set := ev.reach(e, 0)

	switch mode {
	case Full:
		want := conv.IntToUint32(len(seq))
		for _, p := range set {
			if p == want {
				return len(seq), true
			}
		}
		return 0, false
	default: // Prefix
		if len(set) == 0 {
			return 0, false
		}
		max := set[0]
		for _, p := range set[1:] {
			if p > max {
				max = p
			}
		}
		return int(max), true
	}
}

// Find returns the leftmost-longest unanchored match of e in seq: the
// smallest start index from which e matches, and the largest end index
// reachable from that start. ok is false when no position matches.
//
// An expression that matches the empty sequence matches at index 0, so
// Find then reports (0, 0, true) at worst.
func Find[T comparable](e *syntax.Expr[T], seq []T) (start, end int, ok bool) {
	s := NewSearcher(e, seq)
	for i := 0; i <= len(seq); i++ {
		if end, ok := s.MatchAt(i); ok {
			return i, end, true
		}
	}
	return 0, 0, false
}

// Searcher evaluates one expression against one sequence from multiple
// start positions, sharing the reachable-set table across positions. It is
// the verification half of a prefiltered search: a candidate generator
// proposes start positions and MatchAt confirms or rejects them.
//
// A Searcher is not safe for concurrent use; the shared table is mutable.
type Searcher[T comparable] struct {
	expr *syntax.Expr[T]
	ev   *evaluator[T]
}

// NewSearcher creates a Searcher for e over seq.
func NewSearcher[T comparable](e *syntax.Expr[T], seq []T) *Searcher[T] {
	return &Searcher[T]{expr: e, ev: newEvaluator(e, seq)}
}

// MatchAt reports whether e matches starting at index i, and if so the
// largest end index of any such match. i must be in [0, len(seq)].
func (s *Searcher[T]) MatchAt(i int) (end int, ok bool) {
	set := s.ev.reach(s.expr, i)
	if len(set) == 0 {
		return 0, false
	}
	max := set[0]
	for _, p := range set[1:] {
		if p > max {
			max = p
		}
	}
	return int(max), true
}

// memoKey identifies one reachable-set computation: the expression node by
// pointer identity and the start index.
type memoKey[T comparable] struct {
	node *syntax.Expr[T]
	pos  int
}

// evaluator holds the per-call state: the input sequence and the
// reachable-set table. It is created fresh for each evaluation and
// discarded afterwards.
type evaluator[T comparable] struct {
	seq  []T
	memo map[memoKey[T]][]uint32
}

func newEvaluator[T comparable](e *syntax.Expr[T], seq []T) *evaluator[T] {
	return &evaluator[T]{
		seq:  seq,
		memo: make(map[memoKey[T]][]uint32, e.Size()),
	}
}

// reach returns every end index j with i <= j <= len(seq) such that
// seq[i:j] satisfies e. The returned slice is duplicate-free, owned by the
// table, and must not be mutated by callers.
func (ev *evaluator[T]) reach(e *syntax.Expr[T], i int) []uint32 {
	key := memoKey[T]{node: e, pos: i}
	if set, ok := ev.memo[key]; ok {
		return set
	}

	var set []uint32
	switch e.Op() {
	case syntax.OpNull:
		// The empty language reaches nothing, not even i itself.

	case syntax.OpEmpty:
		set = []uint32{conv.IntToUint32(i)}

	case syntax.OpLiteral:
		if i < len(ev.seq) && ev.seq[i] == e.Sym() {
			set = []uint32{conv.IntToUint32(i + 1)}
		}

	case syntax.OpConcat:
		acc := ev.newPositionSet()
		for _, p := range ev.reach(e.Left(), i) {
			for _, q := range ev.reach(e.Right(), int(p)) {
				acc.Insert(q)
			}
		}
		set = snapshot(acc)

	case syntax.OpUnion:
		acc := ev.newPositionSet()
		for _, p := range ev.reach(e.Left(), i) {
			acc.Insert(p)
		}
		for _, p := range ev.reach(e.Right(), i) {
			acc.Insert(p)
		}
		set = snapshot(acc)

	case syntax.OpClosure:
		set = ev.reachClosure(e, i)
	}

	ev.memo[key] = set
	return set
}

// reachClosure computes the closure node's reachable set as a least fixed
// point via worklist iteration: seed with the zero-repetition position i,
// then repeatedly extend every known position by one more repetition of the
// operand. The q != p guard skips empty repetitions, which add no new
// position and would otherwise cycle when the operand matches the empty
// sequence (e.g. Closure(Empty())).
func (ev *evaluator[T]) reachClosure(e *syntax.Expr[T], i int) []uint32 {
	acc := ev.newPositionSet()
	start := conv.IntToUint32(i)
	acc.Insert(start)

	work := []uint32{start}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		for _, q := range ev.reach(e.Left(), int(p)) {
			if q != p && acc.Insert(q) {
				work = append(work, q)
			}
		}
	}
	return snapshot(acc)
}

func (ev *evaluator[T]) newPositionSet() *sparse.Set {
	return sparse.New(conv.IntToUint32(len(ev.seq) + 1))
}

// snapshot copies a transient position set into a compact slice suitable
// for the memo table.
func snapshot(s *sparse.Set) []uint32 {
	if s.IsEmpty() {
		return nil
	}
	out := make([]uint32, s.Len())
	copy(out, s.Values())
	return out
}
