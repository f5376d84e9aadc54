package symregex

import (
	"github.com/coregx/symregex/nfa"
)

// Matcher is an expression compiled to a finite automaton for repeated
// matching. It behaves exactly like evaluating the expression directly;
// compilation trades a one-time construction cost for simulation that does
// not rebuild position sets per call.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher[T comparable] struct {
	expr *Expr[T]
	nfa  *nfa.NFA[T]
}

// Compile converts e into an automaton-backed Matcher.
//
// Example:
//
//	e := symregex.Union(
//	    symregex.Literal('x'),
//	    symregex.Closure(symregex.Concat(symregex.Literal('y'), symregex.Literal('z'))),
//	)
//	m, _ := symregex.Compile(e)
//	n, ok := m.Evaluate([]rune("yzyz"), symregex.Full)
//	// n == 4, ok == true
func Compile[T comparable](e *Expr[T]) (*Matcher[T], error) {
	machine, err := nfa.Compile(e)
	if err != nil {
		return nil, err
	}
	return &Matcher[T]{expr: e, nfa: machine}, nil
}

// Evaluate matches seq in the given mode with the same semantics as the
// package-level Evaluate on the originating expression.
func (m *Matcher[T]) Evaluate(seq []T, mode Mode) (int, bool) {
	switch mode {
	case Full:
		if m.nfa.Accepts(seq) {
			return len(seq), true
		}
		return 0, false
	default: // Prefix
		return m.nfa.LongestPrefix(seq)
	}
}

// Match matches seq in Full mode.
func (m *Matcher[T]) Match(seq []T) (int, bool) {
	return m.Evaluate(seq, Full)
}

// MatchPrefix matches seq in Prefix mode.
func (m *Matcher[T]) MatchPrefix(seq []T) (int, bool) {
	return m.Evaluate(seq, Prefix)
}

// Expr returns the expression this Matcher was compiled from.
func (m *Matcher[T]) Expr() *Expr[T] {
	return m.expr
}
