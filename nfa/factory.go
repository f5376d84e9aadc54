package nfa

import (
	"github.com/coregx/symregex/automaton"
	"github.com/coregx/symregex/syntax"
)

// Factory implements automaton.Factory by Thompson construction. Its
// primitives never fail; the error results exist to satisfy the factory
// contract, which must allow for collaborators that can.
type Factory[T comparable] struct{}

var _ automaton.Factory[int, *NFA[int]] = Factory[int]{}

// Compile converts e into an equivalent NFA.
//
// Example:
//
//	e := syntax.Closure(syntax.Concat(syntax.Literal('a'), syntax.Literal('b')))
//	m, _ := nfa.Compile(e)
//	m.Accepts([]rune("abab")) // true
func Compile[T comparable](e *syntax.Expr[T]) (*NFA[T], error) {
	return automaton.Build[T, *NFA[T]](e, Factory[T]{})
}

// Literal returns a two-state fragment consuming exactly sym.
func (Factory[T]) Literal(sym T) (*NFA[T], error) {
	return &NFA[T]{
		states: []state[T]{
			{kind: kindSymbol, sym: sym, next: 1},
			{kind: kindMatch},
		},
		start: 0,
		match: 1,
	}, nil
}

// EmptyWord returns a fragment whose start state is its match state.
func (Factory[T]) EmptyWord() (*NFA[T], error) {
	return &NFA[T]{
		states: []state[T]{{kind: kindMatch}},
		start:  0,
		match:  0,
	}, nil
}

// EmptyLanguage returns a fragment whose start is a dead state; the match
// state exists but is unreachable.
func (Factory[T]) EmptyLanguage() (*NFA[T], error) {
	return &NFA[T]{
		states: []state[T]{
			{kind: kindFail},
			{kind: kindMatch},
		},
		start: 0,
		match: 1,
	}, nil
}

// Concat splices a's match state into b's start state.
func (Factory[T]) Concat(a, b *NFA[T]) (*NFA[T], error) {
	off := StateID(len(a.states))
	states := make([]state[T], 0, len(a.states)+len(b.states))
	states = appendShifted(states, a.states, 0)
	states = appendShifted(states, b.states, off)
	redirect(states, a.match, b.start+off)
	return &NFA[T]{
		states: states,
		start:  a.start,
		match:  b.match + off,
	}, nil
}

// Union prepends a split state fanning out to both operands and funnels
// their match states into a fresh common match state.
func (Factory[T]) Union(a, b *NFA[T]) (*NFA[T], error) {
	offA := StateID(1)
	offB := offA + StateID(len(a.states))
	match := offB + StateID(len(b.states))

	states := make([]state[T], 0, len(a.states)+len(b.states)+2)
	states = append(states, state[T]{kind: kindSplit, left: a.start + offA, right: b.start + offB})
	states = appendShifted(states, a.states, offA)
	states = appendShifted(states, b.states, offB)
	states = append(states, state[T]{kind: kindMatch})

	redirect(states, a.match+offA, match)
	redirect(states, b.match+offB, match)
	return &NFA[T]{
		states: states,
		start:  0,
		match:  match,
	}, nil
}

// Closure wraps a in a split state that either enters the operand or exits
// to the match state; the operand's match state loops back to the split.
func (Factory[T]) Closure(a *NFA[T]) (*NFA[T], error) {
	off := StateID(1)
	match := off + StateID(len(a.states))

	states := make([]state[T], 0, len(a.states)+2)
	states = append(states, state[T]{kind: kindSplit, left: a.start + off, right: match})
	states = appendShifted(states, a.states, off)
	states = append(states, state[T]{kind: kindMatch})

	redirect(states, a.match+off, 0)
	return &NFA[T]{
		states: states,
		start:  0,
		match:  match,
	}, nil
}
