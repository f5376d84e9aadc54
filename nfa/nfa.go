// Package nfa provides a Thompson NFA over arbitrary comparable symbol
// types, built through the automaton package's composition primitives.
//
// Each NFA is a Thompson fragment: one start state, one match state, and
// only symbol, epsilon, and split transitions in between. Composition
// never inspects fragment internals beyond re-indexing them into the
// combined state table, so every constructed automaton stays linear in the
// size of the originating expression.
//
// Simulation runs all states in lockstep with epsilon-closure over sparse
// state sets, giving O(len(sequence) * states) matching with no
// backtracking.
package nfa

import (
	"github.com/coregx/symregex/internal/conv"
	"github.com/coregx/symregex/internal/sparse"
)

// StateID uniquely identifies an NFA state within one automaton.
type StateID uint32

// InvalidState marks an unset state reference.
const InvalidState StateID = 0xFFFFFFFF

type stateKind uint8

const (
	// kindSymbol consumes one input symbol and moves to next.
	kindSymbol stateKind = iota

	// kindEpsilon moves to next without consuming input.
	kindEpsilon

	// kindSplit moves to both left and right without consuming input.
	kindSplit

	// kindMatch is the accepting state.
	kindMatch

	// kindFail is a dead state with no transitions.
	kindFail
)

// state is a single NFA state. The kind determines which fields are valid.
type state[T comparable] struct {
	kind        stateKind
	sym         T       // kindSymbol
	next        StateID // kindSymbol, kindEpsilon
	left, right StateID // kindSplit
}

// NFA is a nondeterministic finite automaton over symbols of type T with a
// single start and a single match state. An NFA is immutable after
// construction and safe for concurrent simulation.
type NFA[T comparable] struct {
	states []state[T]
	start  StateID
	match  StateID
}

// NumStates returns the number of states in the automaton.
func (n *NFA[T]) NumStates() int {
	return len(n.states)
}

// Accepts reports whether the automaton accepts exactly the whole of seq.
func (n *NFA[T]) Accepts(seq []T) bool {
	_, full := n.run(seq)
	return full
}

// LongestPrefix returns the length of the longest prefix of seq the
// automaton accepts, with ok false when no prefix (not even the empty one)
// is accepted.
func (n *NFA[T]) LongestPrefix(seq []T) (int, bool) {
	last, _ := n.run(seq)
	if last < 0 {
		return 0, false
	}
	return last, true
}

// run simulates the automaton over seq. It returns the largest index i
// such that the automaton accepts seq[:i] (-1 if none), and whether the
// automaton accepts all of seq.
func (n *NFA[T]) run(seq []T) (last int, full bool) {
	capacity := conv.IntToUint32(len(n.states))
	cur := sparse.New(capacity)
	next := sparse.New(capacity)

	n.addClosure(cur, n.start)
	last = -1
	if cur.Contains(uint32(n.match)) {
		last = 0
	}

	for i := 0; i < len(seq); i++ {
		next.Clear()
		for _, id := range cur.Values() {
			st := &n.states[id]
			if st.kind == kindSymbol && st.sym == seq[i] {
				n.addClosure(next, st.next)
			}
		}
		cur, next = next, cur
		if cur.IsEmpty() {
			return last, false
		}
		if cur.Contains(uint32(n.match)) {
			last = i + 1
		}
	}
	return last, cur.Contains(uint32(n.match))
}

// addClosure inserts id and everything reachable from it by epsilon and
// split transitions into set.
func (n *NFA[T]) addClosure(set *sparse.Set, id StateID) {
	stack := []StateID{id}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !set.Insert(uint32(s)) {
			continue
		}
		st := &n.states[s]
		switch st.kind {
		case kindEpsilon:
			stack = append(stack, st.next)
		case kindSplit:
			stack = append(stack, st.left, st.right)
		}
	}
}

// appendShifted copies src's states into dst with all state references
// shifted by off, and returns the extended slice.
func appendShifted[T comparable](dst, src []state[T], off StateID) []state[T] {
	for _, st := range src {
		switch st.kind {
		case kindSymbol, kindEpsilon:
			st.next += off
		case kindSplit:
			st.left += off
			st.right += off
		}
		dst = append(dst, st)
	}
	return dst
}

// redirect rewrites the (former) match state id into an epsilon transition
// to target, splicing one fragment into another.
func redirect[T comparable](states []state[T], id, target StateID) {
	states[id] = state[T]{kind: kindEpsilon, next: target}
}
