// Package automaton converts abstract regular expressions into finite
// automata through a collaborator-supplied set of composition primitives.
//
// The package knows nothing about automaton internals: no states, no
// transitions, no epsilon-closure. A Factory implementation owns all of
// that; Build only maps each expression node kind onto the correspondingly
// named primitive. The nfa package in this module provides one Factory;
// any other automaton representation can be plugged in the same way.
package automaton

import "github.com/coregx/symregex/syntax"

// Factory supplies the six composition primitives Build needs to assemble
// an automaton of type A over symbols of type T.
//
// Primitives may fail; Build propagates any error unchanged to its caller
// and performs no recovery. Implementations that cannot fail simply return
// nil errors.
type Factory[T comparable, A any] interface {
	// Literal returns an automaton accepting exactly the one-symbol
	// sequence [sym].
	Literal(sym T) (A, error)

	// EmptyWord returns an automaton accepting exactly the empty sequence.
	EmptyWord() (A, error)

	// EmptyLanguage returns an automaton accepting nothing.
	EmptyLanguage() (A, error)

	// Concat returns an automaton accepting any sequence splittable into a
	// part accepted by a followed by a part accepted by b.
	Concat(a, b A) (A, error)

	// Union returns an automaton accepting any sequence accepted by a or b.
	Union(a, b A) (A, error)

	// Closure returns an automaton accepting zero or more consecutive
	// sequences each accepted by a.
	Closure(a A) (A, error)
}

// Build assembles an automaton equivalent to e by structural recursion,
// invoking one factory primitive per expression node. The resulting
// automaton accepts exactly the sequences that satisfy e in Full mode.
//
// Example:
//
//	e := syntax.Union(syntax.Literal('a'), syntax.Literal('b'))
//	m, err := automaton.Build(e, nfa.Factory[rune]{})
func Build[T comparable, A any](e *syntax.Expr[T], f Factory[T, A]) (A, error) {
	switch e.Op() {
	case syntax.OpNull:
		return f.EmptyLanguage()

	case syntax.OpEmpty:
		return f.EmptyWord()

	case syntax.OpLiteral:
		return f.Literal(e.Sym())

	case syntax.OpConcat:
		a, err := Build(e.Left(), f)
		if err != nil {
			var zero A
			return zero, err
		}
		b, err := Build(e.Right(), f)
		if err != nil {
			var zero A
			return zero, err
		}
		return f.Concat(a, b)

	case syntax.OpUnion:
		a, err := Build(e.Left(), f)
		if err != nil {
			var zero A
			return zero, err
		}
		b, err := Build(e.Right(), f)
		if err != nil {
			var zero A
			return zero, err
		}
		return f.Union(a, b)

	default: // syntax.OpClosure
		a, err := Build(e.Left(), f)
		if err != nil {
			var zero A
			return zero, err
		}
		return f.Closure(a)
	}
}
