// Package symregex provides regular expressions over arbitrary symbol
// types.
//
// Where regexp matches patterns against text, symregex matches an
// expression algebra against finite sequences of any comparable Go type:
// ints, runes, bytes, structs, whatever a protocol or token stream is made
// of. There is no pattern syntax and no parser; expressions are built by
// composing six constructors:
//
//	e := symregex.Closure(symregex.Concat(
//	    symregex.Literal(1),
//	    symregex.Literal(2),
//	))
//	n, ok := symregex.Match(e, []int{1, 2, 1, 2})
//	// n == 4, ok == true
//
// Three independent consumers traverse the same immutable tree:
//
//   - the matching engine (Evaluate, Match, MatchPrefix, Find), a
//     position-set algorithm with per-call memoization, polynomial in
//     input length times expression size;
//   - the pattern emitter (Pattern), which renders expressions over
//     string-like symbols as conventional regex patterns;
//   - the automaton builder (ToAutomaton, Compile), which assembles an
//     equivalent finite automaton through composition primitives.
//
// Expression trees are immutable and safe to share across goroutines;
// subexpressions may be reused in any number of parents.
package symregex

import (
	"github.com/coregx/symregex/automaton"
	"github.com/coregx/symregex/engine"
	"github.com/coregx/symregex/pattern"
	"github.com/coregx/symregex/syntax"
)

// Expr is an abstract regular expression over symbols of type T.
type Expr[T comparable] = syntax.Expr[T]

// Null returns the expression for the empty language; no sequence
// satisfies it, not even the empty one.
func Null[T comparable]() *Expr[T] { return syntax.Null[T]() }

// Empty returns the expression satisfied by exactly the empty sequence.
func Empty[T comparable]() *Expr[T] { return syntax.Empty[T]() }

// Literal returns the expression satisfied by exactly the one-symbol
// sequence [sym].
func Literal[T comparable](sym T) *Expr[T] { return syntax.Literal(sym) }

// Concat returns the concatenation of a and b.
func Concat[T comparable](a, b *Expr[T]) *Expr[T] { return syntax.Concat(a, b) }

// Union returns the alternation of a and b.
func Union[T comparable](a, b *Expr[T]) *Expr[T] { return syntax.Union(a, b) }

// Closure returns the Kleene closure of a: zero or more repetitions.
func Closure[T comparable](a *Expr[T]) *Expr[T] { return syntax.Closure(a) }

// Mode selects the matching discipline for Evaluate.
type Mode = engine.Mode

const (
	// Full requires the entire sequence to satisfy the expression.
	Full = engine.Full

	// Prefix asks for the longest satisfying leading portion.
	Prefix = engine.Prefix
)

// Evaluate matches seq against e in the given mode.
//
// In Full mode it reports whether the whole sequence satisfies e. In
// Prefix mode it returns the length of the longest satisfying prefix. In
// both modes ok is false when nothing matches; a returned length of zero
// with ok true is a real empty match.
//
// Example:
//
//	e := symregex.Union(
//	    symregex.Closure(symregex.Literal(2)),
//	    symregex.Closure(symregex.Literal(3)),
//	)
//	n, ok := symregex.Evaluate(e, []int{2, 2, 3, 3}, symregex.Prefix)
//	// n == 2, ok == true: neither branch spans mixed symbols
func Evaluate[T comparable](e *Expr[T], seq []T, mode Mode) (int, bool) {
	return engine.Evaluate(e, seq, mode)
}

// Match matches seq against e in Full mode, returning len(seq) on success.
func Match[T comparable](e *Expr[T], seq []T) (int, bool) {
	return engine.Evaluate(e, seq, Full)
}

// MatchPrefix matches seq against e in Prefix mode, returning the length
// of the longest satisfying prefix.
func MatchPrefix[T comparable](e *Expr[T], seq []T) (int, bool) {
	return engine.Evaluate(e, seq, Prefix)
}

// Pattern renders e as a conventional regular expression pattern string.
//
// Symbols must be strings, runes, or bytes; see the pattern package for
// the emission rules and the never-matching rendering of Null.
func Pattern[T comparable](e *Expr[T]) (string, error) {
	return pattern.Emit(e)
}

// ToAutomaton assembles a finite automaton equivalent to e using the
// factory's composition primitives. Factory errors propagate unchanged.
//
// Example:
//
//	e := symregex.Union(symregex.Literal('a'), symregex.Literal('b'))
//	m, err := symregex.ToAutomaton(e, nfa.Factory[rune]{})
func ToAutomaton[T comparable, A any](e *Expr[T], f automaton.Factory[T, A]) (A, error) {
	return automaton.Build(e, f)
}
