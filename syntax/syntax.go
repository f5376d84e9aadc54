// Package syntax defines the abstract regular expression algebra: an
// immutable expression tree over an arbitrary comparable symbol type.
//
// Unlike regexp/syntax, there is no textual pattern language and no parser.
// Expressions are built only by composing the six constructors:
//
//	e := syntax.Concat(
//	    syntax.Literal(1),
//	    syntax.Closure(syntax.Literal(2)),
//	)
//
// Trees are immutable once constructed. Subtrees may be shared freely
// between parents and across goroutines; no traversal in this module ever
// writes to a node.
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an expression node. The set of operations is
// closed: every traversal in this module (matching, pattern emission,
// automaton construction) switches exhaustively over these values.
type Op uint8

const (
	// OpNull is the empty language; it matches no sequence at all.
	OpNull Op = iota

	// OpEmpty matches exactly the zero-length sequence.
	OpEmpty

	// OpLiteral matches exactly one symbol.
	OpLiteral

	// OpConcat matches any sequence splittable into a prefix matched by the
	// left operand and a suffix matched by the right operand.
	OpConcat

	// OpUnion matches any sequence matched by either operand.
	OpUnion

	// OpClosure matches zero or more consecutive sequences each matched by
	// the operand.
	OpClosure
)

// String returns a human-readable representation of the Op.
func (op Op) String() string {
	switch op {
	case OpNull:
		return "Null"
	case OpEmpty:
		return "Empty"
	case OpLiteral:
		return "Literal"
	case OpConcat:
		return "Concat"
	case OpUnion:
		return "Union"
	case OpClosure:
		return "Closure"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(op))
	}
}

// Expr is a node of an abstract regular expression tree over symbols of
// type T. An Expr is immutable after construction and safe for concurrent
// use. The zero value is not a valid expression; use the constructors.
type Expr[T comparable] struct {
	op          Op
	sym         T        // valid for OpLiteral
	left, right *Expr[T] // left valid for OpConcat/OpUnion/OpClosure, right for OpConcat/OpUnion
}

// Null returns the expression for the empty language. No sequence satisfies
// it, not even the empty sequence.
func Null[T comparable]() *Expr[T] {
	return &Expr[T]{op: OpNull}
}

// Empty returns the expression satisfied by exactly the empty sequence.
func Empty[T comparable]() *Expr[T] {
	return &Expr[T]{op: OpEmpty}
}

// Literal returns the expression satisfied by exactly the one-symbol
// sequence [sym].
func Literal[T comparable](sym T) *Expr[T] {
	return &Expr[T]{op: OpLiteral, sym: sym}
}

// Concat returns the concatenation of a and b. The operands are shared, not
// copied; they may appear in any number of other expressions.
func Concat[T comparable](a, b *Expr[T]) *Expr[T] {
	return &Expr[T]{op: OpConcat, left: a, right: b}
}

// Union returns the alternation of a and b.
func Union[T comparable](a, b *Expr[T]) *Expr[T] {
	return &Expr[T]{op: OpUnion, left: a, right: b}
}

// Closure returns the Kleene closure of a: zero or more repetitions.
func Closure[T comparable](a *Expr[T]) *Expr[T] {
	return &Expr[T]{op: OpClosure, left: a}
}

// Op returns the node's operation.
func (e *Expr[T]) Op() Op { return e.op }

// Sym returns the literal symbol. It is meaningful only when Op is
// OpLiteral; for other kinds it returns the zero value of T.
func (e *Expr[T]) Sym() T { return e.sym }

// Left returns the first operand subexpression, or nil for leaf kinds.
// For OpClosure it is the sole operand.
func (e *Expr[T]) Left() *Expr[T] { return e.left }

// Right returns the second operand subexpression. It is non-nil only for
// OpConcat and OpUnion.
func (e *Expr[T]) Right() *Expr[T] { return e.right }

// MatchesEmpty reports whether the empty sequence satisfies e.
// It is true for Empty and Closure nodes, propagates through Concat (both
// operands) and Union (either operand), and is false for Null and Literal.
func (e *Expr[T]) MatchesEmpty() bool {
	switch e.op {
	case OpEmpty, OpClosure:
		return true
	case OpConcat:
		return e.left.MatchesEmpty() && e.right.MatchesEmpty()
	case OpUnion:
		return e.left.MatchesEmpty() || e.right.MatchesEmpty()
	default:
		return false
	}
}

// Size returns the number of nodes in the tree. Shared subtrees are counted
// once per occurrence, so Size bounds the work of any structural traversal.
func (e *Expr[T]) Size() int {
	switch e.op {
	case OpConcat, OpUnion:
		return 1 + e.left.Size() + e.right.Size()
	case OpClosure:
		return 1 + e.left.Size()
	default:
		return 1
	}
}

// String returns the expression in constructor notation, e.g.
// "Concat(Literal(1), Closure(Literal(2)))".
func (e *Expr[T]) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Expr[T]) writeTo(sb *strings.Builder) {
	switch e.op {
	case OpNull:
		sb.WriteString("Null()")
	case OpEmpty:
		sb.WriteString("Empty()")
	case OpLiteral:
		fmt.Fprintf(sb, "Literal(%v)", e.sym)
	case OpConcat, OpUnion:
		sb.WriteString(e.op.String())
		sb.WriteByte('(')
		e.left.writeTo(sb)
		sb.WriteString(", ")
		e.right.writeTo(sb)
		sb.WriteByte(')')
	case OpClosure:
		sb.WriteString("Closure(")
		e.left.writeTo(sb)
		sb.WriteByte(')')
	}
}
