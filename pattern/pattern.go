// Package pattern renders abstract regular expressions over string-like
// symbols as conventional regular expression patterns.
//
// The emitted pattern uses only literal characters, alternation '|',
// closure '*', and grouping parentheses, so any engine implementing the
// conventional syntax accepts it. Every subexpression is parenthesized,
// making precedence explicit without any knowledge of the consumer's
// operator binding rules.
//
// Emission is defined only for symbol types with an obvious single-
// character or substring rendering: string, rune, and byte. Any other
// symbol type reports ErrSymbolNotString; abstract symbols have no
// concrete-syntax spelling.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/symregex/syntax"
)

// ErrSymbolNotString indicates a literal whose symbol type has no
// concrete-syntax rendering.
var ErrSymbolNotString = errors.New("symbol is not representable in pattern syntax")

// EmitError wraps an emission failure with the symbol that caused it.
type EmitError struct {
	Sym any
	Err error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	return fmt.Sprintf("pattern: cannot emit symbol %v (type %T): %v", e.Sym, e.Sym, e.Err)
}

// Unwrap returns the underlying error.
func (e *EmitError) Unwrap() error {
	return e.Err
}

// neverMatch is a character class satisfied by no character: a character
// must be either a word character or a non-word character. It stands in for
// the empty language, which conventional syntax cannot express directly.
const neverMatch = `[^\w\W]`

// Emit renders e as a conventional regular expression pattern.
//
// Symbols must be of type string, rune, or byte; metacharacters in symbol
// text are escaped. The empty language is rendered as the never-matching
// class [^\w\W] rather than reported as an error, following the original
// convention for patterns that must fail on every input.
//
// Example:
//
//	e := syntax.Closure(syntax.Union(
//	    syntax.Concat(syntax.Literal("a"), syntax.Literal("b")),
//	    syntax.Empty[string](),
//	))
//	p, _ := pattern.Emit(e)
//	// p == "((((a)(b))|())*)"
func Emit[T comparable](e *syntax.Expr[T]) (string, error) {
	var sb strings.Builder
	if err := emit(e, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func emit[T comparable](e *syntax.Expr[T], sb *strings.Builder) error {
	switch e.Op() {
	case syntax.OpNull:
		sb.WriteString(neverMatch)

	case syntax.OpEmpty:
		// An empty group rather than the bare empty fragment: a closure
		// over the empty word must emit "(()*)", not the malformed "(*)".
		sb.WriteString("()")

	case syntax.OpLiteral:
		frag, err := renderSymbol(e.Sym())
		if err != nil {
			return err
		}
		sb.WriteByte('(')
		sb.WriteString(frag)
		sb.WriteByte(')')

	case syntax.OpConcat:
		sb.WriteByte('(')
		if err := emit(e.Left(), sb); err != nil {
			return err
		}
		if err := emit(e.Right(), sb); err != nil {
			return err
		}
		sb.WriteByte(')')

	case syntax.OpUnion:
		sb.WriteByte('(')
		if err := emit(e.Left(), sb); err != nil {
			return err
		}
		sb.WriteByte('|')
		if err := emit(e.Right(), sb); err != nil {
			return err
		}
		sb.WriteByte(')')

	case syntax.OpClosure:
		sb.WriteByte('(')
		if err := emit(e.Left(), sb); err != nil {
			return err
		}
		sb.WriteString("*)")
	}
	return nil
}

// renderSymbol converts one symbol to an escaped pattern fragment.
func renderSymbol[T comparable](sym T) (string, error) {
	switch v := any(sym).(type) {
	case string:
		return QuoteMeta(v), nil
	case rune:
		return QuoteMeta(string(v)), nil
	case byte:
		return QuoteMeta(string(rune(v))), nil
	default:
		return "", &EmitError{Sym: sym, Err: ErrSymbolNotString}
	}
}

// QuoteMeta returns s with every regular expression metacharacter escaped;
// the result matches exactly the literal text s.
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
