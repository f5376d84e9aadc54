package literal

import "github.com/coregx/symregex/syntax"

// ExtractorConfig bounds extraction so pathological expressions cannot
// explode the literal set. Alternatives beyond MaxLiterals are dropped and
// the result marked inexact; symbols beyond MaxLiteralLen are truncated,
// which only downgrades the affected literal from complete to prefix.
type ExtractorConfig struct {
	// MaxLiterals limits how many alternative literals are kept.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each literal in symbols.
	// Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor extracts prefix literal sequences from expressions.
type Extractor[T comparable] struct {
	config ExtractorConfig
}

// New creates an Extractor with the given limits.
func New[T comparable](config ExtractorConfig) *Extractor[T] {
	if config.MaxLiterals <= 0 {
		config.MaxLiterals = DefaultConfig().MaxLiterals
	}
	if config.MaxLiteralLen <= 0 {
		config.MaxLiteralLen = DefaultConfig().MaxLiteralLen
	}
	return &Extractor[T]{config: config}
}

// Prefixes extracts the prefix literal sequence of e.
//
// The result is exact unless the alternative count overflowed
// MaxLiterals. For an exact result every match of e starts with one of the
// returned literals, and every Complete literal is itself a match.
//
// Example:
//
//	e := syntax.Union(
//	    syntax.Concat(syntax.Literal(byte('a')), syntax.Literal(byte('b'))),
//	    syntax.Literal(byte('c')),
//	)
//	seq := literal.New[byte](literal.DefaultConfig()).Prefixes(e)
//	// seq: {"ab" complete, "c" complete}, exact
func (x *Extractor[T]) Prefixes(e *syntax.Expr[T]) *Seq[T] {
	s := x.prefixes(e)
	s.Minimize()
	return s
}

func (x *Extractor[T]) prefixes(e *syntax.Expr[T]) *Seq[T] {
	switch e.Op() {
	case syntax.OpNull:
		// Empty language: exactly no literals.
		return &Seq[T]{exact: true}

	case syntax.OpEmpty:
		return &Seq[T]{
			lits:  []Literal[T]{{Complete: true}},
			exact: true,
		}

	case syntax.OpLiteral:
		return &Seq[T]{
			lits:  []Literal[T]{{Syms: []T{e.Sym()}, Complete: true}},
			exact: true,
		}

	case syntax.OpUnion:
		return x.union(x.prefixes(e.Left()), x.prefixes(e.Right()))

	case syntax.OpConcat:
		return x.cross(x.prefixes(e.Left()), x.prefixes(e.Right()))

	default: // syntax.OpClosure
		// A closure matches the empty sequence, so the only universally
		// valid prefix is the empty one.
		return &Seq[T]{
			lits:  []Literal[T]{{Complete: false}},
			exact: true,
		}
	}
}

// union merges two alternative sets, dropping overflow.
func (x *Extractor[T]) union(a, b *Seq[T]) *Seq[T] {
	out := &Seq[T]{
		lits:  make([]Literal[T], 0, len(a.lits)+len(b.lits)),
		exact: a.exact && b.exact,
	}
	out.lits = append(out.lits, a.lits...)
	out.lits = append(out.lits, b.lits...)
	if len(out.lits) > x.config.MaxLiterals {
		out.lits = out.lits[:x.config.MaxLiterals]
		out.exact = false
	}
	return out
}

// cross extends every complete literal of a with the literals of b;
// incomplete literals of a already cover their matches as prefixes and
// pass through unchanged.
func (x *Extractor[T]) cross(a, b *Seq[T]) *Seq[T] {
	out := &Seq[T]{exact: a.exact}
	for _, la := range a.lits {
		if !la.Complete {
			out.lits = append(out.lits, la)
			continue
		}
		if b.IsEmpty() {
			if b.exact {
				// Right side matches nothing: this alternative is dead.
				continue
			}
			// Right side unknown: la survives only as a prefix.
			out.lits = append(out.lits, Literal[T]{Syms: la.Syms, Complete: false})
			out.exact = false
			continue
		}
		if !b.exact {
			out.exact = false
		}
		for _, lb := range b.lits {
			syms := make([]T, 0, len(la.Syms)+len(lb.Syms))
			syms = append(syms, la.Syms...)
			syms = append(syms, lb.Syms...)
			complete := lb.Complete
			if len(syms) > x.config.MaxLiteralLen {
				syms = syms[:x.config.MaxLiteralLen]
				complete = false
			}
			out.lits = append(out.lits, Literal[T]{Syms: syms, Complete: complete})
			if len(out.lits) > x.config.MaxLiterals {
				out.lits = out.lits[:x.config.MaxLiterals]
				out.exact = false
				return out
			}
		}
	}
	return out
}
