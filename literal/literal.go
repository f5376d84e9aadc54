// Package literal extracts literal symbol sequences from abstract regular
// expressions for prefilter optimization.
//
// A prefix literal of an expression is a symbol sequence that begins some
// match of the expression. When the extracted set is exact, every match
// begins with one of the extracted literals, so a multi-pattern scan for
// the literals soundly narrows the start positions a search engine must
// verify. Literals marked Complete are entire matches on their own.
package literal

// Literal is one extracted symbol sequence. Complete marks a sequence that
// is itself a full match of the originating expression rather than only a
// prefix of potential matches.
type Literal[T comparable] struct {
	Syms     []T
	Complete bool
}

// Len returns the length of the literal in symbols.
func (l Literal[T]) Len() int {
	return len(l.Syms)
}

// Seq is a set of alternative literals extracted from one expression,
// together with whether the extraction is exact.
//
// When IsExact reports true, the set carries a guarantee: every match of
// the expression has some literal in the set as a prefix, and every
// Complete literal is a whole match. Extraction limits (too many
// alternatives) clear the guarantee; length truncation only downgrades
// Complete literals to prefixes and keeps the set exact.
type Seq[T comparable] struct {
	lits  []Literal[T]
	exact bool
}

// Len returns the number of literals in the sequence.
func (s *Seq[T]) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq[T]) Get(i int) Literal[T] {
	return s.lits[i]
}

// IsEmpty reports whether the sequence holds no literals. An empty exact
// sequence means the expression's language is empty.
func (s *Seq[T]) IsEmpty() bool {
	return len(s.lits) == 0
}

// IsExact reports whether the prefix guarantee holds.
func (s *Seq[T]) IsExact() bool {
	return s.exact
}

// AllComplete reports whether every literal is a complete match. Together
// with IsExact this means the expression's language is exactly the literal
// set.
func (s *Seq[T]) AllComplete() bool {
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// HasEmpty reports whether any literal is zero-length. An empty literal
// makes every position a candidate, so prefilters refuse such sequences.
func (s *Seq[T]) HasEmpty() bool {
	for _, l := range s.lits {
		if len(l.Syms) == 0 {
			return true
		}
	}
	return false
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq[T]) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := len(s.lits[0].Syms)
	for _, l := range s.lits[1:] {
		if len(l.Syms) < min {
			min = len(l.Syms)
		}
	}
	return min
}

// MaxLen returns the length of the longest literal, or 0 for an empty
// sequence.
func (s *Seq[T]) MaxLen() int {
	max := 0
	for _, l := range s.lits {
		if len(l.Syms) > max {
			max = len(l.Syms)
		}
	}
	return max
}

// Minimize removes duplicate literals in place, keeping first occurrences.
func (s *Seq[T]) Minimize() {
	out := s.lits[:0]
	for _, l := range s.lits {
		if !containsLiteral(out, l) {
			out = append(out, l)
		}
	}
	s.lits = out
}

func containsLiteral[T comparable](lits []Literal[T], l Literal[T]) bool {
	for _, have := range lits {
		if have.Complete != l.Complete || len(have.Syms) != len(l.Syms) {
			continue
		}
		same := true
		for i := range l.Syms {
			if have.Syms[i] != l.Syms[i] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
