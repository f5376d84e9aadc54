// Package prefilter provides fast candidate filtering for unanchored
// searches over byte symbols.
//
// A prefilter scans for literal sequences extracted from an expression and
// proposes start positions; the position-set engine then verifies each
// candidate. Positions the prefilter skips are guaranteed not to start a
// match, so filtering never changes search results, only how many
// positions the engine has to check.
//
// The only strategy here is an Aho-Corasick automaton over the extracted
// literal alternatives. It applies when extraction is exact and produced
// no empty literal; expressions outside that shape fall back to plain
// position scanning.
package prefilter

import (
	"errors"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/symregex/literal"
)

// ErrUnsuitable indicates a literal sequence the prefilter cannot use:
// inexact extraction, no literals, or an empty literal that would make
// every position a candidate.
var ErrUnsuitable = errors.New("literal sequence is unsuitable for prefiltering")

// Prefilter proposes candidate start positions for a search.
type Prefilter interface {
	// Find returns the smallest position p >= start such that no match can
	// begin in [start, p), and a match may begin at p. It returns -1 when
	// no match can begin anywhere at or after start.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate position is already a match
	// start, with no engine verification required.
	IsComplete() bool
}

// ahoCorasick is a Prefilter backed by a multi-pattern automaton over the
// extracted literals.
type ahoCorasick struct {
	auto     *ahocorasick.Automaton
	maxLen   int
	complete bool
}

// NewAhoCorasick builds a Prefilter from an extracted literal sequence.
//
// The sequence must be exact, non-empty, and free of empty literals;
// anything else returns ErrUnsuitable. Automaton construction failures
// propagate unchanged.
func NewAhoCorasick(seq *literal.Seq[byte]) (Prefilter, error) {
	if seq == nil || !seq.IsExact() || seq.IsEmpty() || seq.HasEmpty() {
		return nil, ErrUnsuitable
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Syms)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &ahoCorasick{
		auto:   auto,
		maxLen: seq.MaxLen(),
		// A candidate is a definite match start only when the literals are
		// the whole language and reporting happens at literal starts; the
		// engine verification step is cheap, so completeness is claimed
		// only for the single-literal case where no reporting-order
		// ambiguity exists.
		complete: seq.AllComplete() && seq.Len() == 1,
	}, nil
}

// Find locates the next literal occurrence and converts it into a sound
// lower bound for match starts.
//
// The automaton may report occurrences ordered by end position, so an
// occurrence starting earlier than the reported one can still exist; any
// such occurrence ends no earlier, hence starts at or after
// reportedEnd - maxLen. That bound is what Find returns, clamped to start.
func (p *ahoCorasick) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	candidate := m.End - p.maxLen
	if candidate < start {
		candidate = start
	}
	return candidate
}

// IsComplete implements Prefilter.
func (p *ahoCorasick) IsComplete() bool {
	return p.complete
}
