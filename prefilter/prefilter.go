// Package prefilter provides fast candidate filtering for unanchored search.
//
// A prefilter scans the haystack for literal prefixes extracted from a
// compiled program and reports positions where a match could start; every
// other position is skipped without touching the NFA simulator. The builder
// picks the cheapest primitive that covers the literal set:
//
//   - one single-byte literal  -> SWAR byte search
//   - one multi-byte literal   -> substring search (byte hop + verify)
//   - several literals         -> Aho-Corasick automaton
//
// A prefilter never changes what matches — only how fast non-matching
// positions are rejected. When the literal set is complete (the literals ARE
// the whole pattern), a candidate needs no verification at all.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyre/internal/memchr"
	"github.com/coregx/tinyre/literal"
)

// Prefilter finds candidate match positions in a haystack.
type Prefilter interface {
	// Find returns the position of the next candidate at or after start,
	// and the end of the literal found there. Returns (-1, -1) when no
	// candidate exists. The end offset is only a complete match boundary
	// when IsComplete reports true; otherwise the caller must verify the
	// candidate with the full engine.
	Find(haystack []byte, start int) (pos, end int)

	// IsComplete reports whether a candidate is already a full match.
	IsComplete() bool
}

// New builds a prefilter for the given literal sequence, or nil when the
// sequence offers nothing to search for (empty, or an Aho-Corasick build
// failure — search then degrades to scanning every position).
func New(seq *literal.Seq) Prefilter {
	switch {
	case seq.IsEmpty():
		return nil
	case seq.Len() == 1 && len(seq.Get(0).Bytes) == 1:
		return &memchrPrefilter{needle: seq.Get(0).Bytes[0], complete: seq.AllComplete()}
	case seq.Len() == 1:
		return &memmemPrefilter{needle: seq.Get(0).Bytes, complete: seq.AllComplete()}
	default:
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			builder.AddPattern(seq.Get(i).Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil
		}
		return &acPrefilter{auto: auto, complete: seq.AllComplete()}
	}
}

// memchrPrefilter finds candidates for a single one-byte literal.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (m *memchrPrefilter) Find(haystack []byte, start int) (int, int) {
	if start < 0 || start >= len(haystack) {
		return -1, -1
	}
	i := memchr.Index(haystack[start:], m.needle)
	if i < 0 {
		return -1, -1
	}
	return start + i, start + i + 1
}

func (m *memchrPrefilter) IsComplete() bool {
	return m.complete
}

// memmemPrefilter finds candidates for a single multi-byte literal using a
// first-byte hop plus verification.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (m *memmemPrefilter) Find(haystack []byte, start int) (int, int) {
	if start < 0 {
		return -1, -1
	}
	n := len(m.needle)
	for start+n <= len(haystack) {
		i := memchr.Index(haystack[start:len(haystack)-n+1], m.needle[0])
		if i < 0 {
			return -1, -1
		}
		pos := start + i
		if matchAt(haystack, pos, m.needle) {
			return pos, pos + n
		}
		start = pos + 1
	}
	return -1, -1
}

func (m *memmemPrefilter) IsComplete() bool {
	return m.complete
}

func matchAt(haystack []byte, pos int, needle []byte) bool {
	for i := 1; i < len(needle); i++ {
		if haystack[pos+i] != needle[i] {
			return false
		}
	}
	return true
}

// acPrefilter finds candidates for a set of literals with an Aho-Corasick
// automaton.
type acPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

func (a *acPrefilter) Find(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := a.auto.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

func (a *acPrefilter) IsComplete() bool {
	return a.complete
}
