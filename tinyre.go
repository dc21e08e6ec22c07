// Package tinyre provides a tiny, fixed-capacity regex engine suitable for
// embedding: no dynamic growth, bounded compile-time program size, and
// worst-case linear matching.
//
// A pattern compiles into a bytecode program of at most 30 instructions plus
// a 40-byte character class buffer. Matching runs the program as a
// breadth-first NFA simulation, so time is O(pattern * input) with no
// backtracking blowup.
//
// Supported syntax:
//
//	abc      literals        .      any byte (newlines too)
//	^  $     anchors         (...)  group (repetition anchor only)
//	\d \D    digit           \w \W  word byte
//	\s \S    whitespace      \x     literal x for any other x
//	[a-z0]   class           [^...] negated class
//	+  *     greedy repeat   ?      lazy optional
//
// There is no alternation, no bounded repetition, no capture reporting, and
// no Unicode awareness: input is an opaque byte sequence.
//
// Basic usage:
//
//	re, err := tinyre.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	match := re.Find([]byte("order 42 shipped"))
//	fmt.Println(string(match)) // "42"
package tinyre

import (
	"github.com/coregx/tinyre/literal"
	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/prefilter"
)

// Regex is a compiled pattern. It is immutable and safe for concurrent use:
// each search allocates its own simulator state.
type Regex struct {
	prog    *nfa.Program
	pf      prefilter.Prefilter
	pattern string
}

// Compile compiles a pattern.
//
// Compilation fails when the pattern does not fit the fixed capacities
// (nfa.MaxInsts instructions, nfa.MaxClass class bytes, nfa.MaxNesting
// groups) or ends inside an escape or character class. The returned error
// unwraps to one of the nfa package's sentinel errors.
func Compile(pattern string) (*Regex, error) {
	prog, err := nfa.Compile([]byte(pattern))
	if err != nil {
		return nil, err
	}
	return &Regex{
		prog:    prog,
		pf:      prefilter.New(literal.ExtractPrefixes(prog)),
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyre: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Matches compiles pattern and returns the leftmost match in text, or nil
// when the pattern fails to compile or does not match. One-shot convenience
// for callers that use a pattern once.
func Matches(pattern, text []byte) []byte {
	re, err := Compile(string(pattern))
	if err != nil {
		return nil
	}
	return re.Find(text)
}

// Match reports whether b contains a match of the pattern.
func (r *Regex) Match(b []byte) bool {
	_, _, ok := r.find(b)
	return ok
}

// MatchString reports whether s contains a match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns the leftmost match in b, as a sub-slice of b, or nil if there
// is no match. A match can be empty; use FindIndex to tell an empty match
// from no match.
func (r *Regex) Find(b []byte) []byte {
	start, end, ok := r.find(b)
	if !ok {
		return nil
	}
	return b[start:end]
}

// FindString returns the leftmost match in s, or "" if there is no match.
// Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	start, end, ok := r.find([]byte(s))
	if !ok {
		return ""
	}
	return s[start:end]
}

// FindIndex returns a two-element slice holding the byte offsets of the
// leftmost match in b, or nil if there is no match.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.find(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is FindIndex on a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// find locates the leftmost match. With a prefilter, the extracted literals
// are required prefixes, so no match starts before the first candidate. A
// complete literal set makes that candidate the match; otherwise a single
// unanchored simulator run from the candidate finds the leftmost match, which
// keeps the search linear in the input.
func (r *Regex) find(b []byte) (int, int, bool) {
	vm := nfa.NewPikeVM(r.prog)
	if r.pf == nil {
		return vm.Search(b)
	}
	cand, end := r.pf.Find(b, 0)
	if cand < 0 {
		return -1, -1, false
	}
	if r.pf.IsComplete() {
		return cand, end, true
	}
	start, e, ok := vm.Search(b[cand:])
	if !ok {
		return -1, -1, false
	}
	return cand + start, cand + e, true
}
