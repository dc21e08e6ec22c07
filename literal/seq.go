// Package literal extracts required literal prefixes from compiled programs.
//
// Every match of a pattern without a leading quantifier or anchor must begin
// with one of a small set of byte strings: the run of literal instructions at
// the front of the program, optionally fanned out over a small leading
// character class. Prefilters use these literals to skip haystack positions
// that cannot start a match.
package literal

// Literal is one required prefix. Complete marks a literal that is an entire
// match by itself: finding it in the haystack IS a match, no verification
// needed.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Seq is an ordered set of alternative literals extracted from one program.
// An empty Seq means no useful prefix exists and search must scan every
// position.
type Seq struct {
	lits []Literal
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// AllComplete reports whether every literal is a complete match on its own.
// False for an empty sequence.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

func (s *Seq) push(l Literal) {
	s.lits = append(s.lits, l)
}
