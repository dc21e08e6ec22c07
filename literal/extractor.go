package literal

import (
	"github.com/coregx/tinyre/nfa"
)

// maxClassExpand bounds how many members a leading character class may have
// before expansion is abandoned. Beyond a handful of alternatives the
// prefilter stops paying for itself.
const maxClassExpand = 8

// maxLiteralLen caps extracted prefix length. Longer prefixes add nothing:
// the prefilter only needs enough bytes to make candidates rare.
const maxLiteralLen = 16

// ExtractPrefixes returns the literal prefixes every match of prog must
// start with, or an empty Seq when none exist.
//
// Extraction walks the instruction array from the front. The program is
// linear up to its first epsilon instruction — each consuming instruction
// matches exactly the next input byte — so a run of Char instructions is an
// unconditional prefix. A leading character class with at most
// maxClassExpand members fans the prefix out over its members. Anything
// else (anchors, quantifier splits, predicate classes, inverted classes)
// stops extraction; an anchored program gets no literals at all since
// position 0 is the only candidate anyway.
func ExtractPrefixes(prog *nfa.Program) *Seq {
	seq := &Seq{}
	n := prog.Len()
	if n == 0 {
		return seq
	}

	var heads [][]byte
	switch first := prog.Inst(0); first.Op() {
	case nfa.OpChar:
		heads = [][]byte{{first.Char()}}
	case nfa.OpCharClass:
		members := expandClass(prog, first)
		if len(members) == 0 || len(members) > maxClassExpand {
			return seq
		}
		for _, c := range members {
			heads = append(heads, []byte{c})
		}
	default:
		return seq
	}

	i := 1
	for ; i < n; i++ {
		in := prog.Inst(i)
		if in.Op() != nfa.OpChar || len(heads[0]) >= maxLiteralLen {
			break
		}
		for k := range heads {
			heads[k] = append(heads[k], in.Char())
		}
	}

	// The prefix is the whole program exactly when nothing follows it.
	complete := i == n
	for _, h := range heads {
		seq.push(Literal{Bytes: h, Complete: complete})
	}
	return seq
}

// expandClass enumerates the bytes a class instruction matches, giving up
// early once the member count exceeds maxClassExpand.
func expandClass(prog *nfa.Program, in nfa.Inst) []byte {
	var members []byte
	for c := 0; c < 256; c++ {
		if prog.MatchOne(in, byte(c)) {
			members = append(members, byte(c))
			if len(members) > maxClassExpand {
				return members
			}
		}
	}
	return members
}
