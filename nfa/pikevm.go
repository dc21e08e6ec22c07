package nfa

import (
	"github.com/coregx/tinyre/internal/sparse"
)

// acceptState is the virtual state one past the last instruction slot. A
// thread that consumes its way past a full program lands here; it behaves
// exactly like an OpUnused slot (accept).
const acceptState = MaxInsts

// PikeVM executes a Program by breadth-first NFA simulation: one generation
// of threads per input byte, every live thread advanced in lockstep. Worst
// case time is O(MaxInsts * len(text)) and there is no recursion over the
// input, so runtime is bounded for every pattern the compiler accepts.
//
// Thread priority is positional: earlier entries in a generation outrank
// later ones, Split pushes its high-priority target first, and insertion is
// first-writer-wins. That combination alone yields leftmost-longest matches
// with greedy '+'/'*' and lazy '?'.
//
// A PikeVM holds reusable per-run buffers and must not be shared between
// goroutines; the Program it executes may be.
type PikeVM struct {
	prog *Program
	cur  *generation
	next *generation
}

// thread is one live simulation state: the instruction it sits on, the input
// offset where its match attempt began, and the offset where it accepted
// (end < 0 until then).
type thread struct {
	state uint8
	start int
	end   int
}

// generation is one step's active set: the threads in priority order plus a
// sparse occupancy set keyed by state index. The seen set also guards the
// epsilon closure, which bounds closure work on cyclic Split chains (nested
// quantifiers) without changing which threads get inserted.
type generation struct {
	seen    *sparse.Set
	threads [MaxInsts + 1]thread
	n       int
}

func newGeneration() *generation {
	return &generation{seen: sparse.New(MaxInsts + 1)}
}

func (g *generation) clear() {
	g.seen.Clear()
	g.n = 0
}

// NewPikeVM creates a PikeVM for executing the given program.
func NewPikeVM(prog *Program) *PikeVM {
	return &PikeVM{
		prog: prog,
		cur:  newGeneration(),
		next: newGeneration(),
	}
}

func (p *PikeVM) opAt(state uint8) Opcode {
	if state >= MaxInsts {
		return OpUnused
	}
	return p.prog.insts[state].op
}

// Search finds the leftmost match in text.
// Returns (start, end, true) on a match, (-1, -1, false) otherwise.
func (p *PikeVM) Search(text []byte) (int, int, bool) {
	seed := thread{state: 0, start: 0, end: -1}
	if p.prog.Anchored() {
		seed.state = 1
	}
	p.cur.clear()
	p.close(seed, 0, p.cur)
	return p.run(text, 0, !p.prog.Anchored())
}

// SearchAt finds a match beginning exactly at offset at. It is the anchored
// entry used behind prefilters: no fresh threads are seeded past at, so a
// returned match always has start == at.
func (p *PikeVM) SearchAt(text []byte, at int) (int, int, bool) {
	if at < 0 || at > len(text) {
		return -1, -1, false
	}
	if p.prog.Anchored() && at != 0 {
		return -1, -1, false
	}
	seed := thread{state: 0, start: at, end: -1}
	if p.prog.Anchored() {
		seed.state = 1
	}
	p.cur.clear()
	p.close(seed, at, p.cur)
	return p.run(text, at, false)
}

// run advances the simulation one input byte per generation, starting at
// offset from. When reseed is set, a fresh thread starting at each
// subsequent offset joins the next generation behind the existing threads.
func (p *PikeVM) run(text []byte, from int, reseed bool) (int, int, bool) {
	for i := from; i < len(text); i++ {
		if p.cur.n == 0 {
			return -1, -1, false
		}
		// The highest-priority thread accepting means nothing can beat it.
		if first := p.cur.threads[0]; p.opAt(first.state) == OpUnused {
			return first.start, first.end, true
		}

		p.next.clear()
		for k := 0; k < p.cur.n; k++ {
			p.step(p.cur.threads[k], text[i], i)
		}
		if reseed {
			// First-writer-wins keeps older threads ahead of this one.
			p.close(thread{state: 0, start: i + 1, end: -1}, i+1, p.next)
		}
		p.cur, p.next = p.next, p.cur
	}

	// Input exhausted: the best surviving thread is the first one sitting on
	// an accept or end-of-input instruction.
	for k := 0; k < p.cur.n; k++ {
		t := p.cur.threads[k]
		switch p.opAt(t.state) {
		case OpUnused, OpEnd:
			end := t.end
			if end < 0 {
				end = len(text)
			}
			return t.start, end, true
		}
	}
	return -1, -1, false
}

// step advances one thread over the input byte at offset i into the next
// generation. Threads that already accepted are carried over unchanged so
// they stay ahead of longer attempts that may yet fail.
func (p *PikeVM) step(t thread, c byte, i int) {
	if p.opAt(t.state) == OpUnused {
		p.close(t, i+1, p.next)
		return
	}
	if p.prog.MatchOne(p.prog.insts[t.state], c) {
		t.state++
		p.close(t, i+1, p.next)
	}
	// Otherwise the thread dies.
}

// close follows epsilon transitions from t's state and inserts the reachable
// consuming/terminal states into g, depth-first with the high-priority Split
// branch walked first. A state already seen this generation is skipped, so
// the first (highest-priority) writer wins. Reaching an accept slot records
// the match end at idx.
func (p *PikeVM) close(t thread, idx int, g *generation) {
	op := p.opAt(t.state)
	switch op {
	case OpJmp:
		if !g.seen.Insert(uint32(t.state)) {
			return
		}
		t.state = p.prog.insts[t.state].Jmp()
		p.close(t, idx, g)
	case OpSplit:
		if !g.seen.Insert(uint32(t.state)) {
			return
		}
		x, y := p.prog.insts[t.state].Split()
		hi, lo := t, t
		hi.state = x
		p.close(hi, idx, g)
		lo.state = y
		p.close(lo, idx, g)
	default:
		if !g.seen.Insert(uint32(t.state)) {
			return
		}
		if op == OpUnused && t.end < 0 {
			t.end = idx
		}
		g.threads[g.n] = t
		g.n++
	}
}
