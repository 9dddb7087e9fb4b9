package dice

import "math/rand/v2"

// ─── Sources ────────────────────────────────────────────────────────────────

// Source is the raw randomness behind a Roller. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Roller produces every die roll of a game. It is not safe for concurrent
// use; resolution is single threaded and the roll order is part of the game.
type Roller struct {
	src   Source
	count int
}

// New wraps an arbitrary source.
func New(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeeded returns a replayable roller. Two rollers built from the same seed
// produce the same sequence.
func NewSeeded(seed uint64) *Roller {
	if seed == 0 {
		seed = 1
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// ─── Dice helpers ───────────────────────────────────────────────────────────

// IntN returns a uniform value in [0, n). n <= 1 always yields 0 and does not
// consume the source.
func (r *Roller) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	r.count++
	return r.src.IntN(n)
}

// D6 rolls one six-sided die.
func (r *Roller) D6() int { return r.IntN(6) + 1 }

// Roll2d6 is the standard BattleTech roll.
func (r *Roller) Roll2d6() int { return r.D6() + r.D6() }

// RollNd6 sums n dice. n <= 0 returns 0.
func (r *Roller) RollNd6(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.D6()
	}
	return total
}

// Count is the number of source draws made so far. Replays compare it to
// detect divergence.
func (r *Roller) Count() int { return r.count }

// ─── Scripted source ────────────────────────────────────────────────────────

// Scripted replays a fixed list of raw values; IntN(n) returns v mod n. When
// the script runs out it starts over. Use Faces to script die faces.
type Scripted struct {
	vals []int
	pos  int
}

// NewScripted builds a roller over raw values.
func NewScripted(vals ...int) *Roller {
	return New(&Scripted{vals: vals})
}

// Faces converts die faces (1-6) to raw values for NewScripted.
func Faces(faces ...int) []int {
	out := make([]int, len(faces))
	for i, f := range faces {
		out[i] = f - 1
	}
	return out
}

// Sum2d6 returns two faces that add up to total (2-12).
func Sum2d6(total int) []int {
	switch {
	case total <= 2:
		return Faces(1, 1)
	case total >= 12:
		return Faces(6, 6)
	case total <= 7:
		return Faces(1, total-1)
	default:
		return Faces(6, total-6)
	}
}

func (s *Scripted) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
