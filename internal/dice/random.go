package dice

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Random draws percentiles, indexes and permutations from a toolkit roller
// so every random choice in a run comes from one injectable source.
type Random struct {
	roller dice.Roller
}

// NewRandom wraps roller. A nil roller uses the toolkit default.
func NewRandom(roller dice.Roller) *Random {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Random{roller: roller}
}

// Roller returns the underlying roller
func (r *Random) Roller() dice.Roller {
	return r.roller
}

// Percent rolls 1..100
func (r *Random) Percent() int {
	return r.roll(100)
}

// Chance reports whether a d100 roll lands at or under percent
func (r *Random) Chance(percent int) bool {
	return r.Percent() <= percent
}

// Intn returns a value in [0, n). n <= 1 always yields 0.
func (r *Random) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return r.roll(n) - 1
}

// Shuffle permutes n elements with Fisher-Yates
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// WeightedIndex picks an index with probability proportional to its
// weight. Non-positive weights are never picked. Returns -1 when nothing
// has weight.
func (r *Random) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	target := r.roll(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

func (r *Random) roll(size int) int {
	v, err := r.roller.Roll(size)
	if err != nil {
		slog.Warn("dice roller failed, using lowest face", "size", size, "error", err)
		return 1
	}
	if v < 1 {
		return 1
	}
	if v > size {
		return size
	}
	return v
}
