package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued values in order and
// then Fallback once the queue is empty. Values are clamped to the die.
type ScriptedRoller struct {
	mu       sync.Mutex
	values   []int
	Fallback int
	Calls    []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller queues values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values, Fallback: 1}
}

// Push appends values to the queue
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Remaining returns how many queued values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Roll returns the next queued value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size), nil
}

// RollN returns count queued values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		out[i] = r.next(size)
	}
	return out, nil
}

func (r *ScriptedRoller) next(size int) int {
	r.Calls = append(r.Calls, size)

	v := r.Fallback
	if len(r.values) > 0 {
		v = r.values[0]
		r.values = r.values[1:]
	}
	if v < 1 {
		v = 1
	}
	if v > size {
		v = size
	}
	return v
}

// MaxRoller always rolls the highest face
type MaxRoller struct{}

// Roll returns size
func (MaxRoller) Roll(size int) (int, error) { return size, nil }

// RollN returns count copies of size
func (MaxRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = size
	}
	return out, nil
}
