// Package picker chooses a random pending task.
//
// Picking never mutates the task store; callers confirm a pick by completing
// the task themselves.
package picker

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/amonks/focusstation/task"
)

// ErrEmptyPool is returned when there is nothing to pick from.
var ErrEmptyPool = errors.New("no pending tasks to pick from")

const (
	// DefaultFrames is the number of cosmetic resamples of a spin.
	DefaultFrames = 25

	baseFrameDelay = 50 * time.Millisecond
	frameDelayStep = 10 * time.Millisecond
)

// Picker draws uniformly from a pool of tasks.
type Picker struct {
	rng *rand.Rand
}

// New returns a picker drawing from src. A nil src uses the runtime's
// random source.
func New(src rand.Source) *Picker {
	if src == nil {
		return &Picker{}
	}
	return &Picker{rng: rand.New(src)}
}

func (p *Picker) intN(n int) int {
	if p == nil || p.rng == nil {
		return rand.IntN(n)
	}
	return p.rng.IntN(n)
}

// Pick returns one task of pending chosen uniformly at random.
func (p *Picker) Pick(pending []task.Task) (task.Task, error) {
	if len(pending) == 0 {
		return task.Task{}, ErrEmptyPool
	}
	return pending[p.intN(len(pending))], nil
}

// Frame is one cosmetic resample of a spin.
type Frame struct {
	Index int
	Task  task.Task
	Delay time.Duration
}

// FrameDelay returns how long frame i stays on screen. The wheel slows down
// as it spins.
func FrameDelay(i int) time.Duration {
	return baseFrameDelay + time.Duration(i)*frameDelayStep
}

// Spin reports frames cosmetic resamples to onFrame and then returns an
// independent final pick. onFrame is responsible for any sleeping.
func (p *Picker) Spin(pending []task.Task, frames int, onFrame func(Frame)) (task.Task, error) {
	if len(pending) == 0 {
		return task.Task{}, ErrEmptyPool
	}
	for i := range max(frames, 0) {
		frame := Frame{Index: i, Task: pending[p.intN(len(pending))], Delay: FrameDelay(i)}
		if onFrame != nil {
			onFrame(frame)
		}
	}
	return p.Pick(pending)
}

// Pick draws from pending with the runtime's random source.
func Pick(pending []task.Task) (task.Task, error) {
	return (*Picker)(nil).Pick(pending)
}
