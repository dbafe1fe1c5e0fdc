package picker

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/amonks/focusstation/task"
)

func TestPickSingleton(t *testing.T) {
	only := task.Task{Text: "Only"}
	for range 20 {
		got, err := Pick([]task.Task{only})
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if got != only {
			t.Fatalf("expected %v, got %v", only, got)
		}
	}
}

func TestPickEmptyPool(t *testing.T) {
	if _, err := Pick(nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if _, err := New(nil).Spin([]task.Task{}, 5, nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool from spin, got %v", err)
	}
}

func TestPickIsReplayableWithSeededSource(t *testing.T) {
	pool := []task.Task{{Text: "A"}, {Text: "B"}, {Text: "C"}, {Text: "D"}}

	first := New(rand.NewPCG(7, 11))
	second := New(rand.NewPCG(7, 11))
	for i := range 20 {
		a, _ := first.Pick(pool)
		b, _ := second.Pick(pool)
		if a != b {
			t.Fatalf("draw %d diverged: %v != %v", i, a, b)
		}
	}
}

func TestPickCoversPool(t *testing.T) {
	pool := []task.Task{{Text: "A"}, {Text: "B"}, {Text: "C"}}
	p := New(rand.NewPCG(1, 1))

	seen := make(map[string]int)
	for range 300 {
		got, err := p.Pick(pool)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		seen[got.Text]++
	}
	for _, item := range pool {
		if seen[item.Text] == 0 {
			t.Fatalf("task %q never picked: %v", item.Text, seen)
		}
	}
}

func TestSpinReportsFrames(t *testing.T) {
	pool := []task.Task{{Text: "A"}, {Text: "B"}}
	var frames []Frame

	got, err := New(rand.NewPCG(3, 4)).Spin(pool, 4, func(f Frame) {
		frames = append(frames, f)
	})
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if got.Text != "A" && got.Text != "B" {
		t.Fatalf("unexpected pick %v", got)
	}
	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	wantDelays := []time.Duration{50 * time.Millisecond, 60 * time.Millisecond, 70 * time.Millisecond, 80 * time.Millisecond}
	for i, frame := range frames {
		if frame.Index != i || frame.Delay != wantDelays[i] {
			t.Fatalf("frame %d: %+v", i, frame)
		}
	}
}
