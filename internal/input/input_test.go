package input

import (
	"context"
	"errors"
	"testing"
	"time"
)

// cursorRecorder is an in-memory cursor backend for the nudge sequence.
type cursorRecorder struct {
	pos   Point
	moves []Point
	onSet func(Point)
}

func (c *cursorRecorder) get() (Point, error) { return c.pos, nil }

func (c *cursorRecorder) set(p Point) error {
	c.pos = p
	c.moves = append(c.moves, p)
	if c.onSet != nil {
		c.onSet(p)
	}
	return nil
}

func TestDisplacedIsOneUnit(t *testing.T) {
	p := Point{X: 100, Y: 200}
	d := p.Displaced()

	if d.X != 101 || d.Y != 200 {
		t.Errorf("Displaced() = %+v, want one unit right of %+v", d, p)
	}
	if p.X != 100 || p.Y != 200 {
		t.Errorf("Displaced() mutated the original point: %+v", p)
	}
}

func TestSettleHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if err := settle(ctx); err == nil {
		t.Error("settle should report cancellation")
	}
	if elapsed := time.Since(start); elapsed > settleDelay {
		t.Errorf("settle waited %v despite cancellation", elapsed)
	}
}

func TestSettleWaits(t *testing.T) {
	start := time.Now()
	if err := settle(context.Background()); err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < settleDelay {
		t.Errorf("settle returned after %v, want at least %v", elapsed, settleDelay)
	}
}

func TestNudgeCursorRoundTrip(t *testing.T) {
	orig := Point{X: 100, Y: 200}
	cur := &cursorRecorder{pos: orig}

	if err := nudgeCursor(context.Background(), cur.get, cur.set); err != nil {
		t.Fatalf("nudgeCursor failed: %v", err)
	}

	if cur.pos != orig {
		t.Errorf("final position = %+v, want original %+v", cur.pos, orig)
	}
	want := []Point{orig.Displaced(), orig}
	if len(cur.moves) != len(want) || cur.moves[0] != want[0] || cur.moves[1] != want[1] {
		t.Errorf("moves = %+v, want displace then restore %+v", cur.moves, want)
	}
}

func TestNudgeCursorRestoresOnCancelledSettle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orig := Point{X: 10, Y: 20}
	cur := &cursorRecorder{pos: orig}
	cur.onSet = func(p Point) {
		// Cancel while the pointer sits at the displaced position, so the
		// settle wait is interrupted mid-nudge.
		if p == orig.Displaced() {
			cancel()
		}
	}

	err := nudgeCursor(ctx, cur.get, cur.set)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("nudgeCursor error = %v, want context.Canceled", err)
	}
	if cur.pos != orig {
		t.Errorf("final position after cancelled settle = %+v, want original %+v", cur.pos, orig)
	}
}

func TestNudgeCursorPropagatesReadFailure(t *testing.T) {
	readErr := errors.New("no display session")
	var moved bool

	err := nudgeCursor(context.Background(),
		func() (Point, error) { return Point{}, readErr },
		func(Point) error { moved = true; return nil })

	if !errors.Is(err, readErr) {
		t.Errorf("nudgeCursor error = %v, want %v", err, readErr)
	}
	if moved {
		t.Error("pointer must not move when its position cannot be read")
	}
}

func TestNudgeCursorCancelledBeforeMove(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cur := &cursorRecorder{pos: Point{X: 1, Y: 2}}
	if err := nudgeCursor(ctx, cur.get, cur.set); err == nil {
		t.Error("nudgeCursor should report cancellation")
	}
	if len(cur.moves) != 0 {
		t.Errorf("pointer moved %d times despite prior cancellation", len(cur.moves))
	}
}

func TestNewReturnsBackend(t *testing.T) {
	n := New()
	if n == nil {
		t.Fatal("New returned nil")
	}
	if n.Name() == "" {
		t.Error("backend name should not be empty")
	}
}
