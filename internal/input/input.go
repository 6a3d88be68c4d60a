// Package input performs the synthetic pointer nudge used to reset
// input-idle timers that ignore power assertions alone.
//
// A nudge reads the pointer position, moves it one unit, waits long enough
// for the OS to register two distinct input events, and restores the
// original position. It is best effort on every platform: a failed nudge is
// a warning, never a reason to stop keeping the machine awake.
package input

import (
	"context"
	"errors"
	"time"
)

// ErrNoBackend is returned when no pointer backend exists for the host
// platform or build configuration.
var ErrNoBackend = errors.New("input: no pointer backend on this platform")

// settleDelay separates the displaced and restored pointer events so the OS
// counts them as distinct input.
const settleDelay = 50 * time.Millisecond

// Point is a pointer position in screen coordinates.
type Point struct {
	X, Y int
}

// Displaced returns the one-unit nudge target for p.
func (p Point) Displaced() Point {
	return Point{X: p.X + 1, Y: p.Y}
}

// Nudger produces a reversible synthetic pointer event.
type Nudger interface {
	// Nudge moves the pointer by one unit and restores it. The pointer's
	// final position equals its position before the call.
	Nudge(ctx context.Context) error

	// Name identifies the backend for logging.
	Name() string
}

// New returns the pointer backend for the host platform.
func New() Nudger {
	return newNudger()
}

// nudgeCursor runs the move, settle, restore sequence over a cursor
// backend. The pointer's final position equals its position before the call
// on both the success path and the cancelled-settle path.
func nudgeCursor(ctx context.Context, get func() (Point, error), set func(Point) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	orig, err := get()
	if err != nil {
		return err
	}

	if err := set(orig.Displaced()); err != nil {
		return err
	}

	if err := settle(ctx); err != nil {
		// Restore before reporting cancellation.
		_ = set(orig)
		return err
	}

	return set(orig)
}

// settle sleeps for the inter-event delay, honoring cancellation.
func settle(ctx context.Context) error {
	t := time.NewTimer(settleDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
