// Package keeper runs the keep-awake control loop.
//
// Each cycle refreshes the power assertion, optionally nudges the pointer,
// and waits out the configured interval. The wait is interruptible: context
// cancellation (the signal path) stops the loop within a bounded delay and
// the assertion is released exactly once on every exit path, including the
// fatal ones.
package keeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"wakeguard/internal/input"
	"wakeguard/internal/logging"
	"wakeguard/internal/power"
)

// State is the lifecycle state of the keeper.
type State int32

const (
	StateStarting State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Options configures a Keeper.
type Options struct {
	// Interval is the delay between loop cycles. Must be positive.
	Interval time.Duration

	// MouseNudge enables the synthetic pointer move on each cycle.
	MouseNudge bool

	// OnStart, when set, is called once the initial assertion has been
	// taken and the loop is about to enter the running state.
	OnStart func()
}

// Keeper owns the keep-awake loop for the life of the process.
type Keeper struct {
	assertor power.Assertor
	nudger   input.Nudger
	opts     Options
	log      *logging.Logger

	state       atomic.Int32
	releaseOnce sync.Once
}

// New creates a Keeper. The nudger may be nil when nudging is disabled.
func New(assertor power.Assertor, nudger input.Nudger, opts Options, log *logging.Logger) *Keeper {
	if log == nil {
		log = logging.Default()
	}
	k := &Keeper{
		assertor: assertor,
		nudger:   nudger,
		opts:     opts,
		log:      log,
	}
	k.state.Store(int32(StateStarting))
	return k
}

// State returns the current lifecycle state.
func (k *Keeper) State() State {
	return State(k.state.Load())
}

// Run executes the loop until ctx is canceled. A nil return means a clean,
// signal-driven stop; a non-nil return means the awake assertion was
// rejected and the process should exit non-zero. In both cases the
// assertion has been released by the time Run returns.
func (k *Keeper) Run(ctx context.Context) error {
	defer k.state.Store(int32(StateStopped))
	defer k.release()

	// The initial assertion doubles as the platform support check. Failure
	// here is fatal and not retried: a rejected call means the host cannot
	// honor the request at all.
	if err := k.assertor.Assert(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("keep-awake assertion rejected: %w", err)
	}

	k.state.Store(int32(StateRunning))
	if k.opts.OnStart != nil {
		k.opts.OnStart()
	}
	k.log.Debug("keep-awake loop started",
		"backend", k.assertor.Name(),
		"interval", k.opts.Interval,
		"mouse_nudge", k.opts.MouseNudge)

	timer := time.NewTimer(k.opts.Interval)
	defer timer.Stop()

	for {
		// Reassert every cycle. The OS can silently drop the assertion
		// across display power cycling or session lock/unlock.
		if err := k.assertor.Assert(ctx); err != nil {
			k.stop()
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("keep-awake reassertion rejected: %w", err)
		}

		if k.opts.MouseNudge && k.nudger != nil {
			if err := k.nudger.Nudge(ctx); err != nil && !errors.Is(err, context.Canceled) {
				k.log.Warn("mouse nudge failed", "backend", k.nudger.Name(), "error", err)
			}
		}

		select {
		case <-ctx.Done():
			k.stop()
			return nil
		case <-timer.C:
			timer.Reset(k.opts.Interval)
		}
	}
}

// stop transitions to STOPPING and releases the assertion.
func (k *Keeper) stop() {
	k.state.Store(int32(StateStopping))
	k.release()
}

// release reverts the awake assertion exactly once per Keeper lifetime.
// Failures here are logged, never fatal: they happen on the way out.
func (k *Keeper) release() {
	k.releaseOnce.Do(func() {
		if err := k.assertor.Release(); err != nil {
			k.log.Warn("release of keep-awake assertion failed", "error", err)
		}
	})
}
