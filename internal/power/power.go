// Package power asserts and releases the OS "stay awake" execution state.
//
// Each platform has its own backend in a build-tagged file:
//   - Windows: SetThreadExecutionState via kernel32
//   - Linux:   org.freedesktop.ScreenSaver / logind inhibition over D-Bus
//   - macOS:   IOKit power assertions (cgo), caffeinate fallback (no cgo)
//
// The assertion is process-scoped external state. The OS may silently drop a
// stale assertion across events like display power cycling or session
// lock/unlock, so callers must refresh it by calling Assert once per cycle
// rather than relying on a single call at startup.
package power

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when no keep-awake backend exists for the host
// platform. This is a fatal startup condition, not a retryable one.
var ErrUnsupported = errors.New("power: keep-awake is not supported on this platform")

// Assertor marks the current process as busy so the OS power manager
// suppresses idle sleep.
type Assertor interface {
	// Assert requests that the system stay awake. The first call takes the
	// assertion; later calls refresh it. An error from the first call means
	// the platform rejected the request entirely.
	Assert(ctx context.Context) error

	// Release restores default power management. Safe to call multiple
	// times and without a prior successful Assert.
	Release() error

	// Name identifies the backend for logging.
	Name() string
}

// Options configures the assertion taken by Assert.
type Options struct {
	// KeepDisplay also suppresses display sleep, not just system sleep.
	KeepDisplay bool

	// Reason is a human-readable explanation surfaced to the OS where the
	// platform supports one (D-Bus inhibitors, IOKit assertion names).
	Reason string
}

// New returns the keep-awake backend for the host platform.
func New(opts Options) Assertor {
	if opts.Reason == "" {
		opts.Reason = "wakeguard keep-awake"
	}
	return newAssertor(opts)
}
