//go:build linux

package power

import (
	"context"
	"fmt"
	"sync"
	"syscall"

	"github.com/godbus/dbus/v5"
)

// D-Bus names for the two inhibition services.
const (
	screenSaverService   = "org.freedesktop.ScreenSaver"
	screenSaverPath      = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverInterface = "org.freedesktop.ScreenSaver"

	logindService   = "org.freedesktop.login1"
	logindPath      = dbus.ObjectPath("/org/freedesktop/login1")
	logindInterface = "org.freedesktop.login1.Manager"

	appName = "wakeguard"
)

// linuxAssertor inhibits idle handling over D-Bus. The preferred backend is
// the session's org.freedesktop.ScreenSaver interface, which desktop
// environments implement for both screensaver and idle-sleep suppression.
// Headless or minimal sessions fall back to a logind inhibitor lock held on
// the system bus.
type linuxAssertor struct {
	opts Options

	mu      sync.Mutex
	session *dbus.Conn
	cookie  uint32
	held    bool

	system   *dbus.Conn
	logindFD int
}

func newAssertor(opts Options) Assertor {
	return &linuxAssertor{opts: opts, logindFD: -1}
}

func (a *linuxAssertor) Assert(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.held {
		// Inhibition cookies persist, but the screensaver idle timer does
		// not respect them on every desktop. Poking user activity each
		// cycle covers both; failures are harmless.
		a.simulateActivityLocked(ctx)
		return nil
	}

	sessionErr := a.inhibitScreenSaverLocked(ctx)
	if sessionErr == nil {
		a.held = true
		return nil
	}

	logindErr := a.inhibitLogindLocked(ctx)
	if logindErr == nil {
		a.held = true
		return nil
	}

	return fmt.Errorf("power: no D-Bus inhibition backend available (screensaver: %v; logind: %v): %w",
		sessionErr, logindErr, ErrUnsupported)
}

// inhibitScreenSaverLocked takes a screensaver inhibition cookie on the
// session bus.
func (a *linuxAssertor) inhibitScreenSaverLocked(ctx context.Context) error {
	if a.session == nil {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("connect session bus: %w", err)
		}
		a.session = conn
	}

	obj := a.session.Object(screenSaverService, screenSaverPath)
	var cookie uint32
	call := obj.CallWithContext(ctx, screenSaverInterface+".Inhibit", 0, appName, a.opts.Reason)
	if err := call.Store(&cookie); err != nil {
		return fmt.Errorf("ScreenSaver.Inhibit: %w", err)
	}
	a.cookie = cookie
	return nil
}

// inhibitLogindLocked takes a block-mode inhibitor lock from logind. The
// returned file descriptor holds the lock until closed.
func (a *linuxAssertor) inhibitLogindLocked(ctx context.Context) error {
	if a.system == nil {
		conn, err := dbus.ConnectSystemBus()
		if err != nil {
			return fmt.Errorf("connect system bus: %w", err)
		}
		a.system = conn
	}

	what := "sleep"
	if a.opts.KeepDisplay {
		what = "sleep:idle"
	}

	obj := a.system.Object(logindService, logindPath)
	var fd dbus.UnixFD
	call := obj.CallWithContext(ctx, logindInterface+".Inhibit", 0, what, appName, a.opts.Reason, "block")
	if err := call.Store(&fd); err != nil {
		return fmt.Errorf("login1.Manager.Inhibit: %w", err)
	}
	a.logindFD = int(fd)
	return nil
}

// simulateActivityLocked resets the session idle timer. Best effort.
func (a *linuxAssertor) simulateActivityLocked(ctx context.Context) {
	if a.session == nil || a.cookie == 0 {
		return
	}
	obj := a.session.Object(screenSaverService, screenSaverPath)
	_ = obj.CallWithContext(ctx, screenSaverInterface+".SimulateUserActivity", 0).Err
}

func (a *linuxAssertor) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.held {
		return nil
	}
	a.held = false

	var firstErr error

	if a.session != nil && a.cookie != 0 {
		obj := a.session.Object(screenSaverService, screenSaverPath)
		if call := obj.Call(screenSaverInterface+".UnInhibit", 0, a.cookie); call.Err != nil {
			firstErr = fmt.Errorf("ScreenSaver.UnInhibit: %w", call.Err)
		}
		a.cookie = 0
	}

	if a.logindFD >= 0 {
		if err := syscall.Close(a.logindFD); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close logind inhibitor fd: %w", err)
		}
		a.logindFD = -1
	}

	if a.session != nil {
		_ = a.session.Close()
		a.session = nil
	}
	if a.system != nil {
		_ = a.system.Close()
		a.system = nil
	}

	return firstErr
}

func (a *linuxAssertor) Name() string {
	return "dbus-inhibit"
}
