//go:build linux

package input

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverService   = "org.freedesktop.ScreenSaver"
	screenSaverPath      = dbus.ObjectPath("/org/freedesktop/ScreenSaver")
	screenSaverInterface = "org.freedesktop.ScreenSaver"
)

// linuxNudger moves the pointer through xdotool on X11 sessions. Wayland
// offers no portable pointer-injection API, so sessions without a usable X
// display fall back to D-Bus SimulateUserActivity, which resets the idle
// timer without touching the pointer. Name reports whichever backend
// handled the most recent nudge.
type linuxNudger struct {
	mu      sync.Mutex
	backend string
}

func newNudger() Nudger {
	return &linuxNudger{backend: "xdotool"}
}

func (n *linuxNudger) Nudge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if os.Getenv("DISPLAY") != "" {
		err := nudgeXdotool(ctx)
		if err == nil || ctx.Err() != nil {
			n.setBackend("xdotool")
			return err
		}
		// Fall through to the D-Bus path on xdotool failure.
	}

	n.setBackend("dbus-activity")
	return simulateActivity(ctx)
}

func nudgeXdotool(ctx context.Context) error {
	if err := moveRelative(ctx, 1, 0); err != nil {
		return err
	}
	if err := settle(ctx); err != nil {
		_ = moveRelative(context.Background(), -1, 0)
		return err
	}
	return moveRelative(ctx, -1, 0)
}

func moveRelative(ctx context.Context, dx, dy int) error {
	cmd := exec.CommandContext(ctx, "xdotool", "mousemove_relative", "--",
		fmt.Sprintf("%d", dx), fmt.Sprintf("%d", dy))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("input: xdotool mousemove_relative: %w (%s)", err, out)
	}
	return nil
}

func simulateActivity(ctx context.Context) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("input: connect session bus: %w", err)
	}

	obj := conn.Object(screenSaverService, screenSaverPath)
	call := obj.CallWithContext(ctx, screenSaverInterface+".SimulateUserActivity", 0)
	if call.Err != nil {
		return fmt.Errorf("input: ScreenSaver.SimulateUserActivity: %w", call.Err)
	}
	return nil
}

func (n *linuxNudger) setBackend(name string) {
	n.mu.Lock()
	n.backend = name
	n.mu.Unlock()
}

func (n *linuxNudger) Name() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.backend
}
