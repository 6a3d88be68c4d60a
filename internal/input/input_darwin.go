//go:build darwin && cgo

package input

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>

static int wg_cursor_pos(double *x, double *y) {
    CGEventRef event = CGEventCreate(NULL);
    if (event == NULL) {
        return -1;
    }
    CGPoint loc = CGEventGetLocation(event);
    CFRelease(event);
    *x = loc.x;
    *y = loc.y;
    return 0;
}

static int wg_move_cursor(double x, double y) {
    CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved,
        CGPointMake(x, y), kCGMouseButtonLeft);
    if (move == NULL) {
        return -1;
    }
    CGEventPost(kCGHIDEventTap, move);
    CFRelease(move);
    return 0;
}
*/
import "C"

import (
	"context"
	"fmt"
)

type darwinNudger struct{}

func newNudger() Nudger {
	return darwinNudger{}
}

func (darwinNudger) Nudge(ctx context.Context) error {
	return nudgeCursor(ctx, getCursorPos, setCursorPos)
}

func getCursorPos() (Point, error) {
	var x, y C.double
	if C.wg_cursor_pos(&x, &y) != 0 {
		return Point{}, fmt.Errorf("input: read cursor position failed (no display session?)")
	}
	return Point{X: int(x), Y: int(y)}, nil
}

func setCursorPos(p Point) error {
	if C.wg_move_cursor(C.double(p.X), C.double(p.Y)) != 0 {
		return fmt.Errorf("input: post mouse event for (%d, %d) failed", p.X, p.Y)
	}
	return nil
}

func (darwinNudger) Name() string {
	return "CoreGraphics"
}
