//go:build windows

package input

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moduser32        = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = moduser32.NewProc("GetCursorPos")
	procSetCursorPos = moduser32.NewProc("SetCursorPos")
)

type winPoint struct {
	X, Y int32
}

type windowsNudger struct{}

func newNudger() Nudger {
	return windowsNudger{}
}

func (windowsNudger) Nudge(ctx context.Context) error {
	return nudgeCursor(ctx, getCursorPos, setCursorPos)
}

func getCursorPos() (Point, error) {
	var pt winPoint
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return Point{}, fmt.Errorf("input: GetCursorPos failed")
	}
	return Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

func setCursorPos(p Point) error {
	ret, _, _ := procSetCursorPos.Call(uintptr(p.X), uintptr(p.Y))
	if ret == 0 {
		return fmt.Errorf("input: SetCursorPos(%d, %d) failed", p.X, p.Y)
	}
	return nil
}

func (windowsNudger) Name() string {
	return "user32"
}
