//go:build darwin && !cgo

// Stub for when CGO is disabled. Posting CoreGraphics events requires cgo;
// without it the nudge degrades to a logged warning and the power assertion
// remains the only keep-awake mechanism.

package input

import "context"

type noNudger struct{}

func newNudger() Nudger {
	return noNudger{}
}

func (noNudger) Nudge(context.Context) error { return ErrNoBackend }
func (noNudger) Name() string                { return "none" }
