//go:build !windows && !linux && !darwin

package input

import "context"

type noNudger struct{}

func newNudger() Nudger {
	return noNudger{}
}

func (noNudger) Nudge(context.Context) error { return ErrNoBackend }
func (noNudger) Name() string                { return "none" }
