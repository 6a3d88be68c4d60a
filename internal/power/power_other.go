//go:build !windows && !linux && !darwin

package power

import "context"

type unsupportedAssertor struct{}

func newAssertor(Options) Assertor {
	return unsupportedAssertor{}
}

func (unsupportedAssertor) Assert(context.Context) error { return ErrUnsupported }
func (unsupportedAssertor) Release() error               { return nil }
func (unsupportedAssertor) Name() string                 { return "unsupported" }
