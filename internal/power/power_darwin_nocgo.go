//go:build darwin && !cgo

// Fallback for CGO-disabled builds: hold a caffeinate(8) child process
// instead of taking IOKit assertions directly.

package power

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

type caffeinateAssertor struct {
	opts Options

	mu  sync.Mutex
	cmd *exec.Cmd
}

func newAssertor(opts Options) Assertor {
	return &caffeinateAssertor{opts: opts}
}

func (a *caffeinateAssertor) Assert(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil && a.cmd.ProcessState == nil {
		return nil
	}

	// -i prevents idle system sleep, -d additionally keeps the display on.
	args := []string{"-i"}
	if a.opts.KeepDisplay {
		args = append(args, "-d")
	}

	cmd := exec.Command("caffeinate", args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("power: start caffeinate: %w", err)
	}

	a.cmd = cmd
	go func() {
		// Reap the child so ProcessState is populated if it exits early.
		_ = cmd.Wait()
	}()
	return nil
}

func (a *caffeinateAssertor) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd == nil || a.cmd.Process == nil || a.cmd.ProcessState != nil {
		a.cmd = nil
		return nil
	}

	err := a.cmd.Process.Kill()
	a.cmd = nil
	if err != nil {
		return fmt.Errorf("power: stop caffeinate: %w", err)
	}
	return nil
}

func (a *caffeinateAssertor) Name() string {
	return "caffeinate"
}
