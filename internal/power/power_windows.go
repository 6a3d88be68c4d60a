//go:build windows

package power

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

// Execution state flags for SetThreadExecutionState.
const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

var (
	modkernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
)

// windowsAssertor keeps the machine awake through SetThreadExecutionState.
// The execution state is thread-scoped, so all calls are funneled to a
// single goroutine locked to one OS thread; otherwise goroutine migration
// would scatter ES_CONTINUOUS state across threads and Release could clear
// it on a thread that never held the assertion.
type windowsAssertor struct {
	opts Options

	mu    sync.Mutex
	calls chan stateCall
}

type stateCall struct {
	flags uintptr
	reply chan error
}

func newAssertor(opts Options) Assertor {
	return &windowsAssertor{opts: opts}
}

func (a *windowsAssertor) Assert(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flags := uintptr(esContinuous | esSystemRequired)
	if a.opts.KeepDisplay {
		flags |= esDisplayRequired
	}
	return a.setState(flags)
}

func (a *windowsAssertor) Release() error {
	// ES_CONTINUOUS alone clears the previous system/display requirements.
	return a.setState(uintptr(esContinuous))
}

// setState runs SetThreadExecutionState on the pinned thread.
func (a *windowsAssertor) setState(flags uintptr) error {
	a.mu.Lock()
	if a.calls == nil {
		a.calls = make(chan stateCall)
		go a.stateLoop()
	}
	a.mu.Unlock()

	reply := make(chan error, 1)
	a.calls <- stateCall{flags: flags, reply: reply}
	return <-reply
}

// stateLoop services execution-state calls for the life of the process,
// locked to one OS thread so every call lands on the thread that holds the
// assertion.
func (a *windowsAssertor) stateLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for c := range a.calls {
		ret, _, _ := procSetThreadExecutionState.Call(c.flags)
		if ret == 0 {
			c.reply <- fmt.Errorf("power: SetThreadExecutionState rejected flags %#x", c.flags)
		} else {
			c.reply <- nil
		}
	}
}

func (a *windowsAssertor) Name() string {
	return "SetThreadExecutionState"
}
