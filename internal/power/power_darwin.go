//go:build darwin && cgo

package power

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation

#include <stdlib.h>
#include <IOKit/pwr_mgt/IOPMLib.h>
#include <CoreFoundation/CoreFoundation.h>

static IOReturn wg_create_assertion(CFStringRef type, const char *reason, IOPMAssertionID *out) {
    CFStringRef r = CFStringCreateWithCString(kCFAllocatorDefault, reason, kCFStringEncodingUTF8);
    IOReturn ret = IOPMAssertionCreateWithName(type, kIOPMAssertionLevelOn, r, out);
    CFRelease(r);
    return ret;
}

static IOReturn wg_assert_system(const char *reason, IOPMAssertionID *out) {
    return wg_create_assertion(kIOPMAssertionTypePreventUserIdleSystemSleep, reason, out);
}

static IOReturn wg_assert_display(const char *reason, IOPMAssertionID *out) {
    return wg_create_assertion(kIOPMAssertionTypePreventUserIdleDisplaySleep, reason, out);
}

static IOReturn wg_declare_activity(const char *reason, IOPMAssertionID *out) {
    CFStringRef r = CFStringCreateWithCString(kCFAllocatorDefault, reason, kCFStringEncodingUTF8);
    IOReturn ret = IOPMAssertionDeclareUserActivity(r, kIOPMUserActiveLocal, out);
    CFRelease(r);
    return ret;
}

static IOReturn wg_release_assertion(IOPMAssertionID id) {
    return IOPMAssertionRelease(id);
}
*/
import "C"

import (
	"context"
	"fmt"
	"sync"
	"unsafe"
)

// darwinAssertor holds IOKit power assertions. The assertion IDs stay valid
// for the life of the process, so Assert only creates them once and then
// refreshes the idle timer by declaring user activity each cycle.
type darwinAssertor struct {
	opts Options

	mu        sync.Mutex
	systemID  C.IOPMAssertionID
	displayID C.IOPMAssertionID
	held      bool
}

func newAssertor(opts Options) Assertor {
	return &darwinAssertor{opts: opts}
}

func (a *darwinAssertor) Assert(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	reason := C.CString(a.opts.Reason)
	defer C.free(unsafe.Pointer(reason))

	if a.held {
		var activityID C.IOPMAssertionID
		// Best effort: resets the user-idle timer alongside the standing
		// assertions.
		C.wg_declare_activity(reason, &activityID)
		return nil
	}

	if ret := C.wg_assert_system(reason, &a.systemID); ret != C.kIOReturnSuccess {
		return fmt.Errorf("power: IOPMAssertionCreateWithName(system) failed: %#x", int(ret))
	}

	if a.opts.KeepDisplay {
		if ret := C.wg_assert_display(reason, &a.displayID); ret != C.kIOReturnSuccess {
			C.wg_release_assertion(a.systemID)
			a.systemID = 0
			return fmt.Errorf("power: IOPMAssertionCreateWithName(display) failed: %#x", int(ret))
		}
	}

	a.held = true
	return nil
}

func (a *darwinAssertor) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.held {
		return nil
	}
	a.held = false

	var firstErr error
	if a.systemID != 0 {
		if ret := C.wg_release_assertion(a.systemID); ret != C.kIOReturnSuccess {
			firstErr = fmt.Errorf("power: IOPMAssertionRelease(system) failed: %#x", int(ret))
		}
		a.systemID = 0
	}
	if a.displayID != 0 {
		if ret := C.wg_release_assertion(a.displayID); ret != C.kIOReturnSuccess && firstErr == nil {
			firstErr = fmt.Errorf("power: IOPMAssertionRelease(display) failed: %#x", int(ret))
		}
		a.displayID = 0
	}
	return firstErr
}

func (a *darwinAssertor) Name() string {
	return "IOPMAssertion"
}
