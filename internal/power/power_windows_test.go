//go:build windows

package power

import (
	"context"
	"sync"
	"testing"
)

func TestAssertAndReleaseAcrossGoroutines(t *testing.T) {
	a := New(Options{KeepDisplay: true})

	// Assert and Release land on whatever OS threads the scheduler picks;
	// the assertor must still apply both to the same pinned thread.
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- a.Assert(context.Background())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Assert failed: %v", err)
		}
	}

	if err := a.Release(); err != nil {
		t.Errorf("Release failed: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Errorf("second Release failed: %v", err)
	}
}
