package power

import (
	"context"
	"testing"
)

func TestNewReturnsBackend(t *testing.T) {
	a := New(Options{})
	if a == nil {
		t.Fatal("New returned nil")
	}
	if a.Name() == "" {
		t.Error("backend name should not be empty")
	}
}

func TestAssertHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(Options{})
	if err := a.Assert(ctx); err == nil {
		t.Error("Assert should fail on a cancelled context")
	}
}

func TestReleaseWithoutAssertIsSafe(t *testing.T) {
	a := New(Options{KeepDisplay: true})

	// Release must be idempotent and callable without a prior Assert; it
	// runs from the signal path during shutdown.
	if err := a.Release(); err != nil {
		t.Errorf("first Release failed: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Errorf("second Release failed: %v", err)
	}
}
