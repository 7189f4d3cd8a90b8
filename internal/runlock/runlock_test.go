package runlock_test

import (
	"errors"
	"path/filepath"
	"testing"

	"reflow/internal/runlock"
)

func TestAcquireAndRelease(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), ".reflow")

	lock, err := runlock.Acquire(cacheDir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// Reacquire after release succeeds.
	lock, err = runlock.Acquire(cacheDir)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	_ = lock.Release()
}

func TestAcquireCreatesCacheDir(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "deep", ".reflow")
	lock, err := runlock.Acquire(cacheDir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	_ = lock.Release()
}

func TestHeldErrorClassification(t *testing.T) {
	err := &runlock.HeldError{Path: "/tmp/.reflow/reflow.lock"}
	if err.ErrorKind() != "configuration" {
		t.Errorf("classification = %q", err.ErrorKind())
	}
	var heldErr *runlock.HeldError
	if !errors.As(error(err), &heldErr) {
		t.Error("errors.As failed on HeldError")
	}
}
