package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// HeldError reports that another reflow run holds the cache directory lock.
type HeldError struct {
	Path string
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("another reflow run holds %s; wait for it to finish", e.Path)
}

// ErrorKind classifies lock contention for exit-code mapping.
func (e *HeldError) ErrorKind() string {
	return "configuration"
}

// Lock is an acquired exclusive lock on a cache directory.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the cache directory lock without blocking. It fails with a
// *HeldError when another run already owns it.
func Acquire(cacheDir string) (*Lock, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	path := filepath.Join(cacheDir, "reflow.lock")
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, &HeldError{Path: path}
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
