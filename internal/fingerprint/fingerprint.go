package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// IOError reports a failed read of a watched file during fingerprinting. It
// aborts the whole run; no partial fingerprint is ever produced.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies fingerprint failures for exit-code mapping.
func (e *IOError) ErrorKind() string {
	return "io"
}

// Hasher computes file-set fingerprints.
type Hasher struct {
	workers int
}

// NewHasher returns a Hasher that hashes up to workers files concurrently.
// A non-positive count falls back to min(GOMAXPROCS, 8).
func NewHasher(workers int) *Hasher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers > 8 {
			workers = 8
		}
	}
	return &Hasher{workers: workers}
}

// Fingerprint expands patterns under baseDir and returns the canonical
// fingerprint string for the matched files. An empty match set yields the
// empty string.
func (h *Hasher) Fingerprint(ctx context.Context, baseDir string, patterns []string) (string, error) {
	paths, err := expand(baseDir, patterns)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", nil
	}

	hashes, err := h.hashAll(ctx, baseDir, paths)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(paths))
	for i, rel := range paths {
		lines[i] = hashes[i] + " " + rel
	}
	return strings.Join(lines, "\n"), nil
}

// expand resolves patterns to a deduplicated list of relative paths. Matches
// within one pattern sort lexicographically; pattern order is preserved so the
// result is stable across runs.
func expand(baseDir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(baseDir)
	seen := map[string]struct{}{}
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &IOError{Path: pattern, Err: err}
		}
		sort.Strings(matches)
		for _, rel := range matches {
			if _, ok := seen[rel]; ok {
				continue
			}
			seen[rel] = struct{}{}
			paths = append(paths, rel)
		}
	}
	return paths, nil
}

func (h *Hasher) hashAll(ctx context.Context, baseDir string, paths []string) ([]string, error) {
	hashes := make([]string, len(paths))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	workers := h.workers
	if workers > len(paths) {
		workers = len(paths)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				sum, err := hashFile(filepath.Join(baseDir, filepath.FromSlash(paths[idx])))
				if err != nil {
					setErr(&IOError{Path: paths[idx], Err: err})
					continue
				}
				hashes[idx] = sum
			}
		}()
	}

dispatch:
	for idx := range paths {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			setErr(ctx.Err())
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return hashes, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
