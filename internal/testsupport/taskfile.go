package testsupport

import (
	"path/filepath"
	"strings"
	"testing"

	"reflow/internal/taskfile"
)

// WriteTaskfile writes a taskfile with the given raw contents into dir and
// returns its path.
func WriteTaskfile(t testing.TB, dir, contents string) string {
	t.Helper()

	path := filepath.Join(dir, "reflow.tasks")
	WriteFile(t, path, contents)
	return path
}

// MustParseTasks parses raw taskfile text and fails the test on error.
func MustParseTasks(t testing.TB, contents string) []*taskfile.Task {
	t.Helper()

	tasks, err := taskfile.Parse(strings.NewReader(contents), "test.tasks")
	if err != nil {
		t.Fatalf("parse taskfile: %v", err)
	}
	return tasks
}
