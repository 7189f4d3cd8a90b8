package taskfile_test

import (
	"errors"
	"strings"
	"testing"

	"reflow/internal/taskfile"
)

func parseString(t *testing.T, contents string) ([]*taskfile.Task, error) {
	t.Helper()
	return taskfile.Parse(strings.NewReader(contents), "test.tasks")
}

func TestParseSingleTask(t *testing.T) {
	tasks, err := parseString(t, `
# build step
[go build ./...]
src/**/*.go
out:bin/app
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	task := tasks[0]
	if task.Command != "go build ./..." {
		t.Errorf("command = %q", task.Command)
	}
	wantInputs := []string{"src/**/*.go", "bin/app"}
	if len(task.InputPatterns) != len(wantInputs) {
		t.Fatalf("input patterns = %v", task.InputPatterns)
	}
	for i, want := range wantInputs {
		if task.InputPatterns[i] != want {
			t.Errorf("input[%d] = %q, want %q", i, task.InputPatterns[i], want)
		}
	}
	if len(task.OutputPatterns) != 1 || task.OutputPatterns[0] != "bin/app" {
		t.Errorf("output patterns = %v", task.OutputPatterns)
	}
}

func TestParseOutPatternAlsoWatchedAsInput(t *testing.T) {
	tasks, err := parseString(t, "[touch out.txt]\nout:out.txt\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	task := tasks[0]
	if len(task.InputPatterns) != 1 || task.InputPatterns[0] != "out.txt" {
		t.Errorf("out: pattern not mirrored into inputs: %v", task.InputPatterns)
	}
}

func TestParseMultipleTasksAndComments(t *testing.T) {
	tasks, err := parseString(t, `
# pipeline
[gen]
in.txt
out:mid.txt

# second stage
[pack]
mid.txt
out:final.txt
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Command != "gen" || tasks[1].Command != "pack" {
		t.Errorf("commands = %q, %q", tasks[0].Command, tasks[1].Command)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		kind     taskfile.ErrorKind
	}{
		{"empty file", "", taskfile.ErrEmpty},
		{"comments only", "# nothing here\n", taskfile.ErrEmpty},
		{"pattern before header", "src/*.go\n[build]\nsrc/*.go\n", taskfile.ErrMissingHeader},
		{"section without patterns", "[build]\n[test]\nsrc/*.go\n", taskfile.ErrNoPatterns},
		{"trailing section without patterns", "[build]\nsrc/*.go\n[test]\n", taskfile.ErrNoPatterns},
		{"duplicate command", "[build]\nsrc/*.go\n[build]\nother/*.go\n", taskfile.ErrDuplicateCommand},
		{"header without closing bracket", "[build\nsrc/*.go\n", taskfile.ErrBadHeader},
		{"header with empty command", "[  ]\nsrc/*.go\n", taskfile.ErrBadHeader},
		{"empty out pattern", "[build]\nout:\n", taskfile.ErrBadHeader},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseString(t, tc.contents)
			var tfErr *taskfile.Error
			if !errors.As(err, &tfErr) {
				t.Fatalf("expected *taskfile.Error, got %v", err)
			}
			if tfErr.Kind != tc.kind {
				t.Errorf("kind = %q, want %q", tfErr.Kind, tc.kind)
			}
			if tfErr.ErrorKind() != "configuration" {
				t.Errorf("classification = %q", tfErr.ErrorKind())
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := taskfile.Load(t.TempDir() + "/missing.tasks")
	var tfErr *taskfile.Error
	if !errors.As(err, &tfErr) || tfErr.Kind != taskfile.ErrNotFound {
		t.Fatalf("expected not_found error, got %v", err)
	}
}

func TestCommandWithBracketsInside(t *testing.T) {
	tasks, err := parseString(t, "[echo [ok]]\nsrc/*.txt\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// The command extends to the last bracket on the line.
	if tasks[0].Command != "echo [ok]" {
		t.Errorf("command = %q", tasks[0].Command)
	}
}
