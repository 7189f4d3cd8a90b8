package taskfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// outPrefix marks a pattern line that declares a produced output. The glob
// after the prefix is still watched as an input.
const outPrefix = "out:"

// Load reads and parses the taskfile at path.
func Load(path string) ([]*Task, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: ErrNotFound, Path: path, Detail: "taskfile not found"}
		}
		return nil, fmt.Errorf("open taskfile: %w", err)
	}
	defer file.Close()
	return parse(file, path)
}

// Parse reads a taskfile from r. The name is used in error messages only.
func Parse(r io.Reader, name string) ([]*Task, error) {
	return parse(r, name)
}

func parse(r io.Reader, path string) ([]*Task, error) {
	var (
		tasks   []*Task
		current *Task
		seen    = map[string]string{}
	)

	flush := func(endLine int) error {
		if current == nil {
			return nil
		}
		if len(current.InputPatterns) == 0 {
			return &Error{
				Kind:   ErrNoPatterns,
				Path:   path,
				Line:   endLine,
				Detail: fmt.Sprintf("task %q declares no patterns", current.Command),
			}
		}
		tasks = append(tasks, current)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	headerLine := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "["):
			if err := flush(headerLine); err != nil {
				return nil, err
			}
			close := strings.LastIndex(line, "]")
			if close < 0 {
				return nil, &Error{Kind: ErrBadHeader, Path: path, Line: lineNo, Detail: "task header has no closing bracket"}
			}
			command := strings.TrimSpace(line[1:close])
			if command == "" {
				return nil, &Error{Kind: ErrBadHeader, Path: path, Line: lineNo, Detail: "task header has an empty command"}
			}
			fp := CommandFingerprint(command)
			if prev, ok := seen[fp]; ok {
				return nil, &Error{
					Kind:   ErrDuplicateCommand,
					Path:   path,
					Line:   lineNo,
					Detail: fmt.Sprintf("command %q already declared as %q", command, prev),
				}
			}
			seen[fp] = command
			current = &Task{Command: command}
			headerLine = lineNo
		default:
			if current == nil {
				return nil, &Error{Kind: ErrMissingHeader, Path: path, Line: lineNo, Detail: fmt.Sprintf("pattern %q appears before any task header", line)}
			}
			if rest, ok := strings.CutPrefix(line, outPrefix); ok {
				pattern := strings.TrimSpace(rest)
				if pattern == "" {
					return nil, &Error{Kind: ErrBadHeader, Path: path, Line: lineNo, Detail: "output pattern is empty"}
				}
				current.OutputPatterns = append(current.OutputPatterns, pattern)
				current.InputPatterns = append(current.InputPatterns, pattern)
				continue
			}
			current.InputPatterns = append(current.InputPatterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read taskfile: %w", err)
	}

	if err := flush(headerLine); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, &Error{Kind: ErrEmpty, Path: path, Detail: "taskfile defines no tasks"}
	}
	return tasks, nil
}
