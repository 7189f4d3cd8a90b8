package taskfile

import "fmt"

// ErrorKind distinguishes the structural problems a taskfile can have.
type ErrorKind string

const (
	// ErrNotFound means the taskfile does not exist at the resolved path.
	ErrNotFound ErrorKind = "not_found"
	// ErrEmpty means the taskfile parsed cleanly but defines zero tasks.
	ErrEmpty ErrorKind = "empty"
	// ErrMissingHeader means a pattern line appeared before any [command] header.
	ErrMissingHeader ErrorKind = "missing_header"
	// ErrBadHeader means a header line is malformed (no closing bracket or an
	// empty command).
	ErrBadHeader ErrorKind = "bad_header"
	// ErrNoPatterns means a task section contains zero pattern lines.
	ErrNoPatterns ErrorKind = "no_patterns"
	// ErrDuplicateCommand means two sections share a command fingerprint.
	ErrDuplicateCommand ErrorKind = "duplicate_command"
)

// Error reports a fatal taskfile problem. Line is 1-based and zero when the
// problem is not tied to a specific line.
type Error struct {
	Kind   ErrorKind
	Path   string
	Line   int
	Detail string
}

func (e *Error) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "taskfile"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", loc, e.Line, e.Detail)
	}
	return fmt.Sprintf("%s: %s", loc, e.Detail)
}

// ErrorKind classifies taskfile problems as configuration errors for status
// and exit-code mapping.
func (e *Error) ErrorKind() string {
	return "configuration"
}
