// Package taskfile parses the line-oriented task list format and exposes the
// Task model the engine runs against.
//
// A taskfile is a sequence of sections. A `[command]` header opens a section;
// the non-blank, non-comment lines under it are glob patterns watched as
// inputs. A pattern carrying the `out:` prefix additionally declares the glob
// as a produced output. Tasks are identified everywhere else in the system by
// the SHA-256 fingerprint of their command text, which is also how duplicate
// commands are rejected at load time.
//
// Parsing is strict: every structural problem (missing header, empty section,
// duplicate command, empty file) is a typed *Error so callers can map it to a
// stable exit code before anything executes.
package taskfile
