// Package executor runs task commands through the platform shell.
//
// Commands inherit the parent's standard streams so build output is visible
// live rather than buffered, and run with the taskfile's base directory as
// their working directory. Failures are classified into ExecError kinds
// (non-zero exit, signal kill, declared outputs not produced) that the CLI
// maps to distinct exit codes. The CommandRunner interface exists so the
// engine can be tested without spawning real processes.
package executor
