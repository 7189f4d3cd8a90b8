package taskfile

import (
	"crypto/sha256"
	"encoding/hex"
)

// Task is one configured command with its watched input and declared output
// glob patterns. Tasks are immutable after load.
type Task struct {
	Command        string
	InputPatterns  []string
	OutputPatterns []string

	fingerprint string
}

// Fingerprint returns the hex SHA-256 of the command text. It is the task's
// persistence key and its identity for duplicate detection.
func (t *Task) Fingerprint() string {
	if t.fingerprint == "" {
		t.fingerprint = CommandFingerprint(t.Command)
	}
	return t.fingerprint
}

// ShortID returns a truncated fingerprint suitable for log lines and tables.
func (t *Task) ShortID() string {
	fp := t.Fingerprint()
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}

// HasOutputs reports whether the task declares any output patterns.
func (t *Task) HasOutputs() bool {
	return len(t.OutputPatterns) > 0
}

// CommandFingerprint hashes a command string into its canonical task key.
func CommandFingerprint(command string) string {
	sum := sha256.Sum256([]byte(command))
	return hex.EncodeToString(sum[:])
}
