//go:build unix

package executor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func shellInvocation(command string) (string, []string) {
	return "sh", []string{"-c", command}
}

// terminationSignal reports the signal that killed the child, if any.
func terminationSignal(exitErr *exec.ExitError) (string, int, bool) {
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return "", 0, false
	}
	ws := unix.WaitStatus(status)
	if !ws.Signaled() {
		return "", 0, false
	}
	sig := ws.Signal()
	return unix.SignalName(sig), int(sig), true
}
