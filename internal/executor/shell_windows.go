//go:build windows

package executor

import "os/exec"

func shellInvocation(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}

// terminationSignal never matches on Windows; signal death is not observable
// through the wait status there.
func terminationSignal(*exec.ExitError) (string, int, bool) {
	return "", 0, false
}
