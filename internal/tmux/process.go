package tmux

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// PanePID returns the PID of the process running in the session's pane.
// Returns 0 if the PID cannot be determined (e.g. session doesn't exist).
func PanePID(sessionName string) int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cmd := CommandContext(ctx, "display-message", "-t", sessionName, "-p", "#{pane_pid}")
	output, err := cmd.Output()
	if err != nil {
		return 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0
	}
	return pid
}

// DescendantPIDs returns all descendant PIDs of the given PID (recursive).
// Uses pgrep -P to find child processes.
func DescendantPIDs(pid int) []int {
	if pid <= 0 {
		return nil
	}
	return descendantPIDs(pid)
}

func descendantPIDs(pid int) []int {
	cmd := exec.Command("pgrep", "-P", strconv.Itoa(pid))
	output, err := cmd.Output()
	if err != nil {
		return nil
	}

	var descendants []int
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		childPID, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		descendants = append(descendants, childPID)
		descendants = append(descendants, descendantPIDs(childPID)...)
	}
	return descendants
}

// IsProcessAlive checks if a process with the given PID exists.
// Uses kill(pid, 0) which checks for process existence without sending a signal.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil
}

// KillProcessTree sends SIGKILL to a process and all its descendants.
// Descendants are killed first (bottom-up) to prevent orphaning.
func KillProcessTree(pid int) {
	if pid <= 0 {
		return
	}

	descendants := DescendantPIDs(pid)
	for i := len(descendants) - 1; i >= 0; i-- {
		if IsProcessAlive(descendants[i]) {
			_ = syscall.Kill(descendants[i], syscall.SIGKILL)
		}
	}
	if IsProcessAlive(pid) {
		_ = syscall.Kill(pid, syscall.SIGKILL)
	}
}

// GracefulShutdown stops a claude session: it captures the process tree,
// sends Ctrl+C for a graceful stop, polls for process exit, kills the tmux
// session, then force-kills any survivors.
func GracefulShutdown(sessionName string, gracefulTimeout time.Duration) {
	// Capture the process tree while the session is still alive so we can
	// verify all processes are dead after tmux cleanup.
	panePID := PanePID(sessionName)
	var pids []int
	if panePID > 0 {
		pids = append([]int{panePID}, DescendantPIDs(panePID)...)
	}

	_ = Command("send-keys", "-t", sessionName, "C-c").Run()

	WaitForProcessExit(panePID, gracefulTimeout)

	_ = Command("kill-session", "-t", sessionName).Run()

	for _, pid := range pids {
		if IsProcessAlive(pid) {
			KillProcessTree(pid)
		}
	}
}

// WaitForProcessExit polls until the given PID exits or the timeout is
// reached. Returns true if the process exited within the timeout.
func WaitForProcessExit(pid int, timeout time.Duration) bool {
	if pid <= 0 || !IsProcessAlive(pid) {
		return true
	}

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return !IsProcessAlive(pid)
		case <-ticker.C:
			if !IsProcessAlive(pid) {
				return true
			}
		}
	}
}
