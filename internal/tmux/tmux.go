// Package tmux drives the named tmux sessions that host claude processes.
//
// claudepane keeps all of its sessions on a dedicated tmux socket so that
// editor-driven sessions never collide with a user's own tmux server. All
// operations address sessions by name; session names come from the registry
// and are never parsed here.
package tmux

import (
	"context"
	"os/exec"
)

// SocketName is the tmux socket all claudepane sessions live on.
const SocketName = "claudepane"

// Command creates an exec.Cmd for tmux on the claudepane socket.
func Command(args ...string) *exec.Cmd {
	return CommandWithSocket(SocketName, args...)
}

// CommandContext creates a context-aware exec.Cmd for tmux on the
// claudepane socket.
func CommandContext(ctx context.Context, args ...string) *exec.Cmd {
	return CommandContextWithSocket(ctx, SocketName, args...)
}

// CommandWithSocket creates an exec.Cmd for tmux with a custom socket name.
func CommandWithSocket(socket string, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-L", socket}, args...)
	return exec.Command("tmux", fullArgs...)
}

// CommandContextWithSocket creates a context-aware exec.Cmd with a custom socket.
func CommandContextWithSocket(ctx context.Context, socket string, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-L", socket}, args...)
	return exec.CommandContext(ctx, "tmux", fullArgs...)
}

// CommandArgs returns the arguments needed to run a tmux command on the
// claudepane socket. Use this when the command string is built elsewhere
// (e.g. for display purposes).
func CommandArgs(args ...string) []string {
	return append([]string{"-L", SocketName}, args...)
}
