package tmux

import (
	"context"
	"testing"
)

func TestSocketName(t *testing.T) {
	if SocketName != "claudepane" {
		t.Errorf("SocketName = %q, want %q", SocketName, "claudepane")
	}
}

func TestCommand(t *testing.T) {
	cmd := Command("list-sessions")
	args := cmd.Args

	if len(args) < 4 {
		t.Fatalf("Expected at least 4 args, got %d: %v", len(args), args)
	}

	if args[0] != "tmux" {
		t.Errorf("args[0] = %q, want %q", args[0], "tmux")
	}
	if args[1] != "-L" {
		t.Errorf("args[1] = %q, want %q", args[1], "-L")
	}
	if args[2] != SocketName {
		t.Errorf("args[2] = %q, want %q", args[2], SocketName)
	}
	if args[3] != "list-sessions" {
		t.Errorf("args[3] = %q, want %q", args[3], "list-sessions")
	}
}

func TestCommandContext(t *testing.T) {
	cmd := CommandContext(context.Background(), "has-session", "-t", "test")
	args := cmd.Args

	expected := []string{"tmux", "-L", SocketName, "has-session", "-t", "test"}
	if len(args) != len(expected) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(expected))
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want)
		}
	}
}

func TestCommandArgs(t *testing.T) {
	args := CommandArgs("kill-session", "-t", "test")

	expected := []string{"-L", SocketName, "kill-session", "-t", "test"}
	if len(args) != len(expected) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(expected))
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want)
		}
	}
}

func TestAttachCommand(t *testing.T) {
	args := AttachCommand("claude-proj")

	expected := []string{"tmux", "-L", SocketName, "attach-session", "-t", "claude-proj"}
	if len(args) != len(expected) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(expected))
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want)
		}
	}
}
