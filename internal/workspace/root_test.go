package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/claudepane/claudepane/internal/errors"
)

// mockExecutor returns canned output for git commands.
type mockExecutor struct {
	output []byte
	err    error

	// Recorded call
	dir  string
	name string
	args []string
}

func (m *mockExecutor) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	m.dir = dir
	m.name = name
	m.args = args
	return m.output, m.err
}

func TestLocateRoot(t *testing.T) {
	mock := &mockExecutor{output: []byte("/home/user/projects/myproj\n")}
	locator := NewLocatorWithExecutor(mock)

	dir := t.TempDir()
	root, err := locator.LocateRoot(context.Background(), dir)
	if err != nil {
		t.Fatalf("LocateRoot failed: %v", err)
	}
	if root != "/home/user/projects/myproj" {
		t.Errorf("root = %q, want %q", root, "/home/user/projects/myproj")
	}

	if mock.name != "git" {
		t.Errorf("executed %q, want git", mock.name)
	}
	wantArgs := []string{"rev-parse", "--show-toplevel"}
	if len(mock.args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", mock.args, wantArgs)
	}
	for i, want := range wantArgs {
		if mock.args[i] != want {
			t.Errorf("args[%d] = %q, want %q", i, mock.args[i], want)
		}
	}
	if mock.dir != dir {
		t.Errorf("dir = %q, want %q", mock.dir, dir)
	}
}

func TestLocateRootFileResolvesFromParent(t *testing.T) {
	mock := &mockExecutor{output: []byte("/repo\n")}
	locator := NewLocatorWithExecutor(mock)

	// A path that does not exist is treated as a file path.
	path := filepath.Join(t.TempDir(), "src", "main.go")
	if _, err := locator.LocateRoot(context.Background(), path); err != nil {
		t.Fatalf("LocateRoot failed: %v", err)
	}
	if mock.dir != filepath.Dir(path) {
		t.Errorf("dir = %q, want %q", mock.dir, filepath.Dir(path))
	}
}

func TestLocateRootNotARepo(t *testing.T) {
	mock := &mockExecutor{
		output: []byte("fatal: not a git repository (or any of the parent directories): .git\n"),
		err:    fmt.Errorf("exit status 128"),
	}
	locator := NewLocatorWithExecutor(mock)

	_, err := locator.LocateRoot(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error for non-repository path")
	}
	if !errors.Is(err, errors.ErrNoProjectRoot) {
		t.Errorf("expected ErrNoProjectRoot, got: %v", err)
	}

	var gitErr *errors.GitError
	if !errors.As(err, &gitErr) {
		t.Fatal("expected *errors.GitError")
	}
	if gitErr.GitOutput == "" {
		t.Error("expected captured git output on error")
	}
}

func TestLocateRootEmptyOutput(t *testing.T) {
	mock := &mockExecutor{output: []byte("\n")}
	locator := NewLocatorWithExecutor(mock)

	_, err := locator.LocateRoot(context.Background(), t.TempDir())
	if !errors.Is(err, errors.ErrNoProjectRoot) {
		t.Errorf("expected ErrNoProjectRoot for empty output, got: %v", err)
	}
}

func TestProjectBasename(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"/home/user/projects/myproj", "myproj"},
		{"/home/user/projects/myproj/", "myproj"},
		{"/myproj", "myproj"},
	}

	for _, tt := range tests {
		if got := ProjectBasename(tt.root); got != tt.want {
			t.Errorf("ProjectBasename(%q) = %q, want %q", tt.root, got, tt.want)
		}
	}
}

func TestParentBasename(t *testing.T) {
	tests := []struct {
		root string
		want string
	}{
		{"/home/user/projects/myproj", "projects"},
		{"/home/user/projects/myproj/", "projects"},
		{"/myproj", "/"},
	}

	for _, tt := range tests {
		if got := ParentBasename(tt.root); got != tt.want {
			t.Errorf("ParentBasename(%q) = %q, want %q", tt.root, got, tt.want)
		}
	}
}
