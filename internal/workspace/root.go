// Package workspace resolves the project root for an editor context.
//
// The workspace root is the top-level directory of the version-controlled
// project containing the current file. Session names derive from it, so the
// resolution must be deterministic: the same file always maps to the same
// root, and every file under one root maps to one session.
package workspace

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/claudepane/claudepane/internal/errors"
)

// CommandExecutor abstracts command execution for testability.
// This allows tests to mock git commands without executing them.
type CommandExecutor interface {
	// Run executes a command in dir and returns combined output.
	Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// CLICommandExecutor executes commands using os/exec.
type CLICommandExecutor struct{}

// NewCLICommandExecutor creates a new CLI command executor.
func NewCLICommandExecutor() *CLICommandExecutor {
	return &CLICommandExecutor{}
}

// Run executes a command and returns combined output.
func (e *CLICommandExecutor) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Locator resolves workspace roots using git.
type Locator struct {
	executor CommandExecutor
}

// NewLocator creates a Locator backed by the git CLI.
func NewLocator() *Locator {
	return &Locator{executor: NewCLICommandExecutor()}
}

// NewLocatorWithExecutor creates a Locator with a custom executor.
// This is primarily useful for testing.
func NewLocatorWithExecutor(executor CommandExecutor) *Locator {
	return &Locator{executor: executor}
}

// LocateRoot returns the workspace root containing path.
//
// path may name a file or a directory; for a file, resolution starts from
// its containing directory. Returns errors.ErrNoProjectRoot when the path
// is not inside a recognized project.
func (l *Locator) LocateRoot(ctx context.Context, path string) (string, error) {
	dir := startDir(path)

	output, err := l.executor.Run(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.NewGitError("failed to resolve workspace root", errors.ErrNoProjectRoot).
			WithRepository(dir).
			WithGitOutput(strings.TrimSpace(string(output)))
	}

	root := strings.TrimSpace(string(output))
	if root == "" {
		return "", errors.NewGitError("git returned an empty workspace root", errors.ErrNoProjectRoot).
			WithRepository(dir)
	}
	return root, nil
}

// startDir returns the directory resolution starts from.
// Files resolve from their containing directory; anything that does not
// stat as a directory is treated as a file path.
func startDir(path string) string {
	if path == "" {
		return "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// ProjectBasename returns the base name of the workspace root itself.
func ProjectBasename(root string) string {
	return filepath.Base(filepath.Clean(root))
}

// ParentBasename returns the base name of the workspace root's parent
// directory. Session naming historically derives from the parent directory
// rather than the root itself; both derivations are kept so callers can
// choose via configuration.
func ParentBasename(root string) string {
	return filepath.Base(filepath.Dir(filepath.Clean(root)))
}
