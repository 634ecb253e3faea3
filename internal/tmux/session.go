package tmux

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/claudepane/claudepane/internal/errors"
)

// SessionConfig holds geometry and history settings for new sessions.
type SessionConfig struct {
	Width        int
	Height       int
	HistoryLimit int
	// Command is the command line started inside the session
	// (the claude CLI). Empty starts a plain shell.
	Command string
}

// DefaultSessionConfig returns sensible defaults for claude sessions.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Width:        200,
		Height:       50,
		HistoryLimit: 50000,
		Command:      "claude",
	}
}

// Runner executes tmux commands. The interface exists so tests can record
// invocations without a tmux server.
type Runner interface {
	// Run executes tmux with the given args (socket args excluded) in dir.
	// dir may be empty. Returns combined output.
	Run(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// CLIRunner executes tmux on the claudepane socket via os/exec.
type CLIRunner struct{}

// Run executes the tmux command and returns combined output.
func (CLIRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := CommandContext(ctx, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// Inherit full environment (required for claude credentials) and
	// ensure TERM supports colors.
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	return cmd.CombinedOutput()
}

// Driver performs session-level operations against the claudepane socket.
type Driver struct {
	runner Runner
}

// NewDriver creates a Driver backed by the tmux CLI.
func NewDriver() *Driver {
	return &Driver{runner: CLIRunner{}}
}

// NewDriverWithRunner creates a Driver with a custom runner.
// This is primarily useful for testing.
func NewDriverWithRunner(runner Runner) *Driver {
	return &Driver{runner: runner}
}

// SessionExists checks if a session with the given name exists.
func (d *Driver) SessionExists(ctx context.Context, name string) bool {
	_, err := d.runner.Run(ctx, "", "has-session", "-t", name)
	return err == nil
}

// EnsureSession idempotently ensures a running named session rooted at
// workdir. An existing session is left untouched; otherwise a detached
// session is created and the configured claude command started in it.
func (d *Driver) EnsureSession(ctx context.Context, name, workdir string, cfg SessionConfig) error {
	if d.SessionExists(ctx, name) {
		return nil
	}

	// history-limit only applies to panes created after the option is
	// set, so it must go to the socket's global options before
	// new-session runs. Both options are best-effort; a failed
	// set-option leaves a working session with default settings.
	if cfg.HistoryLimit > 0 {
		_, _ = d.runner.Run(ctx, "", "set-option", "-g", "history-limit", fmt.Sprintf("%d", cfg.HistoryLimit))
	}
	_, _ = d.runner.Run(ctx, "", "set-option", "-g", "default-terminal", "xterm-256color")

	args := []string{
		"new-session",
		"-d",
		"-s", name,
		"-x", fmt.Sprintf("%d", cfg.Width),
		"-y", fmt.Sprintf("%d", cfg.Height),
	}
	if output, err := d.runner.Run(ctx, workdir, args...); err != nil {
		return errors.NewSessionError("failed to create tmux session", errors.ErrSessionStartFailed).
			WithSessionName(name).
			WithRetryable(true).
			WithSeverity(errors.SeverityCritical).
			WithOutput(string(output))
	}

	if cfg.Command != "" {
		if err := d.SendText(ctx, name, cfg.Command); err != nil {
			return err
		}
	}

	return nil
}

// SendText delivers text to the named session followed by an Enter key.
// The text is sent literally (-l) so tmux does not interpret key names
// inside it.
func (d *Driver) SendText(ctx context.Context, name, text string) error {
	if !d.SessionExists(ctx, name) {
		return errors.NewSessionError("cannot send to missing session", errors.ErrSessionNotFound).
			WithSessionName(name)
	}

	if _, err := d.runner.Run(ctx, "", "send-keys", "-t", name, "-l", text); err != nil {
		return errors.NewSessionError("send-keys failed", err).WithSessionName(name)
	}
	if _, err := d.runner.Run(ctx, "", "send-keys", "-t", name, "Enter"); err != nil {
		return errors.NewSessionError("submit failed", err).WithSessionName(name)
	}
	return nil
}

// ListSessions returns the names of all sessions on the claudepane socket.
// A missing server (no sessions yet) is reported as an empty list.
func (d *Driver) ListSessions(ctx context.Context) ([]string, error) {
	output, err := d.runner.Run(ctx, "", "list-sessions", "-F", "#{session_name}")
	if err != nil {
		// tmux exits nonzero when the server is not running; treat that
		// as "no sessions" rather than a failure.
		return nil, nil
	}

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// CapturePane captures the visible pane plus scrollback from a session,
// preserving ANSI escape sequences.
func (d *Driver) CapturePane(ctx context.Context, name string) ([]byte, error) {
	output, err := d.runner.Run(ctx, "",
		"capture-pane",
		"-t", name,
		"-p",      // print to stdout
		"-e",      // preserve escape sequences (colors)
		"-S", "-", // start from beginning of scrollback
	)
	if err != nil {
		return nil, errors.NewSessionError("capture-pane failed", errors.ErrSessionNotFound).
			WithSessionName(name)
	}
	return output, nil
}

// KillSession terminates a session by name.
func (d *Driver) KillSession(ctx context.Context, name string) error {
	if _, err := d.runner.Run(ctx, "", "kill-session", "-t", name); err != nil {
		return errors.NewSessionError("kill-session failed", err).WithSessionName(name)
	}
	return nil
}

// AttachCommand returns the full argv (binary included) that attaches the
// calling terminal to the named session. The caller wires stdio and runs it.
func AttachCommand(name string) []string {
	return append([]string{"tmux"}, CommandArgs("attach-session", "-t", name)...)
}

// DefaultGracefulStopTimeout is the time to wait after sending Ctrl+C
// before force-killing the session during cleanup.
const DefaultGracefulStopTimeout = 500 * time.Millisecond
