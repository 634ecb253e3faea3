// Package oneshot runs non-interactive claude invocations.
//
// Unlike the long-lived tmux sessions, a one-shot run executes
// "claude -p <prompt>" in the workspace root, streams its output to a
// caller-provided writer, and exits. The process runs under a pty so the
// CLI behaves as it would in a terminal.
package oneshot

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/claudepane/claudepane/internal/logging"
)

// Request describes a single non-interactive invocation.
type Request struct {
	// WorkspaceRoot is the directory the command runs in.
	WorkspaceRoot string
	// Command is the claude executable name.
	Command string
	// Flags are the non-interactive flags, typically ["-p"].
	Flags []string
	// Prompt is the user's prompt, appended after the flags.
	Prompt string
}

// Result reports a completed run.
type Result struct {
	// RunID uniquely identifies the run in logs and viewer labels.
	RunID string
	// ExitCode is the process exit code; 0 on success.
	ExitCode int
}

// Runner executes one-shot claude invocations.
type Runner struct {
	log *logging.Logger

	// start launches the command under a pty. Swappable for tests.
	start func(cmd *exec.Cmd) (io.ReadCloser, error)
}

// NewRunner creates a Runner.
func NewRunner(log *logging.Logger) *Runner {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Runner{
		log: log,
		start: func(cmd *exec.Cmd) (io.ReadCloser, error) {
			return pty.Start(cmd)
		},
	}
}

// Run executes the request and streams combined output to out.
// It blocks until the process exits or ctx is canceled.
func (r *Runner) Run(ctx context.Context, req Request, out io.Writer) (Result, error) {
	runID := uuid.NewString()
	log := r.log.With("run_id", runID, "workspace", req.WorkspaceRoot)

	args := append(append([]string{}, req.Flags...), req.Prompt)
	cmd := exec.CommandContext(ctx, req.Command, args...)
	cmd.Dir = req.WorkspaceRoot
	cmd.Env = os.Environ()

	log.Info("starting one-shot run", "command", req.Command)

	f, err := r.start(cmd)
	if err != nil {
		log.Error("failed to start one-shot run", "error", err)
		return Result{RunID: runID}, err
	}
	defer f.Close()

	// The pty surfaces EIO when the child closes its end; that is the
	// normal end-of-output condition, not a failure.
	if _, err := io.Copy(out, f); err != nil && !isPtyEOF(err) {
		log.Warn("output stream ended with error", "error", err)
	}

	result := Result{RunID: runID}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			log.Warn("one-shot run exited nonzero", "exit_code", result.ExitCode)
			return result, nil
		}
		log.Error("one-shot run failed", "error", err)
		return result, err
	}

	log.Info("one-shot run complete")
	return result, nil
}

// isPtyEOF reports whether the read error is the EIO a Linux pty returns
// once the child exits.
func isPtyEOF(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, io.EOF)
}
