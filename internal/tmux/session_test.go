package tmux

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/claudepane/claudepane/internal/errors"
)

// recordingRunner records tmux invocations and answers from a script.
type recordingRunner struct {
	// calls records each invocation as "dir|arg arg arg".
	calls []string
	// respond maps the first tmux arg (the subcommand) to a canned response.
	respond map[string]struct {
		output string
		err    error
	}
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{respond: make(map[string]struct {
		output string
		err    error
	})}
}

func (r *recordingRunner) set(subcommand, output string, err error) {
	r.respond[subcommand] = struct {
		output string
		err    error
	}{output, err}
}

func (r *recordingRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, dir+"|"+strings.Join(args, " "))
	if resp, ok := r.respond[args[0]]; ok {
		return []byte(resp.output), resp.err
	}
	return nil, nil
}

func (r *recordingRunner) called(fragment string) bool {
	return r.indexOf(fragment) >= 0
}

// indexOf returns the position of the first call containing fragment,
// or -1 if none did.
func (r *recordingRunner) indexOf(fragment string) int {
	for i, c := range r.calls {
		if strings.Contains(c, fragment) {
			return i
		}
	}
	return -1
}

func TestSessionExists(t *testing.T) {
	runner := newRecordingRunner()
	d := NewDriverWithRunner(runner)

	if !d.SessionExists(context.Background(), "claude-proj") {
		t.Error("expected session to exist when has-session succeeds")
	}
	if !runner.called("has-session -t claude-proj") {
		t.Errorf("has-session not invoked, calls: %v", runner.calls)
	}

	runner.set("has-session", "", fmt.Errorf("exit status 1"))
	if d.SessionExists(context.Background(), "claude-proj") {
		t.Error("expected session to be missing when has-session fails")
	}
}

func TestEnsureSessionExisting(t *testing.T) {
	runner := newRecordingRunner()
	d := NewDriverWithRunner(runner)

	err := d.EnsureSession(context.Background(), "claude-proj", "/repo", DefaultSessionConfig())
	if err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}

	// Existing session: no new-session call.
	if runner.called("new-session") {
		t.Errorf("new-session invoked for existing session, calls: %v", runner.calls)
	}
}

func TestEnsureSessionCreates(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("has-session", "", fmt.Errorf("exit status 1"))
	d := NewDriverWithRunner(runner)

	cfg := SessionConfig{Width: 120, Height: 40, HistoryLimit: 1000, Command: "claude"}
	err := d.EnsureSession(context.Background(), "claude-proj", "/repo", cfg)
	// SendText checks has-session again, which our script still fails.
	if err == nil {
		t.Fatal("expected SendText failure when has-session keeps failing")
	}

	if !runner.called("/repo|new-session -d -s claude-proj -x 120 -y 40") {
		t.Errorf("new-session args wrong, calls: %v", runner.calls)
	}
	if !runner.called("set-option -g history-limit 1000") {
		t.Errorf("history-limit not set, calls: %v", runner.calls)
	}

	// history-limit only affects panes created after it is set, so the
	// option must be configured before new-session runs.
	if runner.indexOf("history-limit") > runner.indexOf("new-session") {
		t.Errorf("history-limit set after new-session, calls: %v", runner.calls)
	}
}

func TestEnsureSessionStartsCommand(t *testing.T) {
	runner := newRecordingRunner()
	first := true
	// has-session fails only on the first probe, then the session exists.
	d := NewDriverWithRunner(runnerFunc(func(ctx context.Context, dir string, args ...string) ([]byte, error) {
		runner.calls = append(runner.calls, dir+"|"+strings.Join(args, " "))
		if args[0] == "has-session" && first {
			first = false
			return nil, fmt.Errorf("exit status 1")
		}
		return nil, nil
	}))

	err := d.EnsureSession(context.Background(), "claude-proj", "/repo", DefaultSessionConfig())
	if err != nil {
		t.Fatalf("EnsureSession failed: %v", err)
	}

	if !runner.called("send-keys -t claude-proj -l claude") {
		t.Errorf("claude command not sent, calls: %v", runner.calls)
	}
	if !runner.called("send-keys -t claude-proj Enter") {
		t.Errorf("Enter not sent, calls: %v", runner.calls)
	}
}

// runnerFunc adapts a function to the Runner interface.
type runnerFunc func(ctx context.Context, dir string, args ...string) ([]byte, error)

func (f runnerFunc) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return f(ctx, dir, args...)
}

func TestEnsureSessionCreateFails(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("has-session", "", fmt.Errorf("exit status 1"))
	runner.set("new-session", "no server running", fmt.Errorf("exit status 1"))
	d := NewDriverWithRunner(runner)

	err := d.EnsureSession(context.Background(), "claude-proj", "/repo", DefaultSessionConfig())
	if err == nil {
		t.Fatal("expected error when new-session fails")
	}
	if !errors.Is(err, errors.ErrSessionStartFailed) {
		t.Errorf("expected ErrSessionStartFailed, got: %v", err)
	}

	var sessErr *errors.SessionError
	if !errors.As(err, &sessErr) {
		t.Fatal("expected *errors.SessionError")
	}
	if sessErr.Output != "no server running" {
		t.Errorf("Output = %q, want captured tmux output", sessErr.Output)
	}
}

func TestSendText(t *testing.T) {
	runner := newRecordingRunner()
	d := NewDriverWithRunner(runner)

	text := "File name: a.py\n\nline number: 42\n\nwhy?"
	if err := d.SendText(context.Background(), "claude-proj", text); err != nil {
		t.Fatalf("SendText failed: %v", err)
	}

	// Text is sent literally, then submitted with Enter as a separate key.
	if !runner.called("send-keys -t claude-proj -l " + text) {
		t.Errorf("literal send missing, calls: %v", runner.calls)
	}
	last := runner.calls[len(runner.calls)-1]
	if !strings.HasSuffix(last, "send-keys -t claude-proj Enter") {
		t.Errorf("final call = %q, want Enter submit", last)
	}
}

func TestSendTextMissingSession(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("has-session", "", fmt.Errorf("exit status 1"))
	d := NewDriverWithRunner(runner)

	err := d.SendText(context.Background(), "claude-gone", "hello")
	if !errors.Is(err, errors.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got: %v", err)
	}
	if runner.called("send-keys") {
		t.Errorf("send-keys should not run for missing session, calls: %v", runner.calls)
	}
}

func TestListSessions(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("list-sessions", "claude-projects\nclaude-tools\n", nil)
	d := NewDriverWithRunner(runner)

	names, err := d.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}

	want := []string{"claude-projects", "claude-tools"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListSessionsNoServer(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("list-sessions", "no server running on /tmp/tmux-1000/claudepane", fmt.Errorf("exit status 1"))
	d := NewDriverWithRunner(runner)

	names, err := d.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions should treat a missing server as empty: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
}

func TestCapturePane(t *testing.T) {
	runner := newRecordingRunner()
	runner.set("capture-pane", "session output here", nil)
	d := NewDriverWithRunner(runner)

	output, err := d.CapturePane(context.Background(), "claude-proj")
	if err != nil {
		t.Fatalf("CapturePane failed: %v", err)
	}
	if string(output) != "session output here" {
		t.Errorf("output = %q", output)
	}
	if !runner.called("capture-pane -t claude-proj -p -e -S -") {
		t.Errorf("capture-pane args wrong, calls: %v", runner.calls)
	}
}
