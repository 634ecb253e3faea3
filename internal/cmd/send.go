package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/compose"
	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/errors"
	"github.com/claudepane/claudepane/internal/registry"
	"github.com/claudepane/claudepane/internal/tmux"
	"github.com/claudepane/claudepane/internal/workspace"
)

var sendCmd = &cobra.Command{
	Use:   "send [message...]",
	Short: "Send text into the project's claude session",
	Long: `Send a message into the claude session for the current project,
creating the session first if it does not exist yet.

The message is taken from the arguments, or from stdin when no arguments
are given (the way editor plugins forward a visual selection). Optional
location flags prepend file and line context in a stable format the
session's claude process can read.`,
	RunE: runSend,
}

var (
	sendPath    string
	sendSession string
	sendFile    string
	sendLine    int
	sendCount   int
)

func init() {
	sendCmd.Flags().StringVar(&sendPath, "path", ".", "file or directory identifying the project")
	sendCmd.Flags().StringVar(&sendSession, "session", "", "explicit session name (skips derivation)")
	sendCmd.Flags().StringVar(&sendFile, "file", "", "file name to include as context")
	sendCmd.Flags().IntVar(&sendLine, "line", 0, "line number to include as context")
	sendCmd.Flags().IntVar(&sendCount, "count", 0, "line count to include as context (0 omits it)")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Close()

	ec := &registry.Context{Path: sendPath, OverrideName: sendSession}
	reg := registry.New(workspace.NewLocator(), registry.Config{
		Prefix:          cfg.SessionPrefix(),
		BufferPrefix:    cfg.BufferPrefix(),
		UseRootBasename: cfg.Naming.UseRootBasename,
	})

	name, err := reg.ResolveSessionName(cmd.Context(), ec)
	if err != nil {
		return err
	}

	workdir := resolveWorkdir(cmd, ec)

	var loc *compose.Location
	if sendFile != "" {
		loc = &compose.Location{FileName: sendFile, Line: sendLine, LineCount: sendCount}
	}
	text := compose.Message(loc, message)

	driver := tmux.NewDriver()
	sessionCfg := tmux.SessionConfig{
		Width:        cfg.Tmux.Width,
		Height:       cfg.Tmux.Height,
		HistoryLimit: cfg.Tmux.HistoryLimit,
		Command:      cfg.Claude.Command,
	}
	if err := driver.EnsureSession(cmd.Context(), name, workdir, sessionCfg); err != nil {
		log.Error("failed to ensure session", "session", name, "error", err)
		return err
	}

	if err := driver.SendText(cmd.Context(), name, text); err != nil {
		log.Error("failed to send text", "session", name, "error", err)
		return err
	}

	log.WithSession(name).Info("message sent", "bytes", len(text))
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

// readMessage assembles the outbound message from args or stdin.
// An empty message is rejected: sends happen because the user selected
// something, and an empty selection is a user error, not a no-op send.
func readMessage(args []string, stdin io.Reader) (string, error) {
	var message string
	if len(args) > 0 {
		message = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read message from stdin")
		}
		message = string(data)
	}

	if strings.TrimSpace(message) == "" {
		return "", errors.ErrEmptySelection
	}
	return message, nil
}

// resolveWorkdir returns the directory a new session should start in.
// With an override bound the workspace root may not exist, so the
// containing directory of the context path is used instead.
func resolveWorkdir(cmd *cobra.Command, ec *registry.Context) string {
	root, err := workspace.NewLocator().LocateRoot(cmd.Context(), ec.Path)
	if err == nil {
		return root
	}
	if ec.Path == "" || ec.Path == "." {
		return "."
	}
	if info, statErr := os.Stat(ec.Path); statErr == nil && info.IsDir() {
		return ec.Path
	}
	return filepath.Dir(ec.Path)
}
