package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/errors"
	"github.com/claudepane/claudepane/internal/tmux"
	"github.com/claudepane/claudepane/internal/tui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage running claude sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List running claude sessions",
	RunE:  runSessionsList,
}

var sessionsAttachCmd = &cobra.Command{
	Use:   "attach [session]",
	Short: "Attach to a claude session",
	Long: `Attach the current terminal to a claude session. With no argument an
interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessionsAttach,
}

var sessionsCleanCmd = &cobra.Command{
	Use:   "clean [session...]",
	Short: "Shut down claude sessions",
	Long: `Gracefully stop the named sessions, or every running session when no
names are given. Each session's claude process gets Ctrl+C and a short
grace period before the session is killed.`,
	RunE: runSessionsClean,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsAttachCmd)
	sessionsCmd.AddCommand(sessionsCleanCmd)
	rootCmd.AddCommand(sessionsCmd)
}

var (
	sessionNameStyle = lipgloss.NewStyle().Bold(true)
	sessionDimStyle  = lipgloss.NewStyle().Faint(true)
)

func runSessionsList(cmd *cobra.Command, args []string) error {
	driver := tmux.NewDriver()
	names, err := driver.ListSessions(cmd.Context())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), sessionDimStyle.Render("no sessions running"))
		return nil
	}
	for _, name := range names {
		line := sessionNameStyle.Render(name)
		if pid := tmux.PanePID(name); pid > 0 {
			line += sessionDimStyle.Render(fmt.Sprintf("  (pid %d)", pid))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func runSessionsAttach(cmd *cobra.Command, args []string) error {
	driver := tmux.NewDriver()

	var name string
	if len(args) == 1 {
		name = args[0]
		if !driver.SessionExists(cmd.Context(), name) {
			return errors.NewSessionError("session does not exist", errors.ErrSessionNotFound).
				WithSessionName(name)
		}
	} else {
		names, err := driver.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.ErrNoSessionFound
		}
		name, err = tui.Pick(names)
		if err != nil {
			return err
		}
		if name == "" {
			return nil
		}
	}

	// Attach replaces this process's terminal interaction, so the tmux
	// client inherits our stdio directly instead of going through the
	// driver's captured runner.
	attach := tmux.AttachCommand(name)
	c := exec.CommandContext(cmd.Context(), attach[0], attach[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func runSessionsClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Close()

	driver := tmux.NewDriver()

	targets := args
	if len(targets) == 0 {
		names, err := driver.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		targets = names
	}
	if len(targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), sessionDimStyle.Render("nothing to clean"))
		return nil
	}

	for _, name := range targets {
		if !driver.SessionExists(cmd.Context(), name) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not running\n", name)
			continue
		}
		log.WithSession(name).Info("shutting down session")
		tmux.GracefulShutdown(name, tmux.DefaultGracefulStopTimeout)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: stopped\n", name)
	}
	return nil
}
