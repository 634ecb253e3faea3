package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/registry"
	"github.com/claudepane/claudepane/internal/tmux"
	"github.com/claudepane/claudepane/internal/workspace"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Ensure the project's claude session exists",
	Long: `Resolve the session name for the current project and ensure a running
session by that name, creating it if needed. Prints the session name so
the caller can attach or display it.`,
	RunE: runOpen,
}

var (
	openPath    string
	openSession string
)

func init() {
	openCmd.Flags().StringVar(&openPath, "path", ".", "file or directory identifying the project")
	openCmd.Flags().StringVar(&openSession, "session", "", "explicit session name (skips derivation)")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Close()

	ec := &registry.Context{Path: openPath, OverrideName: openSession}
	reg := registry.New(workspace.NewLocator(), registry.Config{
		Prefix:          cfg.SessionPrefix(),
		BufferPrefix:    cfg.BufferPrefix(),
		UseRootBasename: cfg.Naming.UseRootBasename,
	})

	name, err := reg.ResolveSessionName(cmd.Context(), ec)
	if err != nil {
		return err
	}

	driver := tmux.NewDriver()
	sessionCfg := tmux.SessionConfig{
		Width:        cfg.Tmux.Width,
		Height:       cfg.Tmux.Height,
		HistoryLimit: cfg.Tmux.HistoryLimit,
		Command:      cfg.Claude.Command,
	}
	if err := driver.EnsureSession(cmd.Context(), name, resolveWorkdir(cmd, ec), sessionCfg); err != nil {
		log.Error("failed to ensure session", "session", name, "error", err)
		return err
	}

	log.WithSession(name).Info("session ready")
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
