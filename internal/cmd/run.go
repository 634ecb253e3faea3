package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/oneshot"
	"github.com/claudepane/claudepane/internal/workspace"
)

var runCmd = &cobra.Command{
	Use:   "run [prompt...]",
	Short: "Run a one-shot claude invocation in the project root",
	Long: `Execute a non-interactive claude invocation in the workspace root and
stream its output to stdout. The prompt is taken from the arguments, or
from stdin when no arguments are given.

Unlike send, this does not touch the long-lived session.`,
	RunE: runRun,
}

var runPath string

func init() {
	runCmd.Flags().StringVar(&runPath, "path", ".", "file or directory identifying the project")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	prompt, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	prompt = strings.TrimSpace(prompt)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Close()

	root, err := workspace.NewLocator().LocateRoot(cmd.Context(), runPath)
	if err != nil {
		return err
	}

	runner := oneshot.NewRunner(log)
	_, err = runner.Run(cmd.Context(), oneshot.Request{
		WorkspaceRoot: root,
		Command:       cfg.Claude.Command,
		Flags:         cfg.Claude.OneshotFlags,
		Prompt:        prompt,
	}, cmd.OutOrStdout())
	return err
}
