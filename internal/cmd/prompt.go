package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/registry"
	"github.com/claudepane/claudepane/internal/workspace"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Name a new prompt buffer linked to the project's session",
	Long: `Derive the name for a new prompt buffer and the session it should be
bound to. The editor creates the (empty) buffer under the first name and
binds it to the second, so text written there is sent to that session.

Output is two lines: the buffer name, then the session name.`,
	RunE: runPrompt,
}

var (
	promptPath    string
	promptSession string
)

func init() {
	promptCmd.Flags().StringVar(&promptPath, "path", ".", "file or directory identifying the project")
	promptCmd.Flags().StringVar(&promptSession, "session", "", "explicit session name (skips derivation)")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ec := &registry.Context{Path: promptPath, OverrideName: promptSession}
	reg := registry.New(workspace.NewLocator(), registry.Config{
		Prefix:          cfg.SessionPrefix(),
		BufferPrefix:    cfg.BufferPrefix(),
		UseRootBasename: cfg.Naming.UseRootBasename,
	})

	linked, err := reg.NewLinkedBuffer(cmd.Context(), ec)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), linked.BufferName)
	fmt.Fprintln(cmd.OutOrStdout(), linked.SessionName)
	return nil
}
