package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/compose"
)

var composeCmd = &cobra.Command{
	Use:   "compose [message...]",
	Short: "Print a context-prefixed message without sending it",
	Long: `Compose the exact text that send would deliver, file and line context
included, and print it to stdout. Useful for wiring up and debugging
editor plugins.`,
	RunE: runCompose,
}

var (
	composeFile  string
	composeLine  int
	composeCount int
)

func init() {
	composeCmd.Flags().StringVar(&composeFile, "file", "", "file name to include as context")
	composeCmd.Flags().IntVar(&composeLine, "line", 0, "line number to include as context")
	composeCmd.Flags().IntVar(&composeCount, "count", 0, "line count to include as context (0 omits it)")
	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var loc *compose.Location
	if composeFile != "" {
		loc = &compose.Location{FileName: composeFile, Line: composeLine, LineCount: composeCount}
	}
	fmt.Fprint(cmd.OutOrStdout(), compose.Message(loc, message))
	return nil
}
