package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/claudepane/claudepane/internal/diffscan"
	"github.com/claudepane/claudepane/internal/errors"
)

var hunkCmd = &cobra.Command{
	Use:   "hunk [diff-file]",
	Short: "Locate the hunk header covering a cursor line",
	Long: `Read diff-formatted text (from a file argument or stdin) and scan
backward from --line for the nearest hunk header. Prints the new-file
start line and line count as two integers.

Absence of a header is not an error: "0 0" is printed and the command
exits successfully, matching the historical sentinel. Callers should
branch on a zero count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHunk,
}

var hunkLine int

func init() {
	hunkCmd.Flags().IntVar(&hunkLine, "line", 0, "zero-based cursor line in the diff text")
	rootCmd.AddCommand(hunkCmd)
}

func runHunk(cmd *cobra.Command, args []string) error {
	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "cannot open diff file %q", args[0])
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "failed to read diff text")
	}

	h, ok := diffscan.LocateInText(string(data), hunkLine)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "0 0")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", h.NewStart, h.NewCount)
	return nil
}
