package cmd

import (
	"github.com/spf13/cobra"

	"bitrot.dev/pkg/bitrot/internal/domain"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// diffCmd represents the diff command.
var diffCmd *cobra.Command

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "List the byte ranges where two files differ",
		Long:  "Compare two files of equal length and print each contiguous range of differing bytes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Diff(cmd.Context(), domain.DiffArgs{
				A: m.Path(args[0]),
				B: m.Path(args[1]),
			})

			return err
		},
	}
}

func init() {
	diffCmd = newDiffCmd()
	rootCmd.AddCommand(diffCmd)
}
