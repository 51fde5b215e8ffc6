package cmd

import (
	"github.com/spf13/cobra"

	"bitrot.dev/pkg/bitrot/internal/domain"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// injectCmd represents the inject command.
var injectCmd *cobra.Command

func newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inject <source> <dest>",
		Aliases: []string{"corrupt"},
		Short:   "Write a corrupted copy of a file",
		Long: `Copy <source> to <dest> and corrupt <dest> with burst and random errors.
The source file is never modified and <dest> keeps its length.

` + errorModelHelp,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, errorFlagBindings...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			burst, random := errorSpecsFromConfig()

			return newWorkflow(cmd).Corrupt(cmd.Context(), domain.CorruptArgs{
				Source: m.Path(args[0]),
				Dest:   m.Path(args[1]),
				Burst:  burst,
				Random: random,
				Seed:   seedFromConfig(),
				Mask:   pathFromConfig(maskConfigKey),
				Report: pathFromConfig(reportConfigKey),
			})
		},
	}

	configureErrorFlags(cmd)

	return cmd
}

func init() {
	injectCmd = newInjectCmd()
	rootCmd.AddCommand(injectCmd)
}
