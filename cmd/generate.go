package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bitrot.dev/pkg/bitrot/internal/domain"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

// generateCmd represents the generate command.
var generateCmd *cobra.Command

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Write a file of uniformly random bytes",
		Long: `Write a new file of --size bytes drawn uniformly from [0, 255]. The path
defaults to the configured original fixture (original.bin).`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, flagBinding{sizeFlagName, sizeConfigKey}, flagBinding{seedFlagName, seedConfigKey})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := sizeFromConfig()
			if err != nil {
				return err
			}

			path := pathFromConfig(originalConfigKey)
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return newWorkflow(cmd).Generate(cmd.Context(), domain.GenerateArgs{
				Path: path,
				Size: size,
				Seed: seedFromConfig(),
			})
		},
	}

	cmd.Flags().StringP(sizeFlagName, "n", viper.GetString(sizeConfigKey), "file size in bytes (accepts units such as 4KiB)")
	configureSeedFlag(cmd)

	return cmd
}

// Built in init so flag defaults see the viper defaults from config.go.
func init() {
	generateCmd = newGenerateCmd()
	rootCmd.AddCommand(generateCmd)
}
