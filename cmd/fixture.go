package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bitrot.dev/pkg/bitrot/internal/domain"
)

// fixtureCmd represents the fixture command.
var fixtureCmd *cobra.Command

var fixtureFlagBindings = append([]flagBinding{
	{sizeFlagName, sizeConfigKey},
	{originalFlagName, originalConfigKey},
	{corruptFlagName, corruptedConfigKey},
	{setsFlagName, setsConfigKey},
	{parallelFlagName, parallelConfigKey},
}, errorFlagBindings...)

func newFixtureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Generate an original file and its corrupted copy",
		Long: `Generate a random original file and derive a corrupted copy from it.
With --sets N, N numbered pairs are written (original-000.bin, ...), each
from its own random stream; with --seed, set i uses seed+i.

` + errorModelHelp,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindCommandFlags(cmd, fixtureFlagBindings...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := sizeFromConfig()
			if err != nil {
				return err
			}

			burst, random := errorSpecsFromConfig()

			return newWorkflow(cmd).Fixture(cmd.Context(), domain.FixtureArgs{
				Original:  pathFromConfig(originalConfigKey),
				Corrupted: pathFromConfig(corruptedConfigKey),
				Size:      size,
				Burst:     burst,
				Random:    random,
				Seed:      seedFromConfig(),
				Mask:      pathFromConfig(maskConfigKey),
				Report:    pathFromConfig(reportConfigKey),
				Sets:      viper.GetInt(setsConfigKey),
				Parallel:  viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureFixtureFlags(cmd)

	return cmd
}

func init() {
	fixtureCmd = newFixtureCmd()
	rootCmd.AddCommand(fixtureCmd)
}

func configureFixtureFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(sizeFlagName, "n", viper.GetString(sizeConfigKey), "file size in bytes (accepts units such as 4KiB)")
	cmd.Flags().String(originalFlagName, viper.GetString(originalConfigKey), "path of the original file")
	cmd.Flags().String(corruptFlagName, viper.GetString(corruptedConfigKey), "path of the corrupted file")
	cmd.Flags().Int(setsFlagName, viper.GetInt(setsConfigKey), "number of fixture pairs to produce")
	cmd.Flags().IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of pairs produced concurrently (0 = unbounded)")
	configureErrorFlags(cmd)
}
