package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd *cobra.Command

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a bitrot.yaml with the current fixture and error settings",
		Long: `Create bitrot.yaml in the current directory with the fixture size and
paths, the burst and random error model and the log settings currently in
effect. Commands read it on start; flags and BITROT_* variables still win.
No seed is written, so output stays non-reproducible until one is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeConfig(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}
}

// writeConfig snapshots configKeys into a fresh file; it refuses to
// overwrite an existing one.
func writeConfig(path string) error {
	out := viper.New()
	out.SetConfigType("yaml")

	for _, key := range configKeys {
		out.Set(key, viper.Get(key))
	}

	return out.SafeWriteConfigAs(path)
}

func init() {
	initCmd = newInitCmd()
	rootCmd.AddCommand(initCmd)
}
