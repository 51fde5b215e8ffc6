package cmd

import (
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// versionCmd represents the version command.
var versionCmd *cobra.Command

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build and configuration versions",
		Long:  "Print the bitrot module version, the Go toolchain it was built with and the config file in use.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := "unknown", "unknown"
			if info, ok := debug.ReadBuildInfo(); ok {
				goVersion = info.GoVersion

				if info.Main.Version != "" {
					version = info.Main.Version
				}
			}

			config := viper.ConfigFileUsed()
			if _, err := os.Stat(config); err != nil || configLoadErr != nil {
				config = "none"
			}

			cmd.Printf("bitrot %s\n", version)
			cmd.Printf("go %s\n", goVersion)
			cmd.Printf("config %s (schema v%d)\n", config, viper.GetInt(configVersionKey))
		},
	}
}

func init() {
	versionCmd = newVersionCmd()
	rootCmd.AddCommand(versionCmd)
}
