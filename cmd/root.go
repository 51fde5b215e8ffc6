// Package cmd provides the root command and CLI setup for bitrot.
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bitrot.dev/pkg/bitrot/internal/adapter"
	"bitrot.dev/pkg/bitrot/internal/controller"
	"bitrot.dev/pkg/bitrot/internal/domain"
	m "bitrot.dev/pkg/bitrot/internal/model"
)

var fileAdapter adapter.FileAdapter
var reportStore adapter.ReportStore
var generator domain.Generator
var injector domain.Injector

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fileAdapter = adapter.NewLocalFileAdapter()
	reportStore = adapter.NewReportStore(fileAdapter)
	generator = domain.NewGenerator(fileAdapter)
	injector = domain.NewInjector(fileAdapter)
}

const errorModelHelp = `Error model:
  - burst errors: --bursts N runs, each with a length drawn from
    Normal(--burst-mean, --burst-std), truncated toward zero and clamped so
    it covers at least one byte and never runs past the end of the file
  - random errors: --random N single bytes picked uniformly (repeats allowed)
Every affected byte is XORed with a uniform value in [0, 256); a value of 0
leaves the byte unchanged but still counts as an error.`

const rootLongDescription = `Bitrot generates synthetic fixtures for channel error simulation: a random
binary file and a corrupted copy of it, so error correction and integrity
tools can be tested against known damage.

` + errorModelHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bitrot",
		Short: "Burst and random bit error fixture generator",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configLoadErr != nil {
				return configLoadErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path (rotated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// flagBinding pairs a command flag with its config key.
type flagBinding struct {
	flag string
	key  string
}

// bindCommandFlags binds flags at execution time. Several commands define
// flags for the same key, and viper keeps only the last binding per key.
func bindCommandFlags(cmd *cobra.Command, bindings ...flagBinding) error {
	for _, b := range bindings {
		flag := cmd.Flags().Lookup(b.flag)
		if flag == nil {
			return fmt.Errorf("flag for config key %q not found", b.key)
		}

		if err := viper.BindPFlag(b.key, flag); err != nil {
			return fmt.Errorf("bind %s: %w", b.flag, err)
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	out, _ := cmd.OutOrStdout().(*os.File)

	return domain.NewWorkflow(
		fileAdapter,
		reportStore,
		controller.NewUI(cmd, controller.IsTTY(out)),
		generator,
		injector,
	)
}

// parseSize accepts plain byte counts and humanized sizes such as "1KiB".
func parseSize(value string) (int, error) {
	n, err := humanize.ParseBytes(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", domain.ErrInvalidSize, value, err)
	}

	if n == 0 {
		return 0, fmt.Errorf("%w: %q, size must be positive", domain.ErrInvalidSize, value)
	}

	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %q is too large", domain.ErrInvalidSize, value)
	}

	return int(n), nil
}

func sizeFromConfig() (int, error) {
	return parseSize(viper.GetString(sizeConfigKey))
}

// seedFromConfig returns nil unless a seed was given by flag, env or config.
func seedFromConfig() *uint64 {
	if !viper.IsSet(seedConfigKey) {
		return nil
	}

	seed := viper.GetUint64(seedConfigKey)

	return &seed
}

func pathFromConfig(key string) m.Path {
	return m.Path(viper.GetString(key))
}
