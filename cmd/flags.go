package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

var errorFlagBindings = []flagBinding{
	{burstsFlagName, burstCountKey},
	{burstMeanFlagName, burstMeanKey},
	{burstStdFlagName, burstStdKey},
	{randomFlagName, randomCountKey},
	{seedFlagName, seedConfigKey},
	{maskFlagName, maskConfigKey},
	{reportFlagName, reportConfigKey},
}

func configureErrorFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(burstsFlagName, "b", viper.GetInt(burstCountKey), "number of burst errors")
	cmd.Flags().Float64(burstMeanFlagName, viper.GetFloat64(burstMeanKey), "mean burst length in bytes")
	cmd.Flags().Float64(burstStdFlagName, viper.GetFloat64(burstStdKey), "standard deviation of the burst length")
	cmd.Flags().IntP(randomFlagName, "r", viper.GetInt(randomCountKey), "number of random single-byte errors")
	configureSeedFlag(cmd)
	cmd.Flags().String(maskFlagName, viper.GetString(maskConfigKey), "write the XOR mask stream to this path")
	cmd.Flags().String(reportFlagName, viper.GetString(reportConfigKey), "write a YAML report of the injected errors to this path")
}

func configureSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64(seedFlagName, 0, "seed for reproducible output (default: operating system entropy)")
}

func errorSpecsFromConfig() (m.BurstSpec, m.RandomSpec) {
	burst := m.BurstSpec{
		Count:      viper.GetInt(burstCountKey),
		MeanLength: viper.GetFloat64(burstMeanKey),
		StdLength:  viper.GetFloat64(burstStdKey),
	}

	return burst, m.RandomSpec{Count: viper.GetInt(randomCountKey)}
}
