package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "bitrot"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	sizeFlagName      = "size"
	seedFlagName      = "seed"
	burstsFlagName    = "bursts"
	burstMeanFlagName = "burst-mean"
	burstStdFlagName  = "burst-std"
	randomFlagName    = "random"
	maskFlagName      = "mask"
	reportFlagName    = "report"
	originalFlagName  = "original"
	corruptFlagName   = "corrupted"
	setsFlagName      = "sets"
	parallelFlagName  = "parallel"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	sizeConfigKey      = "fixture.size"
	originalConfigKey  = "fixture.original"
	corruptedConfigKey = "fixture.corrupted"
	setsConfigKey      = "fixture.sets"
	parallelConfigKey  = "fixture.parallel"
	seedConfigKey      = "seed"
	burstCountKey      = "burst.count"
	burstMeanKey       = "burst.mean"
	burstStdKey        = "burst.std"
	randomCountKey     = "random.count"
	maskConfigKey      = "output.mask"
	reportConfigKey    = "output.report"

	// Defaults of the original fixture script: a 1020 byte file, no bursts
	// (mean 100, std 20 when enabled) and 60 random errors.
	defaultSize        = "1020"
	defaultOriginal    = "original.bin"
	defaultCorrupted   = "corrupted.bin"
	defaultSets        = 1
	defaultParallel    = 1
	defaultBurstCount  = 0
	defaultBurstMean   = 100.0
	defaultBurstStd    = 20.0
	defaultRandomCount = 60

	envPrefix = "BITROT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".bitrot.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(sizeConfigKey, defaultSize)
	viper.SetDefault(originalConfigKey, defaultOriginal)
	viper.SetDefault(corruptedConfigKey, defaultCorrupted)
	viper.SetDefault(setsConfigKey, defaultSets)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(burstCountKey, defaultBurstCount)
	viper.SetDefault(burstMeanKey, defaultBurstMean)
	viper.SetDefault(burstStdKey, defaultBurstStd)
	viper.SetDefault(randomCountKey, defaultRandomCount)
	viper.SetDefault(maskConfigKey, "")
	viper.SetDefault(reportConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configLoadErr = readConfig()
}

// configLoadErr is a bitrot.yaml that exists but could not be read. Flag
// defaults fall back to the built-in values and the error is returned once a
// command runs.
var configLoadErr error

// configKeys are the settings written by `bitrot init`. seed is left out so
// a fresh config keeps entropy-backed output.
var configKeys = []string{
	configVersionKey,
	sizeConfigKey,
	originalConfigKey,
	corruptedConfigKey,
	setsConfigKey,
	parallelConfigKey,
	burstCountKey,
	burstMeanKey,
	burstStdKey,
	randomCountKey,
	maskConfigKey,
	reportConfigKey,
	logFilenameKey,
	logLevelKey,
	logVerboseKey,
	logMaxSizeKey,
	logMaxBackupsKey,
	logMaxAgeKey,
	logCompressKey,
}

func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
