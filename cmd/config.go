package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/mj1618/a11ycheck/internal/snapshot"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "a11ycheck"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "A11YCHECK"

	rulesFlagName              = "rules"
	minLengthFlagName          = "min-length"
	maxLengthFlagName          = "max-length"
	minSizeFlagName            = "min-size"
	minInteractiveSizeFlagName = "min-interactive-size"
	toleranceFlagName          = "tolerance"
	allInteractiveFlagName     = "all-interactive"
	ignoreFlagName             = "ignore"
	referenceDirFlagName       = "reference-dir"
	outputDirFlagName          = "output-dir"

	rulesEnabledKey       = "rules.enabled"
	minLengthKey          = "rules.min_meaningful_length"
	maxLengthKey          = "rules.max_meaningful_length"
	minSizeKey            = "rules.min_size"
	minInteractiveSizeKey = "rules.min_interactive_size"
	toleranceKey          = "rules.tolerance"
	allInteractiveKey     = "rules.all_interactive_elements"
	imageWordsKey         = "rules.image_words"
	filenameTokensKey     = "rules.filename_tokens"
	ignoreIdentifiersKey  = "ignore.identifiers"
	snapshotReferenceKey  = "snapshot.reference_dir"
	snapshotOutputKey     = "snapshot.output_dir"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".a11ycheck.log"
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

	defaults := rules.DefaultConfig()
	viper.SetDefault(rulesEnabledKey, []string{rules.PresetAll})
	viper.SetDefault(minLengthKey, defaults.MinMeaningfulLength)
	viper.SetDefault(maxLengthKey, defaults.MaxMeaningfulLength)
	viper.SetDefault(minSizeKey, defaults.MinSize)
	viper.SetDefault(minInteractiveSizeKey, defaults.MinInteractiveSize)
	viper.SetDefault(toleranceKey, defaults.Tolerance)
	viper.SetDefault(allInteractiveKey, defaults.AllInteractiveElements)
	viper.SetDefault(imageWordsKey, defaults.ImageWords)
	viper.SetDefault(filenameTokensKey, defaults.FilenameTokens)
	viper.SetDefault(ignoreIdentifiersKey, []string{})
	viper.SetDefault(snapshotReferenceKey, snapshot.DefaultReferenceDir)
	viper.SetDefault(snapshotOutputKey, "")

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing default config file is not an error; --config is checked
	// strictly in loadConfigFile.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", configFileName, err)
		}
	}
}

// loadConfigFile replaces the default config file with an explicit one.
func loadConfigFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// splitList flattens config lists whose items may themselves be
// comma-separated, as they are when given on the command line.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func rulesConfigFromViper() (rules.Config, error) {
	cfg := rules.Config{
		MinMeaningfulLength:    viper.GetInt(minLengthKey),
		MaxMeaningfulLength:    viper.GetInt(maxLengthKey),
		MinSize:                viper.GetFloat64(minSizeKey),
		MinInteractiveSize:     viper.GetFloat64(minInteractiveSizeKey),
		Tolerance:              viper.GetFloat64(toleranceKey),
		AllInteractiveElements: viper.GetBool(allInteractiveKey),
		ImageWords:             viper.GetStringSlice(imageWordsKey),
		FilenameTokens:         viper.GetStringSlice(filenameTokensKey),
	}
	if err := cfg.Validate(); err != nil {
		return rules.Config{}, err
	}
	return cfg, nil
}

func ruleSpecsFromViper() []string {
	return splitList(viper.GetStringSlice(rulesEnabledKey))
}

func ruleSetFromViper() (rules.RuleSet, error) {
	return rules.ParseRuleSet(ruleSpecsFromViper())
}

func ignoreIdentifiersFromViper() []string {
	return splitList(viper.GetStringSlice(ignoreIdentifiersKey))
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
// It logs at the configured level, or Debug when verbose is set.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
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

func cmdLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}
