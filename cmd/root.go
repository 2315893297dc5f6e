// Package cmd provides the a11ycheck command line.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/mj1618/a11ycheck/internal/snapshot"
	"github.com/mj1618/a11ycheck/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrFailures is returned when a check or snapshot reports failure-severity
// violations, so the process exits non-zero.
var ErrFailures = errors.New("accessibility failures found")

var rootCmd = &cobra.Command{
	Use:   "a11ycheck",
	Short: "Check accessibility element dumps against accessibility rules",
	Long: `a11ycheck evaluates dumps of on-screen accessibility elements (JSON or YAML,
as written by UI automation tools) against a catalogue of accessibility rules,
and compares screens against stored reference snapshots.

Configuration is read from ./a11ycheck.yaml (or --config) and A11YCHECK_*
environment variables; flags take precedence.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if path, _ := rootCmd.PersistentFlags().GetString("config"); path != "" {
			if err := loadConfigFile(path); err != nil {
				return err
			}
		}

		logFile, _ := rootCmd.PersistentFlags().GetString("log-file")
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		configureLogger(logFile, verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	defaults := rules.DefaultConfig()
	flags.String("format", "", "Output format: yaml, json, text, auto (text on a terminal, yaml when piped)")
	flags.Bool("pretty", false, "Indent JSON output")
	flags.String("config", "", "Config file (default ./"+configFileName+")")
	flags.BoolP("verbose", "v", false, "Log at debug level")
	flags.String("log-file", "", "Log file (default "+defaultLogFilename+")")

	flags.String(rulesFlagName, "", "Rules or presets to run, comma-separated (all, images, interactive, labels, or rule names)")
	bindFlagToConfig(flags.Lookup(rulesFlagName), rulesEnabledKey)
	flags.Int(minLengthFlagName, defaults.MinMeaningfulLength, "Labels this long or shorter are not meaningful")
	bindFlagToConfig(flags.Lookup(minLengthFlagName), minLengthKey)
	flags.Int(maxLengthFlagName, defaults.MaxMeaningfulLength, "Labels longer than this are too long")
	bindFlagToConfig(flags.Lookup(maxLengthFlagName), maxLengthKey)
	flags.Float64(minSizeFlagName, defaults.MinSize, "Minimum element width and height")
	bindFlagToConfig(flags.Lookup(minSizeFlagName), minSizeKey)
	flags.Float64(minInteractiveSizeFlagName, defaults.MinInteractiveSize, "Minimum control width and height")
	bindFlagToConfig(flags.Lookup(minInteractiveSizeFlagName), minInteractiveSizeKey)
	flags.Float64(toleranceFlagName, defaults.Tolerance, "Slack allowed when comparing sizes and frames")
	bindFlagToConfig(flags.Lookup(toleranceFlagName), toleranceKey)
	flags.Bool(allInteractiveFlagName, defaults.AllInteractiveElements, "Apply the interactive size to every control, not only buttons and cells")
	bindFlagToConfig(flags.Lookup(allInteractiveFlagName), allInteractiveKey)
	flags.String(ignoreFlagName, "", "Accessibility identifiers to skip, comma-separated")
	bindFlagToConfig(flags.Lookup(ignoreFlagName), ignoreIdentifiersKey)
	flags.String(referenceDirFlagName, snapshot.DefaultReferenceDir, "Directory holding reference snapshots")
	bindFlagToConfig(flags.Lookup(referenceDirFlagName), snapshotReferenceKey)
	flags.String(outputDirFlagName, "", "Directory for newly generated snapshots (default: reference dir)")
	bindFlagToConfig(flags.Lookup(outputDirFlagName), snapshotOutputKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// printResult writes v to the command's output in the selected format.
func printResult(cmd *cobra.Command, v interface{}) error {
	return output.Fprint(cmd.OutOrStdout(), output.OutputFormat, v)
}
