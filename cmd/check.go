package cmd

import (
	"fmt"
	"runtime"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [dump...]",
	Short: "Run accessibility rules against element dumps",
	Long: `Evaluate one or more element dumps against the enabled accessibility rules.

A dump is a JSON or YAML list of elements, an {app, window, elements} envelope,
or a single root element with children. Use "-" to read from stdin.

Exits non-zero when any failure-severity violation is found, unless --warn-only.

Examples:
  a11ycheck check screen.json
  a11ycheck check --rules labels,minimumSize screens/*.yaml
  desktop-cli read --format json | a11ycheck check -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Dumps to check in parallel")
	checkCmd.Flags().Bool("warn-only", false, "Report failures without a non-zero exit")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	warnOnly, _ := cmd.Flags().GetBool("warn-only")

	cfg, err := rulesConfigFromViper()
	if err != nil {
		return err
	}
	set, err := ruleSetFromViper()
	if err != nil {
		return err
	}
	runner, err := rules.NewRunner(set, cfg)
	if err != nil {
		return err
	}
	reader := &platform.FileReader{Stdin: cmd.InOrStdin()}
	ignore := ignoreIdentifiersFromViper()
	logger := cmdLogger()

	results := make([]output.CheckResult, len(args))
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range args {
		g.Go(func() error {
			raws, err := reader.ReadElements(platform.ReadOptions{Path: path, IgnoreIdentifiers: ignore})
			if err != nil {
				logger.Warn("read dump", "path", path, "error", err)
				results[i] = output.CheckResult{Source: path, Rules: set.Strings(), Error: err.Error(), Violations: []output.ViolationView{}}
				return nil
			}
			elements := model.Normalize(raws)
			vs := runner.Run(elements)
			logger.Debug("check", "path", path, "elements", len(elements), "violations", len(vs))
			results[i] = output.NewCheckResult(path, len(elements), set.Strings(), vs)
			return nil
		})
	}
	_ = g.Wait()

	rep := output.NewCheckReport(results)
	var res interface{} = rep
	if len(results) == 1 {
		res = results[0]
	}
	if err := printResult(cmd, res); err != nil {
		return err
	}
	return checkExit(rep, warnOnly)
}

func checkExit(rep output.CheckReport, warnOnly bool) error {
	for _, r := range rep.Results {
		if r.Error != "" {
			return fmt.Errorf("%s: %s", r.Source, r.Error)
		}
	}
	if rep.Failures > 0 && !warnOnly {
		return ErrFailures
	}
	return nil
}

// exitFor maps a violation list to the command's exit error.
func exitFor(vs []report.Violation, warnOnly bool) error {
	if report.HasFailures(vs) && !warnOnly {
		return ErrFailures
	}
	return nil
}
