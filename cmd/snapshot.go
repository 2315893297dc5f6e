package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/mj1618/a11ycheck/internal/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <dump>...",
	Short: "Compare screens against reference snapshots",
	Long: `Compare each dump against the stored reference snapshot for a suite and test.

Dumps are taken as consecutive calls within one test: the first compares against
Suite-Test-1.json, the second against Suite-Test-2.json, and so on. A missing,
outdated or undecodable reference is regenerated and reported as a warning.

Examples:
  a11ycheck snapshot login.json --suite LoginTests --test testSignIn
  a11ycheck snapshot step1.json step2.json --suite Checkout --test testPay --diff`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("suite", "", "Test suite name (a file path keeps only its base name)")
	snapshotCmd.Flags().String("test", "", "Test name")
	snapshotCmd.Flags().Bool("diff", false, "Include a unified diff against the reference")
	snapshotCmd.Flags().Bool("warn-only", false, "Report failures without a non-zero exit")
	_ = snapshotCmd.MarkFlagRequired("suite")
	_ = snapshotCmd.MarkFlagRequired("test")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	suite, _ := cmd.Flags().GetString("suite")
	test, _ := cmd.Flags().GetString("test")
	withDiff, _ := cmd.Flags().GetBool("diff")
	warnOnly, _ := cmd.Flags().GetBool("warn-only")

	cfg, err := rulesConfigFromViper()
	if err != nil {
		return err
	}
	logger := cmdLogger()
	store := snapshot.NewStore(viper.GetString(snapshotReferenceKey), viper.GetString(snapshotOutputKey))
	store.Logger = logger
	snap := snapshot.New(store,
		snapshot.WithTolerance(cfg.Tolerance),
		snapshot.WithLogger(logger))

	reader := &platform.FileReader{Stdin: cmd.InOrStdin()}
	ignore := ignoreIdentifiersFromViper()
	id := snapshot.Identity{Suite: suite, Test: test}

	var (
		results []output.SnapshotResult
		all     []report.Violation
	)
	for _, path := range args {
		raws, err := reader.ReadElements(platform.ReadOptions{Path: path, IgnoreIdentifiers: ignore})
		if err != nil {
			return err
		}
		res := snap.Run(model.Normalize(raws), id)
		result := output.NewSnapshotResult(path, res)
		if withDiff && res.Reference != nil {
			diff, err := snapshot.RenderDiff(res.Reference.Snapshot, res.Current.Snapshot, 3)
			if err != nil {
				return fmt.Errorf("render diff for %s: %w", filepath.Base(path), err)
			}
			result.Diff = diff
		}
		results = append(results, result)
		all = append(all, res.Violations...)
	}

	var v interface{} = results
	if len(results) == 1 {
		v = results[0]
	}
	if err := printResult(cmd, v); err != nil {
		return err
	}
	return exitFor(all, warnOnly)
}
