package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestSnapshot_GeneratesThenMatches(t *testing.T) {
	dir := t.TempDir()
	refDir := filepath.Join(dir, "refs")
	screen := writeFile(t, dir, "screen.json", cleanScreen)

	out, err := execute(t, "snapshot", screen, "--suite", "Settings", "--test", "testLayout", "--reference-dir", refDir)
	require.NoError(t, err, out)

	var first output.SnapshotResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &first))
	assert.Equal(t, "Settings-testLayout-1.json", first.Filename)
	assert.Equal(t, 1, first.Warnings)
	assert.FileExists(t, filepath.Join(refDir, first.Filename))

	out, err = execute(t, "snapshot", screen, "--suite", "Settings", "--test", "testLayout", "--reference-dir", refDir)
	require.NoError(t, err, out)

	var second output.SnapshotResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &second))
	assert.Empty(t, second.Violations)
}

func TestSnapshot_ChangedScreenFailsWithDiff(t *testing.T) {
	dir := t.TempDir()
	refDir := filepath.Join(dir, "refs")
	screen := writeFile(t, dir, "screen.json", cleanScreen)

	_, err := execute(t, "snapshot", screen, "--suite", "Settings", "--test", "testLayout", "--reference-dir", refDir)
	require.NoError(t, err)

	changed := writeFile(t, dir, "changed.json", strings.Replace(cleanScreen, `"Done"`, `"Save"`, 1))
	out, err := execute(t, "snapshot", changed, "--suite", "Settings", "--test", "testLayout", "--reference-dir", refDir, "--diff")
	assert.ErrorIs(t, err, ErrFailures)

	var res output.SnapshotResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res.Violations, 1)
	assert.Equal(t, "Reference: Done. Snapshot: Save", res.Violations[0].Reason)
	assert.Contains(t, res.Diff, "--- reference")
}

func TestSnapshot_SeveralDumpsUseOrdinals(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	screen := writeFile(t, dir, "screen.json", cleanScreen)

	out, err := execute(t, "snapshot", screen, screen,
		"--suite", "Checkout", "--test", "testPay",
		"--reference-dir", filepath.Join(dir, "refs"), "--output-dir", outDir)
	require.NoError(t, err, out)

	var results []output.SnapshotResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Checkout-testPay-1.json", results[0].Filename)
	assert.Equal(t, "Checkout-testPay-2.json", results[1].Filename)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSnapshot_RequiresSuiteAndTest(t *testing.T) {
	screen := writeFile(t, t.TempDir(), "screen.json", cleanScreen)

	_, err := execute(t, "snapshot", screen, "--suite", "Settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test")
}
