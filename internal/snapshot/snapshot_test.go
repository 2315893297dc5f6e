package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func screen() []model.RawElement {
	placeholder := "Search"
	return []model.RawElement{
		{Type: "window", Children: []model.RawElement{
			{Type: "staticText", Label: "Settings", Traits: []string{"header", "staticText"}, Frame: model.Rect{X: 16, Y: 60, Width: 120, Height: 24}},
			{Type: "searchField", Placeholder: &placeholder, Frame: model.Rect{X: 16, Y: 100, Width: 300, Height: 36}},
			{Type: "button", Label: "Done", Traits: []string{"button"}, Frame: model.Rect{X: 300, Y: 20, Width: 60, Height: 44}},
		}},
	}
}

func newSnapshotter(t *testing.T, store *Store) *Snapshotter {
	t.Helper()
	return New(store, WithClock(func() time.Time { return fixedNow }))
}

func testID() Identity {
	return Identity{Suite: "Tests/SettingsTests.swift", Test: "testSettings()"}
}

func TestSnapshot_MissingReferenceIsWritten(t *testing.T) {
	dir := t.TempDir()
	s := newSnapshotter(t, NewStore(dir, ""))

	res := s.Run(model.Normalize(screen()), testID())
	require.Len(t, res.Violations, 1)
	assert.Equal(t, report.SeverityWarning, res.Violations[0].Severity)
	assert.Equal(t, MsgNoReference, res.Violations[0].Message)
	assert.Nil(t, res.Reference)

	assert.Equal(t, filepath.Join(dir, "SettingsTests-testSettings-1.json"), res.Written)
	assert.FileExists(t, res.Written)
	assert.Len(t, res.Current.Snapshot, 3, "window is ignored")
	assert.Equal(t, "1.1", res.Current.Version)
	assert.True(t, res.Current.Generated.Equal(fixedNow))
}

func TestSnapshot_RoundTripHasNoViolations(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "")

	first := newSnapshotter(t, store).Snapshot(model.Normalize(screen()), testID())
	require.Len(t, first, 1)

	second := newSnapshotter(t, store).Run(model.Normalize(screen()), testID())
	assert.Empty(t, second.Violations)
	require.NotNil(t, second.Reference)
	assert.Equal(t, second.Reference.Snapshot, second.Current.Snapshot)
	assert.Empty(t, second.Written)
}

func TestSnapshot_OrdinalsWithinATest(t *testing.T) {
	dir := t.TempDir()
	s := newSnapshotter(t, NewStore(dir, ""))
	els := model.Normalize(screen())

	a := s.Run(els, testID())
	b := s.Run(els, testID())
	c := s.Run(els, Identity{Suite: "SettingsTests", Test: "testOther"})
	d := s.Run(els, testID())

	assert.Equal(t, "SettingsTests-testSettings-1.json", a.Filename)
	assert.Equal(t, "SettingsTests-testSettings-2.json", b.Filename)
	assert.Equal(t, "SettingsTests-testOther-1.json", c.Filename)
	assert.Equal(t, "SettingsTests-testSettings-1.json", d.Filename, "counter resets when the test changes")
	assert.Empty(t, d.Violations)
}

func TestSnapshot_RunAtLeavesOrdinalsAlone(t *testing.T) {
	dir := t.TempDir()
	s := newSnapshotter(t, NewStore(dir, ""))
	els := model.Normalize(screen())

	first := s.RunAt(els, testID(), 1)
	again := s.RunAt(els, testID(), 1)
	third := s.RunAt(els, testID(), 3)

	assert.NotEmpty(t, first.Written)
	assert.Equal(t, first.Filename, again.Filename)
	assert.Empty(t, again.Violations)
	assert.Empty(t, again.Written)
	assert.Equal(t, "SettingsTests-testSettings-3.json", third.Filename)

	assert.Equal(t, "SettingsTests-testSettings-1.json", s.Run(els, testID()).Filename)
}

func TestSnapshot_StaleReferenceIsRegenerated(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "")
	name := FileName(testID(), 1)

	old := NewWrapper(name, []Record{{Label: "Completely different", Type: "button"}}, fixedNow)
	old.Version = "0.9"
	_, err := store.Save(old)
	require.NoError(t, err)

	res := newSnapshotter(t, store).Run(model.Normalize(screen()), testID())
	require.Len(t, res.Violations, 1, "no field comparison against a stale schema")
	assert.Equal(t, MsgStaleReference, res.Violations[0].Message)
	assert.Equal(t, report.SeverityWarning, res.Violations[0].Severity)

	reloaded, err := store.Load(name)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion(), reloaded.Version)
	assert.Len(t, reloaded.Snapshot, 3)
}

func TestSnapshot_ChangedScreen(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "")
	newSnapshotter(t, store).Snapshot(model.Normalize(screen()), testID())

	changed := screen()
	kids := changed[0].Children
	kids[2].Label = "Close"
	kids[2].Frame.Width += 0.05
	kids[2].Frame.Height += 1
	changed[0].Children = append(kids, model.RawElement{Type: "link", Label: "Help"})

	vs := newSnapshotter(t, store).Snapshot(model.Normalize(changed), testID())
	require.Len(t, vs, 3)
	assert.Equal(t, "Snapshots contain a different number of items. This screen has changed", vs[0].Message)
	assert.Equal(t, "Reference: 3. Snapshot: 4", vs[0].Reason)
	assert.Equal(t, "Label does not match reference snapshot", vs[1].Message)
	assert.Equal(t, "Reference: Done. Snapshot: Close", vs[1].Reason)
	assert.Equal(t, "Close", vs[1].Subject)
	assert.Equal(t, "Frame height does not match reference snapshot", vs[2].Message)
	assert.Equal(t, "Reference: 44. Snapshot: 45", vs[2].Reason)
	for _, v := range vs {
		assert.Equal(t, report.SeverityFailure, v.Severity)
	}
}

func TestSnapshot_UndecodableReferenceIsRegenerated(t *testing.T) {
	dir := t.TempDir()
	name := FileName(testID(), 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{not json"), 0644))

	vs := newSnapshotter(t, NewStore(dir, "")).Snapshot(model.Normalize(screen()), testID())
	require.Len(t, vs, 1)
	assert.Equal(t, MsgUndecodable, vs[0].Message)
	assert.Equal(t, report.SeverityWarning, vs[0].Severity)
}

func TestSnapshot_UnreadableReferenceIsAFailure(t *testing.T) {
	dir := t.TempDir()
	name := FileName(testID(), 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))

	res := newSnapshotter(t, NewStore(dir, "")).Run(model.Normalize(screen()), testID())
	require.Len(t, res.Violations, 1)
	assert.Equal(t, MsgReadFailed, res.Violations[0].Message)
	assert.Equal(t, report.SeverityFailure, res.Violations[0].Severity)
	assert.Empty(t, res.Written)
	assert.DirExists(t, filepath.Join(dir, name), "nothing is overwritten")
}

func TestSnapshot_WriteFailureIsAFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	store := NewStore(dir, filepath.Join(blocker, "out"))
	vs := newSnapshotter(t, store).Snapshot(model.Normalize(screen()), testID())
	require.Len(t, vs, 1)
	assert.Equal(t, MsgWriteFailed, vs[0].Message)
	assert.Equal(t, report.SeverityFailure, vs[0].Severity)
	assert.True(t, strings.HasPrefix(vs[0].Reason, "create snapshot dir"))
}

func TestSnapshot_OutputDir(t *testing.T) {
	refs := t.TempDir()
	out := filepath.Join(t.TempDir(), "new")

	res := newSnapshotter(t, NewStore(refs, out)).Run(model.Normalize(screen()), testID())
	assert.Equal(t, filepath.Join(out, "SettingsTests-testSettings-1.json"), res.Written)
	assert.NoFileExists(t, filepath.Join(refs, "SettingsTests-testSettings-1.json"))
}
