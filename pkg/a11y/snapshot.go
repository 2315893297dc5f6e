package a11y

import (
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/snapshot"
)

// Identity names the test a snapshot belongs to.
type Identity = snapshot.Identity

// SnapshotOptions configures a Snapshotter.
type SnapshotOptions struct {
	// ReferenceDir holds reference files. Defaults to __snapshots__.
	ReferenceDir string
	// OutputDir receives newly generated references. Defaults to ReferenceDir.
	OutputDir string
	// Tolerance for frame comparison. Zero means the default.
	Tolerance float64
	// IgnoreIdentifiers are dropped before the snapshot is taken.
	IgnoreIdentifiers []string
}

// Snapshotter compares screens with stored references. Share one across a
// test binary so repeated calls in a test get distinct files.
type Snapshotter struct {
	inner  *snapshot.Snapshotter
	ignore []string
}

// NewSnapshotter returns a Snapshotter.
func NewSnapshotter(opts SnapshotOptions) *Snapshotter {
	tol := opts.Tolerance
	if tol == 0 {
		tol = model.DefaultTolerance
	}
	store := snapshot.NewStore(opts.ReferenceDir, opts.OutputDir)
	return &Snapshotter{
		inner:  snapshot.New(store, snapshot.WithTolerance(tol)),
		ignore: opts.IgnoreIdentifiers,
	}
}

// Snapshot compares elements against the reference for id. A missing or
// outdated reference is written and reported as a warning; I/O problems are
// reported as failures.
func (s *Snapshotter) Snapshot(elements []RawElement, id Identity) []Violation {
	elements = model.FilterByIdentifier(elements, s.ignore)
	return s.inner.Snapshot(model.Normalize(elements), id)
}
