package snapshot

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
)

// Messages for snapshot outcomes that are not field changes.
const (
	MsgNoReference    = "No reference snapshot. Generated new snapshot"
	MsgStaleReference = "Reference snapshot is outdated. Generated new snapshot. Check for regressions before replacing as reference"
	MsgUndecodable    = "Reference snapshot could not be decoded. Generated new snapshot"
	MsgWriteFailed    = "Snapshot could not be written. Unable to create new reference"
	MsgReadFailed     = "Reference snapshot could not be read"
)

// Result is the full outcome of one snapshot call.
type Result struct {
	Filename string
	// Reference is nil when no usable reference was loaded.
	Reference *Wrapper
	Current   Wrapper
	// Written is the path of a newly written reference, if any.
	Written    string
	Violations []report.Violation
}

// Snapshotter compares screens against stored references. One Snapshotter
// should be shared by every test in a run so call ordinals line up.
type Snapshotter struct {
	store     *Store
	tracker   Tracker
	tolerance float64
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Snapshotter.
type Option func(*Snapshotter)

// WithTolerance sets the frame comparison tolerance.
func WithTolerance(tol float64) Option {
	return func(s *Snapshotter) { s.tolerance = tol }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Snapshotter) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Snapshotter) { s.logger = l }
}

// New returns a Snapshotter backed by store.
func New(store *Store, opts ...Option) *Snapshotter {
	s := &Snapshotter{
		store:     store,
		tolerance: model.DefaultTolerance,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if store.Logger == nil {
		store.Logger = s.logger
	}
	return s
}

// Snapshot compares elements against the reference for id and returns the
// violations.
func (s *Snapshotter) Snapshot(elements []model.Element, id Identity) []report.Violation {
	return s.Run(elements, id).Violations
}

// Run is Snapshot with the loaded reference and current records attached.
// I/O problems are reported as violations, never returned.
func (s *Snapshotter) Run(elements []model.Element, id Identity) Result {
	return s.RunAt(elements, id, s.tracker.Next(id))
}

// RunAt is Run for an explicit 1-based call ordinal. It leaves the call
// tracker untouched, so callers without a linear test flow (tool servers)
// can name the reference themselves.
func (s *Snapshotter) RunAt(elements []model.Element, id Identity, n int) Result {
	name := FileName(id, n)
	res := Result{
		Filename: name,
		Current:  NewWrapper(name, FromElements(elements), s.now()),
	}
	log := s.logger.With("snapshot", name)

	ref, err := s.store.Load(name)
	switch {
	case errors.Is(err, ErrNoReference):
		log.Info("no reference snapshot")
		s.regenerate(&res, MsgNoReference)
		return res
	case errors.Is(err, ErrUnreadableReference):
		log.Warn("reference snapshot does not decode", "err", err)
		s.regenerate(&res, MsgUndecodable)
		return res
	case err != nil:
		log.Error("reading reference snapshot", "err", err)
		res.Violations = append(res.Violations,
			report.New(report.SeverityFailure, Rule, MsgReadFailed).WithReason("%v", err))
		return res
	}

	if IsStale(ref.Version) {
		log.Info("reference snapshot is stale", "version", ref.Version, "current", CurrentVersion())
		s.regenerate(&res, MsgStaleReference)
		return res
	}

	res.Reference = ref
	res.Violations = Compare(ref.Snapshot, res.Current.Snapshot, s.tolerance)
	log.Debug("compared snapshot", "violations", len(res.Violations))
	return res
}

func (s *Snapshotter) regenerate(res *Result, message string) {
	path, err := s.store.Save(res.Current)
	if err != nil {
		res.Violations = append(res.Violations,
			report.New(report.SeverityFailure, Rule, MsgWriteFailed).WithReason("%v", err))
		return
	}
	res.Written = path
	res.Violations = append(res.Violations,
		report.New(report.SeverityWarning, Rule, message).WithReason("Written to %s", path))
}
