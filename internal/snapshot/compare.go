package snapshot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
)

// Rule is the rule name carried by snapshot violations.
const Rule = "snapshot"

// Change is one field that differs between a reference record and the
// current record at the same position.
type Change struct {
	Index     int
	Field     string
	Label     string
	Type      string
	Reference string
	Current   string
}

// Subject names the changed element: its current label, or its 1-based
// position and type when it has no label.
func (c Change) Subject() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("#%d %s", c.Index+1, c.Type)
}

// Violation converts the change to a failure keyed by Subject.
func (c Change) Violation() report.Violation {
	return report.New(report.SeverityFailure, Rule, c.Field+" does not match reference snapshot").
		WithReason("Reference: %s. Snapshot: %s", c.Reference, c.Current).
		WithSubject(c.Subject())
}

// Diff lists field changes for every position present in both slices.
func Diff(reference, current []Record, tolerance float64) []Change {
	n := min(len(reference), len(current))
	var changes []Change
	for i := 0; i < n; i++ {
		changes = append(changes, diffRecord(i, reference[i], current[i], tolerance)...)
	}
	return changes
}

func diffRecord(i int, ref, cur Record, tolerance float64) []Change {
	var out []Change
	add := func(field, a, b string) {
		out = append(out, Change{Index: i, Field: field, Label: cur.Label, Type: cur.Type, Reference: a, Current: b})
	}

	if ref.Label != cur.Label {
		add("Label", ref.Label, cur.Label)
	}
	if ref.Type != cur.Type {
		add("Type", ref.Type, cur.Type)
	}
	if !sameTraits(ref.Traits, cur.Traits) {
		add("Traits", traitList(ref.Traits), traitList(cur.Traits))
	}
	if ref.Enabled != cur.Enabled {
		add("Enabled", strconv.FormatBool(ref.Enabled), strconv.FormatBool(cur.Enabled))
	}
	for _, f := range frameFields {
		a, b := f.get(ref.Frame), f.get(cur.Frame)
		if !model.WithinTolerance(a, b, tolerance) {
			add(f.name, formatFloat(a), formatFloat(b))
		}
	}
	return out
}

var frameFields = []struct {
	name string
	get  func(model.Rect) float64
}{
	{"Frame x", func(r model.Rect) float64 { return r.X }},
	{"Frame y", func(r model.Rect) float64 { return r.Y }},
	{"Frame width", func(r model.Rect) float64 { return r.Width }},
	{"Frame height", func(r model.Rect) float64 { return r.Height }},
}

func sameTraits(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	other := make(map[string]bool, len(b))
	for _, t := range b {
		if !set[t] {
			return false
		}
		other[t] = true
	}
	return len(set) == len(other)
}

func traitList(traits []string) string {
	if len(traits) == 0 {
		return "None"
	}
	sorted := append([]string(nil), traits...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Compare reports a changed element count first, then one failure per
// differing field.
func Compare(reference, current []Record, tolerance float64) []report.Violation {
	var out []report.Violation
	if len(reference) != len(current) {
		out = append(out, report.New(report.SeverityFailure, Rule,
			"Snapshots contain a different number of items. This screen has changed").
			WithReason("Reference: %d. Snapshot: %d", len(reference), len(current)))
	}
	for _, c := range Diff(reference, current, tolerance) {
		out = append(out, c.Violation())
	}
	return out
}

// String formats the change on one line.
func (c Change) String() string {
	return fmt.Sprintf("#%d %s: %q -> %q", c.Index, c.Field, c.Reference, c.Current)
}
