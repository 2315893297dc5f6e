// Package snapshot serializes a screen's elements to a versioned reference
// file and compares later runs against it.
package snapshot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/a11ycheck/internal/model"
)

// Format versions. Bump RecordVersion when Record gains or changes a
// compared field; bump WrapperVersion when the file envelope changes.
const (
	WrapperVersion = 1
	RecordVersion  = 1
)

// CurrentVersion is the version string stamped on new snapshots.
func CurrentVersion() string {
	return fmt.Sprintf("%d.%d", WrapperVersion, RecordVersion)
}

// Record is the persisted projection of one element.
type Record struct {
	Label       string     `json:"label"`
	Identifier  string     `json:"identifier,omitempty"`
	Type        string     `json:"type"`
	Traits      []string   `json:"traits,omitempty"`
	Frame       model.Rect `json:"frame"`
	Enabled     bool       `json:"enabled"`
	Placeholder *string    `json:"placeholder,omitempty"`
	Value       *string    `json:"value,omitempty"`
}

// Wrapper is the on-disk snapshot file.
type Wrapper struct {
	Filename  string    `json:"filename"`
	Version   string    `json:"version"`
	Generated time.Time `json:"generated"`
	Snapshot  []Record  `json:"snapshot"`
}

// FromElement projects an element. Unknown traits are stored as absent.
func FromElement(el model.Element) Record {
	r := Record{
		Label:       el.Label,
		Identifier:  el.Identifier,
		Type:        el.Kind.String(),
		Frame:       el.Frame,
		Enabled:     el.Enabled,
		Placeholder: el.Placeholder,
		Value:       el.Value,
	}
	if el.Traits != nil && !el.Traits.IsEmpty() {
		r.Traits = el.Traits.Names()
	}
	return r
}

// FromElements projects every element that is not ignored.
func FromElements(elements []model.Element) []Record {
	records := make([]Record, 0, len(elements))
	for _, el := range elements {
		if el.ShouldIgnore() {
			continue
		}
		records = append(records, FromElement(el))
	}
	return records
}

// NewWrapper stamps records with the current version and generation time.
func NewWrapper(filename string, records []Record, generated time.Time) Wrapper {
	return Wrapper{
		Filename:  filename,
		Version:   CurrentVersion(),
		Generated: generated.UTC().Truncate(time.Second),
		Snapshot:  records,
	}
}

// IsStale reports whether a stored version predates the current format.
// Versions that cannot be parsed are stale.
func IsStale(version string) bool {
	wrapper, record, ok := parseVersion(version)
	if !ok {
		return true
	}
	if wrapper != WrapperVersion {
		return wrapper < WrapperVersion
	}
	return record < RecordVersion
}

// parseVersion reads "wrapper.record". Any further parts ("1.1.3") are
// ignored; they never affect staleness.
func parseVersion(v string) (wrapper, record int, ok bool) {
	w, rest, found := strings.Cut(strings.TrimSpace(v), ".")
	if !found {
		return 0, 0, false
	}
	r, _, _ := strings.Cut(rest, ".")
	wrapper, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, false
	}
	record, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, false
	}
	return wrapper, record, true
}
