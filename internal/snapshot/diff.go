package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// RenderDiff returns a unified diff of reference and current records, one
// JSON line per record. It is empty when both are identical.
func RenderDiff(reference, current []Record, context int) (string, error) {
	a, err := recordLines(reference)
	if err != nil {
		return "", err
	}
	b, err := recordLines(current)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "reference",
		ToFile:   "snapshot",
		Context:  context,
	})
}

func recordLines(records []Record) ([]string, error) {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal record: %w", err)
		}
		lines = append(lines, string(data)+"\n")
	}
	return lines, nil
}
