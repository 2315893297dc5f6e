package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/a11ycheck/internal/model"
)

// StdinPath selects standard input as the dump source.
const StdinPath = "-"

// ReadOptions selects the dump to read and what to drop from it.
type ReadOptions struct {
	Path              string   // File path, or "-" for stdin
	IgnoreIdentifiers []string // Drop elements with these accessibility identifiers
}

// ParseBBox parses a "x,y,w,h" string into a Rect.
func ParseBBox(s string) (model.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Rect{}, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.Rect{}, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	if vals[2] < 0 || vals[3] < 0 {
		return model.Rect{}, fmt.Errorf("invalid bbox %q: negative size", s)
	}
	return model.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
