package rules

import (
	"errors"
	"fmt"

	"github.com/mj1618/a11ycheck/internal/model"
)

// Defaults.
const (
	DefaultMinMeaningfulLength = 2
	DefaultMaxMeaningfulLength = 40
	DefaultMinSize             = 14.0
	DefaultMinInteractiveSize  = 44.0
)

// DefaultImageWords are words that describe the element kind rather than its content.
var DefaultImageWords = []string{"image", "picture", "graphic", "icon"}

// DefaultFilenameTokens suggest a file name was used as the label.
var DefaultFilenameTokens = []string{"_", "-", ".png", ".jpg", ".jpeg", ".pdf", ".avci", ".heic", ".heif", ".svg"}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid rule configuration")

// Config holds the thresholds rules are evaluated against.
type Config struct {
	MinMeaningfulLength int
	MaxMeaningfulLength int
	MinSize             float64
	MinInteractiveSize  float64
	Tolerance           float64
	// AllInteractiveElements applies the interactive size check to every
	// control instead of only buttons and cells.
	AllInteractiveElements bool
	ImageWords             []string
	FilenameTokens         []string
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinMeaningfulLength:    DefaultMinMeaningfulLength,
		MaxMeaningfulLength:    DefaultMaxMeaningfulLength,
		MinSize:                DefaultMinSize,
		MinInteractiveSize:     DefaultMinInteractiveSize,
		Tolerance:              model.DefaultTolerance,
		AllInteractiveElements: true,
		ImageWords:             append([]string(nil), DefaultImageWords...),
		FilenameTokens:         append([]string(nil), DefaultFilenameTokens...),
	}
}

// Validate rejects configurations no element could be meaningfully checked against.
func (c Config) Validate() error {
	switch {
	case c.MinMeaningfulLength < 0:
		return fmt.Errorf("%w: min meaningful length %d is negative", ErrInvalidConfig, c.MinMeaningfulLength)
	case c.MaxMeaningfulLength < 0:
		return fmt.Errorf("%w: max meaningful length %d is negative", ErrInvalidConfig, c.MaxMeaningfulLength)
	case c.MaxMeaningfulLength < c.MinMeaningfulLength:
		return fmt.Errorf("%w: max meaningful length %d is below min %d", ErrInvalidConfig, c.MaxMeaningfulLength, c.MinMeaningfulLength)
	case c.MinSize < 0:
		return fmt.Errorf("%w: min size %g is negative", ErrInvalidConfig, c.MinSize)
	case c.MinInteractiveSize < 0:
		return fmt.Errorf("%w: min interactive size %g is negative", ErrInvalidConfig, c.MinInteractiveSize)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %g is negative", ErrInvalidConfig, c.Tolerance)
	}
	return nil
}
