// Package platform is the boundary to whatever discovers accessibility
// elements on screen. The checker never walks a live UI itself; it reads
// element dumps produced by a host automation layer.
package platform

import (
	"errors"

	"github.com/mj1618/a11ycheck/internal/model"
)

// Reader loads the raw element tree for one screen.
type Reader interface {
	// ReadElements returns the elements in document order. Nested dumps
	// keep their Children; callers flatten as needed.
	ReadElements(opts ReadOptions) ([]model.RawElement, error)
}

// ErrUnsupportedFormat is returned for input that is neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported element dump format")

// ErrEmptyDump is returned when the input holds no document at all.
var ErrEmptyDump = errors.New("element dump is empty")
