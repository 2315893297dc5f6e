package snapshot

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Identity names the test a snapshot belongs to.
type Identity struct {
	Suite string
	Test  string
}

// Tracker hands out call ordinals within a test. The count restarts
// whenever a different test asks.
type Tracker struct {
	mu      sync.Mutex
	current Identity
	count   int
}

// Next returns the 1-based ordinal of this snapshot call within id.
func (t *Tracker) Next(id Identity) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id != t.current {
		t.current = id
		t.count = 0
	}
	t.count++
	return t.count
}

var nameReplacer = strings.NewReplacer("(", "", ")", "", "_", "-", "/", "-")

// FileName derives the reference file name for the n-th call in a test.
// A suite given as a source path contributes only its base name.
func FileName(id Identity, n int) string {
	suite := id.Suite
	if strings.ContainsAny(suite, `/\`) {
		suite = filepath.Base(strings.ReplaceAll(suite, `\`, "/"))
		suite = strings.TrimSuffix(suite, filepath.Ext(suite))
	}
	return fmt.Sprintf("%s-%s-%d.json", nameReplacer.Replace(suite), nameReplacer.Replace(id.Test), n)
}
