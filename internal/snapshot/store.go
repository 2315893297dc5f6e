package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultReferenceDir is used when no reference directory is configured.
const DefaultReferenceDir = "__snapshots__"

var (
	// ErrNoReference means no reference file exists yet.
	ErrNoReference = errors.New("no reference snapshot")
	// ErrUnreadableReference means the reference exists but does not decode.
	ErrUnreadableReference = errors.New("reference snapshot could not be decoded")
)

// Store reads references from ReferenceDir and writes new ones to
// OutputDir, or ReferenceDir when OutputDir is empty.
type Store struct {
	ReferenceDir string
	OutputDir    string
	Logger       *slog.Logger
}

// NewStore returns a store rooted at referenceDir.
func NewStore(referenceDir, outputDir string) *Store {
	if referenceDir == "" {
		referenceDir = DefaultReferenceDir
	}
	return &Store{ReferenceDir: referenceDir, OutputDir: outputDir}
}

func (s *Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Store) outputDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}
	return s.ReferenceDir
}

// ReferencePath is where the reference named name is read from.
func (s *Store) ReferencePath(name string) string {
	return filepath.Join(s.ReferenceDir, name)
}

// Load reads and decodes a reference.
func (s *Store) Load(name string) (*Wrapper, error) {
	path := s.ReferencePath(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoReference, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read reference %s: %w", path, err)
	}
	var w Wrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableReference, path, err)
	}
	s.logger().Debug("loaded reference snapshot", "path", path, "version", w.Version, "records", len(w.Snapshot))
	return &w, nil
}

// Save writes w under its own file name and returns the path written.
func (s *Store) Save(w Wrapper) (string, error) {
	dir := s.outputDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	path := filepath.Join(dir, w.Filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	s.logger().Info("wrote snapshot", "path", path, "records", len(w.Snapshot))
	return path, nil
}
