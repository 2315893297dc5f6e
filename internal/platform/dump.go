package platform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/a11ycheck/internal/model"
	"gopkg.in/yaml.v3"
)

// dumpNode accepts both the native element schema and the compact schema
// written by desktop accessibility readers (single-letter keys, integer
// bounds, role codes).
type dumpNode struct {
	Label       string     `json:"label"       yaml:"label"`
	Identifier  string     `json:"identifier"  yaml:"identifier"`
	Type        string     `json:"type"        yaml:"type"`
	Frame       model.Rect `json:"frame"       yaml:"frame"`
	Traits      []string   `json:"traits"      yaml:"traits"`
	Enabled     *bool      `json:"enabled"     yaml:"enabled"`
	Placeholder *string    `json:"placeholder" yaml:"placeholder"`
	Value       *string    `json:"value"       yaml:"value"`
	Children    []dumpNode `json:"children"    yaml:"children"`

	Role           string     `json:"r" yaml:"r"`
	Title          string     `json:"t" yaml:"t"`
	Description    string     `json:"d" yaml:"d"`
	CompactValue   string     `json:"v" yaml:"v"`
	Bounds         []float64  `json:"b" yaml:"b"`
	CompactEnabled *bool      `json:"e" yaml:"e"`
	CompactKids    []dumpNode `json:"c" yaml:"c"`
}

type envelope struct {
	App      string     `json:"app"      yaml:"app"`
	Window   string     `json:"window"   yaml:"window"`
	Elements []dumpNode `json:"elements" yaml:"elements"`
}

func (n dumpNode) raw() model.RawElement {
	r := model.RawElement{
		Label:       n.Label,
		Identifier:  n.Identifier,
		Type:        n.Type,
		Frame:       n.Frame,
		Traits:      n.Traits,
		Enabled:     n.Enabled,
		Placeholder: n.Placeholder,
		Value:       n.Value,
	}
	if r.Type == "" {
		r.Type = n.Role
	}
	if r.Label == "" {
		r.Label = n.Title
	}
	if r.Label == "" {
		r.Label = n.Description
	}
	if r.Value == nil && n.CompactValue != "" {
		v := n.CompactValue
		r.Value = &v
	}
	if r.Enabled == nil {
		r.Enabled = n.CompactEnabled
	}
	if len(n.Bounds) == 4 {
		r.Frame = model.Rect{X: n.Bounds[0], Y: n.Bounds[1], Width: n.Bounds[2], Height: n.Bounds[3]}
	}
	kids := n.Children
	if len(kids) == 0 {
		kids = n.CompactKids
	}
	for _, c := range kids {
		r.Children = append(r.Children, c.raw())
	}
	return r
}

func toRaw(nodes []dumpNode) []model.RawElement {
	out := make([]model.RawElement, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.raw())
	}
	return out
}

// FileReader reads element dumps from files or stdin.
type FileReader struct {
	Stdin io.Reader
}

// NewFileReader returns a reader whose "-" path reads os.Stdin.
func NewFileReader() *FileReader {
	return &FileReader{Stdin: os.Stdin}
}

// ReadElements implements Reader.
func (r *FileReader) ReadElements(opts ReadOptions) ([]model.RawElement, error) {
	var (
		data []byte
		err  error
	)
	if opts.Path == StdinPath {
		data, err = io.ReadAll(r.Stdin)
	} else {
		data, err = os.ReadFile(opts.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read element dump: %w", err)
	}
	elements, err := Decode(data, formatHint(opts.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayPath(opts.Path), err)
	}
	return model.FilterByIdentifier(elements, opts.IgnoreIdentifiers), nil
}

func displayPath(p string) string {
	if p == StdinPath {
		return "stdin"
	}
	return p
}

func formatHint(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

// Decode parses a dump. The top level may be a list of elements, a single
// root element, or an object with an "elements" list. format is "json",
// "yaml", or empty to sniff the content.
func Decode(data []byte, format string) ([]model.RawElement, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDump
	}
	if format == "" {
		format = "yaml"
		if trimmed[0] == '{' || trimmed[0] == '[' {
			format = "json"
		}
	}
	switch format {
	case "json":
		return decodeJSON(trimmed)
	case "yaml":
		return decodeYAML(trimmed)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func decodeJSON(data []byte) ([]model.RawElement, error) {
	if data[0] == '[' {
		var nodes []dumpNode
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return toRaw(nodes), nil
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, ok := keys["elements"]; ok {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return toRaw(env.Elements), nil
	}
	var root dumpNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return []model.RawElement{root.raw()}, nil
}

func decodeYAML(data []byte) ([]model.RawElement, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDump
	}
	top := doc.Content[0]
	switch top.Kind {
	case yaml.SequenceNode:
		var nodes []dumpNode
		if err := top.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return toRaw(nodes), nil
	case yaml.MappingNode:
		if hasKey(top, "elements") {
			var env envelope
			if err := top.Decode(&env); err != nil {
				return nil, fmt.Errorf("decode yaml: %w", err)
			}
			return toRaw(env.Elements), nil
		}
		var root dumpNode
		if err := top.Decode(&root); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return []model.RawElement{root.raw()}, nil
	}
	return nil, fmt.Errorf("%w: top level must be a list or a mapping", ErrUnsupportedFormat)
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
