// Package output renders command results as YAML, JSON or a colored table.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatAuto Format = "auto"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatAuto

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TextRenderer is implemented by results that have a human-readable form.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatYAML, FormatJSON, FormatText, FormatAuto:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %q (expected yaml, json, text or auto)", s)
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// Resolve turns FormatAuto into text on a terminal and YAML otherwise.
func Resolve(f Format) Format {
	if f != FormatAuto {
		return f
	}
	if IsOutputPiped() {
		return FormatYAML
	}
	return FormatText
}

// Fprint serializes v to w in format f. Values without a text form fall
// back to YAML for FormatText.
func Fprint(w io.Writer, f Format, v interface{}) error {
	switch Resolve(f) {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	case FormatText:
		if r, ok := v.(TextRenderer); ok {
			return r.RenderText(w)
		}
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// WriteJSON serializes v as JSON, single-line unless pretty is set.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
