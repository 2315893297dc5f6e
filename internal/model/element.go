package model

import (
	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// Rect is a screen-space bounding box in points.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// RawElement is one accessibility node as reported by the host automation layer.
type RawElement struct {
	Label       string       `yaml:"label,omitempty"       json:"label,omitempty"`
	Identifier  string       `yaml:"identifier,omitempty"  json:"identifier,omitempty"`
	Type        string       `yaml:"type"                  json:"type"`
	Frame       Rect         `yaml:"frame"                 json:"frame"`
	Traits      []string     `yaml:"traits"                json:"traits"`                // nil = platform could not expose traits
	Enabled     *bool        `yaml:"enabled,omitempty"     json:"enabled,omitempty"`     // nil or true = enabled
	Placeholder *string      `yaml:"placeholder,omitempty" json:"placeholder,omitempty"` // Input placeholder text
	Value       *string      `yaml:"value,omitempty"       json:"value,omitempty"`       // Current value
	Children    []RawElement `yaml:"children,omitempty"    json:"children,omitempty"`    // Nested nodes in tree dumps
}

// ElementID identifies one normalized element for the duration of a run.
// It is never persisted and never derived from the label.
type ElementID = uuid.UUID

// Element is the normalized, immutable view of a RawElement that rules consume.
type Element struct {
	ID          ElementID
	Label       string
	Identifier  string
	Frame       Rect
	Kind        Kind
	Traits      *TraitSet // nil when the platform could not expose traits
	Enabled     bool
	Placeholder *string
	Value       *string
}

// FromRaw normalizes a raw element. Children are not visited; use Normalize
// for tree dumps.
func FromRaw(raw RawElement) Element {
	el := Element{
		ID:          uuid.New(),
		Label:       raw.Label,
		Identifier:  raw.Identifier,
		Frame:       raw.Frame,
		Kind:        ParseKind(raw.Type),
		Enabled:     raw.Enabled == nil || *raw.Enabled,
		Placeholder: raw.Placeholder,
		Value:       raw.Value,
	}
	if raw.Traits != nil {
		set := ParseTraits(raw.Traits)
		el.Traits = &set
	}
	return el
}

// Normalize flattens a raw tree depth-first and converts every node.
func Normalize(raws []RawElement) []Element {
	flat := FlattenRaw(raws)
	elements := make([]Element, 0, len(flat))
	for _, raw := range flat {
		elements = append(elements, FromRaw(raw))
	}
	return elements
}

// SameNode reports whether both values were built from the same raw node.
func (e Element) SameNode(other Element) bool {
	return e.ID == other.ID
}

// ShouldIgnore is true for structural containers that almost no check applies to.
func (e Element) ShouldIgnore() bool {
	switch e.Kind {
	case KindWindow, KindScrollBar, KindOther, KindNavigationBar, KindTable,
		KindScrollView, KindKey, KindKeyboard, KindTabBar:
		return true
	}
	return false
}

// IsInteractive is deliberately narrow. Switches, steppers, sliders,
// segmented controls and text fields are interactive too, but their stock
// platform implementations are smaller than the interactive minimum.
func (e Element) IsInteractive() bool {
	return e.Kind == KindButton || e.Kind == KindCell
}

// IsControl covers every kind a user can operate.
func (e Element) IsControl() bool {
	switch e.Kind {
	case KindButton, KindSlider, KindStepper, KindSegmentedControl, KindTextField,
		KindSwitch, KindPageIndicator, KindLink, KindSearchField, KindSecureTextField,
		KindDatePicker, KindPicker, KindPickerWheel, KindCell:
		return true
	}
	return false
}

// TraitsKnown reports whether the platform exposed a trait set.
func (e Element) TraitsKnown() bool {
	return e.Traits != nil
}

// HasTrait is false when traits are unknown.
func (e Element) HasTrait(t Trait) bool {
	return e.Traits != nil && e.Traits.Has(t)
}

// LabelLength counts user-perceived characters, not bytes or runes.
func (e Element) LabelLength() int {
	return uniseg.GraphemeClusterCount(e.Label)
}

// DisplayName is the element reference used in violation messages,
// e.g. `"Submit" Button` or `[No identifier] Image`.
func (e Element) DisplayName() string {
	name := e.Label
	if name == "" {
		name = e.Identifier
	}
	if name == "" {
		return "[No identifier] " + e.Kind.DisplayName()
	}
	return "\"" + name + "\" " + e.Kind.DisplayName()
}
