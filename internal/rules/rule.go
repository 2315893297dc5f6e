// Package rules holds the accessibility rule catalogue and the runner that
// applies a selected set of rules to one screen of elements.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Name identifies one rule. The values are a stable public vocabulary.
type Name string

const (
	MinimumSize            Name = "minimumSize"
	MinimumInteractiveSize Name = "minimumInteractiveSize"
	LabelPresence          Name = "labelPresence"
	ButtonLabel            Name = "buttonLabel"
	ImageLabel             Name = "imageLabel"
	LabelLength            Name = "labelLength"
	ImageTrait             Name = "imageTrait"
	ButtonTrait            Name = "buttonTrait"
	Header                 Name = "header"
	ConflictingTraits      Name = "conflictingTraits"
	Disabled               Name = "disabled"
	Duplicated             Name = "duplicated"
)

// AllNames lists every rule in catalogue order.
var AllNames = []Name{
	MinimumSize,
	MinimumInteractiveSize,
	LabelPresence,
	ButtonLabel,
	ImageLabel,
	LabelLength,
	ImageTrait,
	ButtonTrait,
	Header,
	ConflictingTraits,
	Disabled,
	Duplicated,
}

// ErrUnknownRule is returned for a rule or preset name that does not exist.
var ErrUnknownRule = errors.New("unknown rule")

// RuleSet is an unordered selection of rules.
type RuleSet map[Name]bool

// NewRuleSet builds a set from names.
func NewRuleSet(names ...Name) RuleSet {
	s := make(RuleSet, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Contains reports whether n is selected.
func (s RuleSet) Contains(n Name) bool {
	return s[n]
}

// Union returns a new set holding the rules of both sets.
func (s RuleSet) Union(other RuleSet) RuleSet {
	out := make(RuleSet, len(s)+len(other))
	for n := range s {
		out[n] = true
	}
	for n := range other {
		out[n] = true
	}
	return out
}

// Names returns the selected rules in catalogue order.
func (s RuleSet) Names() []Name {
	names := make([]Name, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		return catalogueIndex(names[i]) < catalogueIndex(names[j])
	})
	return names
}

// Strings returns Names as plain strings.
func (s RuleSet) Strings() []string {
	names := s.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

func catalogueIndex(n Name) int {
	for i, c := range AllNames {
		if c == n {
			return i
		}
	}
	return len(AllNames)
}

// Preset names.
const (
	PresetAll         = "all"
	PresetImages      = "images"
	PresetInteractive = "interactive"
	PresetLabels      = "labels"
)

// Presets are fixed rule groupings.
var Presets = map[string][]Name{
	PresetAll:         AllNames,
	PresetImages:      {MinimumSize, LabelPresence, ImageLabel, LabelLength, ImageTrait},
	PresetInteractive: {MinimumInteractiveSize, LabelPresence, ButtonLabel, LabelLength, Duplicated, ButtonTrait, Disabled, ConflictingTraits},
	PresetLabels:      {MinimumSize, LabelPresence, ConflictingTraits},
}

// Preset returns the named preset as a set.
func Preset(name string) (RuleSet, error) {
	names, ok := Presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: preset %q", ErrUnknownRule, name)
	}
	return NewRuleSet(names...), nil
}

// ParseName resolves a rule name, ignoring case.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, n := range AllNames {
		if strings.ToLower(string(n)) == key {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// ParseRuleSet resolves rule and preset names. Each spec may itself be a
// comma-separated list, as given on the command line.
func ParseRuleSet(specs []string) (RuleSet, error) {
	set := RuleSet{}
	for _, spec := range specs {
		for _, part := range strings.Split(spec, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if preset, err := Preset(part); err == nil {
				set = set.Union(preset)
				continue
			}
			n, err := ParseName(part)
			if err != nil {
				return nil, err
			}
			set[n] = true
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no rules selected", ErrUnknownRule)
	}
	return set, nil
}
