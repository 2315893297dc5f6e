package model

import "strings"

// Trait is a single platform semantic tag.
type Trait uint32

const (
	TraitButton Trait = 1 << iota
	TraitLink
	TraitHeader
	TraitSearchField
	TraitImage
	TraitSelected
	TraitPlaysSound
	TraitKeyboardKey
	TraitStaticText
	TraitSummaryElement
	TraitNotEnabled
	TraitUpdatesFrequently
	TraitStartsMediaSession
	TraitAdjustable
	TraitAllowsDirectInteraction
	TraitCausesPageTurn
	TraitTabBar
)

// allTraits is in display order.
var allTraits = []struct {
	trait   Trait
	name    string
	display string
}{
	{TraitButton, "button", "Button"},
	{TraitLink, "link", "Link"},
	{TraitHeader, "header", "Header"},
	{TraitSearchField, "searchField", "Search Field"},
	{TraitImage, "image", "Image"},
	{TraitSelected, "selected", "Selected"},
	{TraitPlaysSound, "playsSound", "Plays Sound"},
	{TraitKeyboardKey, "keyboardKey", "Keyboard Key"},
	{TraitStaticText, "staticText", "Static Text"},
	{TraitSummaryElement, "summaryElement", "Summary Element"},
	{TraitNotEnabled, "notEnabled", "Not Enabled"},
	{TraitUpdatesFrequently, "updatesFrequently", "Updates Frequently"},
	{TraitStartsMediaSession, "startsMediaSession", "Starts Media Session"},
	{TraitAdjustable, "adjustable", "Adjustable"},
	{TraitAllowsDirectInteraction, "allowsDirectInteraction", "Allows Direct Interaction"},
	{TraitCausesPageTurn, "causesPageTurn", "Causes Page Turn"},
	{TraitTabBar, "tabBar", "Tab Bar"},
}

// TraitSet is a set of traits.
type TraitSet uint32

// NewTraitSet builds a set from individual traits.
func NewTraitSet(traits ...Trait) TraitSet {
	var s TraitSet
	for _, t := range traits {
		s |= TraitSet(t)
	}
	return s
}

// ParseTrait resolves a trait by canonical or display name, ignoring case,
// spaces and a "UIAccessibilityTrait" prefix.
func ParseTrait(name string) (Trait, bool) {
	key := normalizeTraitName(name)
	for _, t := range allTraits {
		if normalizeTraitName(t.name) == key {
			return t.trait, true
		}
	}
	return 0, false
}

func normalizeTraitName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "UIAccessibilityTrait")
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}

// ParseTraits builds a set from raw names. Unrecognized names are skipped.
func ParseTraits(names []string) TraitSet {
	var s TraitSet
	for _, n := range names {
		if t, ok := ParseTrait(n); ok {
			s |= TraitSet(t)
		}
	}
	return s
}

// Has reports whether t is in the set.
func (s TraitSet) Has(t Trait) bool {
	return s&TraitSet(t) != 0
}

// With returns a copy of the set including t.
func (s TraitSet) With(t Trait) TraitSet {
	return s | TraitSet(t)
}

// IsEmpty reports whether the set holds no traits.
func (s TraitSet) IsEmpty() bool {
	return s == 0
}

// Names returns canonical trait names in a stable order.
func (s TraitSet) Names() []string {
	names := []string{}
	for _, t := range allTraits {
		if s.Has(t.trait) {
			names = append(names, t.name)
		}
	}
	return names
}

// DisplayName joins the human trait names, or "None" for an empty set.
func (s TraitSet) DisplayName() string {
	if s.IsEmpty() {
		return "None"
	}
	var parts []string
	for _, t := range allTraits {
		if s.Has(t.trait) {
			parts = append(parts, t.display)
		}
	}
	return strings.Join(parts, ", ")
}

// String returns the canonical name of a single trait.
func (t Trait) String() string {
	for _, info := range allTraits {
		if info.trait == t {
			return info.name
		}
	}
	return "unknown"
}
