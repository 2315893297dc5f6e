package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFromRaw_Fields(t *testing.T) {
	disabled := false
	raw := RawElement{
		Label:       "Search",
		Identifier:  "search.field",
		Type:        "searchField",
		Frame:       Rect{X: 10, Y: 20, Width: 300, Height: 40},
		Traits:      []string{"searchField", "Selected"},
		Enabled:     &disabled,
		Placeholder: strPtr("Type here"),
		Value:       strPtr("hello"),
	}

	el := FromRaw(raw)

	assert.Equal(t, "Search", el.Label)
	assert.Equal(t, "search.field", el.Identifier)
	assert.Equal(t, KindSearchField, el.Kind)
	assert.Equal(t, raw.Frame, el.Frame)
	assert.False(t, el.Enabled)
	require.NotNil(t, el.Traits)
	assert.True(t, el.HasTrait(TraitSearchField))
	assert.True(t, el.HasTrait(TraitSelected))
	assert.False(t, el.HasTrait(TraitButton))
	assert.Equal(t, "Type here", *el.Placeholder)
	assert.Equal(t, "hello", *el.Value)
}

func TestFromRaw_EnabledDefaultsTrue(t *testing.T) {
	el := FromRaw(RawElement{Type: "button"})
	assert.True(t, el.Enabled)
}

func TestFromRaw_NilTraitsStayUnknown(t *testing.T) {
	el := FromRaw(RawElement{Type: "image"})
	assert.False(t, el.TraitsKnown())
	assert.False(t, el.HasTrait(TraitImage))

	known := FromRaw(RawElement{Type: "image", Traits: []string{}})
	assert.True(t, known.TraitsKnown())
	assert.True(t, known.Traits.IsEmpty())
}

func TestFromRaw_DistinctIDs(t *testing.T) {
	raw := RawElement{Label: "OK", Type: "button"}
	a := FromRaw(raw)
	b := FromRaw(raw)

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.SameNode(b))
	assert.True(t, a.SameNode(a))
}

func TestNormalize_FlattensTree(t *testing.T) {
	raws := []RawElement{
		{
			Type: "window",
			Children: []RawElement{
				{Type: "button", Label: "Back"},
				{Type: "staticText", Label: "Title", Children: []RawElement{{Type: "image", Label: "Logo"}}},
			},
		},
	}

	elements := Normalize(raws)

	require.Len(t, elements, 4)
	assert.Equal(t, KindWindow, elements[0].Kind)
	assert.Equal(t, "Back", elements[1].Label)
	assert.Equal(t, "Title", elements[2].Label)
	assert.Equal(t, "Logo", elements[3].Label)
}

func TestShouldIgnore(t *testing.T) {
	ignored := []Kind{KindWindow, KindScrollBar, KindOther, KindNavigationBar, KindTable,
		KindScrollView, KindKey, KindKeyboard, KindTabBar}
	for _, k := range ignored {
		assert.True(t, Element{Kind: k}.ShouldIgnore(), k.String())
	}
	for _, k := range []Kind{KindButton, KindImage, KindStaticText, KindCell, KindGroup} {
		assert.False(t, Element{Kind: k}.ShouldIgnore(), k.String())
	}
}

func TestIsInteractive_OnlyButtonsAndCells(t *testing.T) {
	assert.True(t, Element{Kind: KindButton}.IsInteractive())
	assert.True(t, Element{Kind: KindCell}.IsInteractive())
	assert.False(t, Element{Kind: KindSwitch}.IsInteractive())
	assert.False(t, Element{Kind: KindTextField}.IsInteractive())
}

func TestIsControl(t *testing.T) {
	controls := []Kind{KindButton, KindSlider, KindStepper, KindSegmentedControl, KindTextField,
		KindSwitch, KindPageIndicator, KindLink, KindSearchField, KindSecureTextField,
		KindDatePicker, KindPicker, KindPickerWheel, KindCell}
	for _, k := range controls {
		assert.True(t, Element{Kind: k}.IsControl(), k.String())
	}
	for _, k := range []Kind{KindImage, KindStaticText, KindTextView, KindCheckBox, KindOther} {
		assert.False(t, Element{Kind: k}.IsControl(), k.String())
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		el   Element
		want string
	}{
		{Element{Label: "Submit", Kind: KindButton}, `"Submit" Button`},
		{Element{Identifier: "logo", Kind: KindImage}, `"logo" Image`},
		{Element{Kind: KindStaticText}, "[No identifier] Label"},
		{Element{Label: "Name", Identifier: "ignored", Kind: KindTextField}, `"Name" Text Field`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.el.DisplayName())
	}
}

func TestLabelLength_CountsGraphemes(t *testing.T) {
	assert.Equal(t, 0, Element{}.LabelLength())
	assert.Equal(t, 2, Element{Label: "Hi"}.LabelLength())
	assert.Equal(t, 4, Element{Label: "Café"}.LabelLength())
	assert.Equal(t, 1, Element{Label: "👍🏽"}.LabelLength())
}
