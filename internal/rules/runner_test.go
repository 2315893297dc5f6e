package rules

import (
	"testing"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func all(t *testing.T) RuleSet {
	t.Helper()
	set, err := Preset(PresetAll)
	require.NoError(t, err)
	return set
}

func TestEvaluate_Screen(t *testing.T) {
	raws := []model.RawElement{
		{Type: "button", Frame: model.Rect{Width: 10, Height: 10}},
		{Type: "image", Label: "my_photo.jpg", Traits: []string{}, Frame: model.Rect{Width: 100, Height: 100}},
		{Type: "staticText", Label: "Hi", Frame: model.Rect{Width: 10, Height: 10}},
	}

	vs, err := Evaluate(all(t), raws, DefaultConfig())
	require.NoError(t, err)

	want := []struct {
		rule string
		sev  report.Severity
		msg  string
	}{
		{"minimumSize", report.SeverityWarning, "Element not tall enough"},
		{"minimumSize", report.SeverityWarning, "Element not wide enough"},
		{"minimumInteractiveSize", report.SeverityFailure, "Interactive element not tall enough"},
		{"minimumInteractiveSize", report.SeverityFailure, "Interactive element not wide enough"},
		{"labelPresence", report.SeverityWarning, "Label not meaningful"},
		{"imageLabel", report.SeverityFailure, "Image file name is used as the accessibility label"},
		{"imageLabel", report.SeverityFailure, "Image file name is used as the accessibility label"},
		{"imageTrait", report.SeverityFailure, "Image should have Image trait"},
		{"minimumSize", report.SeverityWarning, "Element not tall enough"},
		{"minimumSize", report.SeverityWarning, "Element not wide enough"},
		{"labelPresence", report.SeverityWarning, "Label not meaningful"},
		{"header", report.SeverityFailure, "Screen has no element with a header trait"},
	}
	require.Len(t, vs, len(want))
	for i, w := range want {
		assert.Equal(t, w.rule, vs[i].Rule, "violation %d", i)
		assert.Equal(t, w.sev, vs[i].Severity, "violation %d", i)
		assert.Equal(t, w.msg, vs[i].Message, "violation %d", i)
	}
	assert.Equal(t, "Offending word: _", vs[5].Reason)
	assert.Equal(t, "Offending word: .jpg", vs[6].Reason)
	assert.Empty(t, vs[11].Elements)
}

func TestRunner_HeaderReportedOnce(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(Header), DefaultConfig())
	require.NoError(t, err)

	var elements []model.Element
	for i := 0; i < 5; i++ {
		elements = append(elements, newElement("staticText", "Paragraph", 100, 20))
	}
	vs := runner.Run(elements)
	require.Len(t, vs, 1)
	assert.Equal(t, "header", vs[0].Rule)

	elements = append(elements, withTraits(newElement("staticText", "Title", 100, 20), model.TraitHeader))
	assert.Empty(t, runner.Run(elements))
}

func TestRunner_HeaderOnIgnoredElementDoesNotCount(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(Header), DefaultConfig())
	require.NoError(t, err)

	bar := withTraits(newElement("navigationBar", "Settings", 300, 44), model.TraitHeader)
	assert.Len(t, runner.Run([]model.Element{bar}), 1)
}

func TestRunner_StateDoesNotLeakBetweenRuns(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(Header, Duplicated), DefaultConfig())
	require.NoError(t, err)

	header := withTraits(newElement("staticText", "Title", 100, 20), model.TraitHeader)
	ok1 := newElement("button", "OK", 50, 50)
	ok2 := newElement("button", "OK", 50, 50)

	first := runner.Run([]model.Element{header, ok1, ok2})
	require.Len(t, first, 1)
	assert.Equal(t, "duplicated", first[0].Rule)

	second := runner.Run([]model.Element{newElement("button", "Cancel", 50, 50)})
	require.Len(t, second, 1)
	assert.Equal(t, "header", second[0].Rule)
}

func TestRunner_DuplicatesGroupedOncePerLabel(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(Duplicated), DefaultConfig())
	require.NoError(t, err)

	vs := runner.Run([]model.Element{
		newElement("button", "OK", 50, 50),
		newElement("button", "Cancel", 50, 50),
		newElement("button", "OK", 50, 50),
		newElement("button", "Cancel", 50, 50),
		newElement("button", "OK", 50, 50),
	})
	require.Len(t, vs, 2)
	assert.Len(t, vs[0].Elements, 3)
	assert.Equal(t, "OK", vs[0].Elements[0].Label)
	assert.Len(t, vs[1].Elements, 2)
	assert.Equal(t, "Cancel", vs[1].Elements[0].Label)
}

func TestRunner_IgnoredElementsProduceNothing(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(MinimumSize, LabelPresence, Duplicated), DefaultConfig())
	require.NoError(t, err)

	vs := runner.Run([]model.Element{
		newElement("window", "", 1, 1),
		newElement("keyboard", "", 1, 1),
		newElement("somethingUnknown", "", 1, 1),
	})
	assert.Empty(t, vs)
}

func TestRunner_OnlySelectedRulesRun(t *testing.T) {
	runner, err := NewRunner(NewRuleSet(ButtonLabel), DefaultConfig())
	require.NoError(t, err)

	vs := runner.Run([]model.Element{newElement("button", "tap button", 1, 1)})
	require.Len(t, vs, 2)
	for _, v := range vs {
		assert.Equal(t, "buttonLabel", v.Rule)
	}
}

func TestNewRunner_Errors(t *testing.T) {
	_, err := NewRunner(RuleSet{}, DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownRule)

	_, err = NewRunner(NewRuleSet("nope"), DefaultConfig())
	assert.ErrorIs(t, err, ErrUnknownRule)

	cfg := DefaultConfig()
	cfg.Tolerance = -1
	_, err = NewRunner(NewRuleSet(MinimumSize), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEvaluate_WalksTree(t *testing.T) {
	raws := []model.RawElement{{
		Type: "window",
		Children: []model.RawElement{{
			Type:  "group",
			Label: "Toolbar",
			Frame: model.Rect{Width: 300, Height: 44},
			Children: []model.RawElement{
				{Type: "button", Label: "Share", Traits: []string{"button"}, Frame: model.Rect{Width: 44, Height: 44}},
				{Type: "button", Label: "Share", Traits: []string{"button"}, Frame: model.Rect{Width: 44, Height: 44}},
			},
		}},
	}}

	vs, err := Evaluate(NewRuleSet(Duplicated, ButtonTrait, MinimumInteractiveSize), raws, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "duplicated", vs[0].Rule)
	assert.Len(t, vs[0].Elements, 2)
}
