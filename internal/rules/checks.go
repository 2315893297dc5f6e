package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
)

// Check evaluates one element.
type Check func(el model.Element, cfg Config) []report.Violation

func failure(rule Name, message string, elements ...model.Element) report.Violation {
	return report.New(report.SeverityFailure, string(rule), message, elements...)
}

func warning(rule Name, message string, elements ...model.Element) report.Violation {
	return report.New(report.SeverityWarning, string(rule), message, elements...)
}

// CheckMinimumSize requires every non-ignored element to be at least
// cfg.MinSize in both dimensions.
func CheckMinimumSize(el model.Element, cfg Config) []report.Violation {
	if el.ShouldIgnore() {
		return nil
	}
	var out []report.Violation
	if !model.AtLeast(el.Frame.Height, cfg.MinSize, cfg.Tolerance) {
		out = append(out, warning(MinimumSize, "Element not tall enough", el).WithReason("Minimum size: %g", cfg.MinSize))
	}
	if !model.AtLeast(el.Frame.Width, cfg.MinSize, cfg.Tolerance) {
		out = append(out, warning(MinimumSize, "Element not wide enough", el).WithReason("Minimum size: %g", cfg.MinSize))
	}
	return out
}

// CheckMinimumInteractiveSize requires interactive elements (or every
// control, when configured) to meet the interactive target size.
func CheckMinimumInteractiveSize(el model.Element, cfg Config) []report.Violation {
	if el.ShouldIgnore() || !el.IsControl() {
		return nil
	}
	if !cfg.AllInteractiveElements && !el.IsInteractive() {
		return nil
	}
	var out []report.Violation
	if !model.AtLeast(el.Frame.Height, cfg.MinInteractiveSize, cfg.Tolerance) {
		out = append(out, failure(MinimumInteractiveSize, "Interactive element not tall enough", el).WithReason("Minimum size: %g", cfg.MinInteractiveSize))
	}
	if !model.AtLeast(el.Frame.Width, cfg.MinInteractiveSize, cfg.Tolerance) {
		out = append(out, failure(MinimumInteractiveSize, "Interactive element not wide enough", el).WithReason("Minimum size: %g", cfg.MinInteractiveSize))
	}
	return out
}

// CheckLabelPresence requires a label longer than cfg.MinMeaningfulLength.
// Cells are exempt because their content is usually exposed by children.
func CheckLabelPresence(el model.Element, cfg Config) []report.Violation {
	if el.ShouldIgnore() || el.Kind == model.KindCell {
		return nil
	}
	var out []report.Violation
	if el.LabelLength() <= cfg.MinMeaningfulLength {
		out = append(out, warning(LabelPresence, "Label not meaningful", el).WithReason("Minimum length: %d", cfg.MinMeaningfulLength))
	}
	if el.Label == "" && el.Placeholder != nil && *el.Placeholder != "" {
		out = append(out, failure(LabelPresence, "Placeholder is not a label", el).WithReason("Placeholder: %s", *el.Placeholder))
	}
	return out
}

// CheckButtonLabel applies wording rules to control labels.
func CheckButtonLabel(el model.Element, _ Config) []report.Violation {
	if el.ShouldIgnore() || !el.IsControl() {
		return nil
	}
	var out []report.Violation
	// TODO: localise the "button" word check.
	if strings.Contains(strings.ToLower(el.Label), "button") {
		out = append(out, failure(ButtonLabel, "Button should not contain the word button in the accessibility label", el))
	}
	if first, _ := utf8.DecodeRuneInString(el.Label); el.Label != "" && !unicode.IsUpper(first) {
		out = append(out, failure(ButtonLabel, "Buttons should begin with a capital letter", el))
	}
	if strings.Contains(el.Label, ".") {
		out = append(out, failure(ButtonLabel, "Button accessibility labels shouldn't contain punctuation", el))
	}
	return out
}

// CheckImageLabel reports one violation per image word or file name token
// found in an image's label.
func CheckImageLabel(el model.Element, cfg Config) []report.Violation {
	if el.ShouldIgnore() || el.Kind != model.KindImage {
		return nil
	}
	lower := strings.ToLower(el.Label)
	var out []report.Violation
	for _, word := range cfg.ImageWords {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			out = append(out, failure(ImageLabel, "Images should not contain image words in the accessibility label", el).WithReason("Offending word: %s", word))
		}
	}
	for _, token := range cfg.FilenameTokens {
		if token != "" && strings.Contains(lower, strings.ToLower(token)) {
			out = append(out, failure(ImageLabel, "Image file name is used as the accessibility label", el).WithReason("Offending word: %s", token))
		}
	}
	return out
}

// CheckLabelLength caps label length for everything except running text.
func CheckLabelLength(el model.Element, cfg Config) []report.Violation {
	if el.ShouldIgnore() || el.Kind == model.KindStaticText || el.Kind == model.KindTextView {
		return nil
	}
	if el.LabelLength() <= cfg.MaxMeaningfulLength {
		return nil
	}
	return []report.Violation{
		warning(LabelLength, "Label is too long", el).WithReason("Max length: %d", cfg.MaxMeaningfulLength),
	}
}

// CheckImageTrait requires images to carry the image trait. Unknown traits
// are not reported.
func CheckImageTrait(el model.Element, _ Config) []report.Violation {
	if el.ShouldIgnore() || el.Kind != model.KindImage || !el.TraitsKnown() {
		return nil
	}
	if el.HasTrait(model.TraitImage) {
		return nil
	}
	return []report.Violation{failure(ImageTrait, "Image should have Image trait", el)}
}

// CheckButtonTrait requires buttons to carry the button or link trait.
func CheckButtonTrait(el model.Element, _ Config) []report.Violation {
	if el.ShouldIgnore() || el.Kind != model.KindButton || !el.TraitsKnown() {
		return nil
	}
	if el.HasTrait(model.TraitButton) || el.HasTrait(model.TraitLink) {
		return nil
	}
	return []report.Violation{failure(ButtonTrait, "Button should have Button or Link trait", el)}
}

// interactiveTraits imply the element can be activated.
var interactiveTraits = []model.Trait{
	model.TraitCausesPageTurn,
	model.TraitPlaysSound,
	model.TraitStartsMediaSession,
}

// CheckConflictingTraits reports trait combinations that contradict each other.
func CheckConflictingTraits(el model.Element, _ Config) []report.Violation {
	if el.ShouldIgnore() || !el.TraitsKnown() {
		return nil
	}
	var out []report.Violation
	if el.HasTrait(model.TraitButton) && el.HasTrait(model.TraitLink) {
		out = append(out, failure(ConflictingTraits, "Elements shouldn't have both Button and Link traits", el))
	}
	if el.HasTrait(model.TraitStaticText) && el.HasTrait(model.TraitUpdatesFrequently) {
		out = append(out, failure(ConflictingTraits, "Elements shouldn't have both Static Text and Updates Frequently traits", el))
	}

	var found model.TraitSet
	for _, t := range interactiveTraits {
		if el.HasTrait(t) {
			found = found.With(t)
		}
	}
	if !found.IsEmpty() && !el.HasTrait(model.TraitButton) {
		out = append(out, warning(ConflictingTraits, "Elements with "+found.DisplayName()+" traits should also have a Button trait", el))
	}
	return out
}

// CheckDisabled warns about controls that are not enabled.
func CheckDisabled(el model.Element, _ Config) []report.Violation {
	if el.ShouldIgnore() || !el.IsControl() || el.Enabled {
		return nil
	}
	return []report.Violation{warning(Disabled, "Element disabled", el)}
}

// hasHeaderTrait is the per-element half of the header rule.
func hasHeaderTrait(el model.Element) bool {
	return !el.ShouldIgnore() && el.HasTrait(model.TraitHeader)
}

func missingHeader() report.Violation {
	return failure(Header, "Screen has no element with a header trait")
}

// CheckHeader requires at least one element on the screen to be a header.
func CheckHeader(elements []model.Element) []report.Violation {
	for _, el := range elements {
		if hasHeaderTrait(el) {
			return nil
		}
	}
	return []report.Violation{missingHeader()}
}

// isDuplicatePair is true for two distinct controls sharing a non-empty label.
func isDuplicatePair(a, b model.Element) bool {
	return a.IsControl() && b.IsControl() &&
		!a.SameNode(b) &&
		a.Label != "" && a.Label == b.Label
}

func duplicatedLabels(elements ...model.Element) report.Violation {
	return warning(Duplicated, "Elements have duplicated labels", elements...)
}

// CheckDuplicatedPair compares two elements directly.
func CheckDuplicatedPair(a, b model.Element) []report.Violation {
	if !isDuplicatePair(a, b) {
		return nil
	}
	return []report.Violation{duplicatedLabels(a, b)}
}

// CheckDuplicated reports once per label shared by two or more controls.
func CheckDuplicated(elements []model.Element) []report.Violation {
	groups := newDuplicateGroups()
	for _, a := range elements {
		for _, b := range elements {
			groups.add(a, b)
		}
	}
	return groups.violations()
}

// duplicateGroups collects duplicate-label members keyed by label, keeping
// first-seen order for both labels and members.
type duplicateGroups struct {
	labels  []string
	members map[string][]model.Element
	seen    map[string]map[model.ElementID]bool
}

func newDuplicateGroups() *duplicateGroups {
	return &duplicateGroups{
		members: make(map[string][]model.Element),
		seen:    make(map[string]map[model.ElementID]bool),
	}
}

func (g *duplicateGroups) add(a, b model.Element) {
	if !isDuplicatePair(a, b) {
		return
	}
	label := a.Label
	if _, ok := g.seen[label]; !ok {
		g.labels = append(g.labels, label)
		g.seen[label] = make(map[model.ElementID]bool)
	}
	for _, el := range []model.Element{a, b} {
		if !g.seen[label][el.ID] {
			g.seen[label][el.ID] = true
			g.members[label] = append(g.members[label], el)
		}
	}
}

func (g *duplicateGroups) violations() []report.Violation {
	var out []report.Violation
	for _, label := range g.labels {
		out = append(out, duplicatedLabels(g.members[label]...))
	}
	return out
}
