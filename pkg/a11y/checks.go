package a11y

import (
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/rules"
)

func single(check rules.Check, el RawElement, cfg Config) []Violation {
	return check(model.FromRaw(el), cfg)
}

// MinimumSize checks that el is at least cfg.MinSize in both dimensions.
func MinimumSize(el RawElement, cfg Config) []Violation {
	return single(rules.CheckMinimumSize, el, cfg)
}

// MinimumInteractiveSize checks controls against cfg.MinInteractiveSize.
func MinimumInteractiveSize(el RawElement, cfg Config) []Violation {
	return single(rules.CheckMinimumInteractiveSize, el, cfg)
}

// LabelPresence checks that el has a meaningful label.
func LabelPresence(el RawElement, cfg Config) []Violation {
	return single(rules.CheckLabelPresence, el, cfg)
}

// ButtonLabel checks button label wording, capitalisation and punctuation.
func ButtonLabel(el RawElement, cfg Config) []Violation {
	return single(rules.CheckButtonLabel, el, cfg)
}

// ImageLabel flags image labels that contain image words or file names.
func ImageLabel(el RawElement, cfg Config) []Violation {
	return single(rules.CheckImageLabel, el, cfg)
}

// LabelLength checks that the label is no longer than cfg.MaxMeaningfulLength.
func LabelLength(el RawElement, cfg Config) []Violation {
	return single(rules.CheckLabelLength, el, cfg)
}

// ImageTrait checks that images carry the image trait.
func ImageTrait(el RawElement, cfg Config) []Violation {
	return single(rules.CheckImageTrait, el, cfg)
}

// ButtonTrait checks that buttons carry the button or link trait.
func ButtonTrait(el RawElement, cfg Config) []Violation {
	return single(rules.CheckButtonTrait, el, cfg)
}

// ConflictingTraits flags trait combinations that contradict each other.
func ConflictingTraits(el RawElement, cfg Config) []Violation {
	return single(rules.CheckConflictingTraits, el, cfg)
}

// Disabled warns about controls that are not enabled.
func Disabled(el RawElement, cfg Config) []Violation {
	return single(rules.CheckDisabled, el, cfg)
}

// Header checks a whole screen for at least one header.
func Header(elements []RawElement) []Violation {
	return rules.CheckHeader(model.Normalize(elements))
}

// Duplicated compares two elements. They are always distinct nodes, even
// when the values are equal.
func Duplicated(a, b RawElement) []Violation {
	return rules.CheckDuplicatedPair(model.FromRaw(a), model.FromRaw(b))
}
