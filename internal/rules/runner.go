package rules

import (
	"fmt"

	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
)

// orderedChecks is the fixed per-element evaluation order. The header rule
// is accumulated between the trait checks and the disabled check.
var orderedChecks = []struct {
	name  Name
	check Check
}{
	{MinimumSize, CheckMinimumSize},
	{MinimumInteractiveSize, CheckMinimumInteractiveSize},
	{LabelPresence, CheckLabelPresence},
	{ButtonLabel, CheckButtonLabel},
	{ImageLabel, CheckImageLabel},
	{LabelLength, CheckLabelLength},
	{ImageTrait, CheckImageTrait},
	{ButtonTrait, CheckButtonTrait},
	{Header, nil},
	{Disabled, CheckDisabled},
	{ConflictingTraits, CheckConflictingTraits},
}

// Runner applies a rule set to one screen at a time. A Runner holds no
// state between calls to Run.
type Runner struct {
	rules RuleSet
	cfg   Config
}

// NewRunner validates the selection and configuration up front.
func NewRunner(rules RuleSet, cfg Config) (*Runner, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules selected", ErrUnknownRule)
	}
	for n := range rules {
		if catalogueIndex(n) == len(AllNames) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, n)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{rules: rules, cfg: cfg}, nil
}

// runState is reset at the start of every Run.
type runState struct {
	hasHeader  bool
	duplicates *duplicateGroups
}

// Run evaluates every selected rule. Violations are ordered by element, then
// by rule, followed by the header result and the duplicate groups.
func (r *Runner) Run(elements []model.Element) []report.Violation {
	state := runState{duplicates: newDuplicateGroups()}
	var out []report.Violation

	for _, el := range elements {
		if el.ShouldIgnore() {
			continue
		}
		for _, c := range orderedChecks {
			if !r.rules.Contains(c.name) {
				continue
			}
			if c.name == Header {
				if !state.hasHeader && hasHeaderTrait(el) {
					state.hasHeader = true
				}
				continue
			}
			out = append(out, c.check(el, r.cfg)...)
		}

		if r.rules.Contains(Duplicated) {
			for _, other := range elements {
				state.duplicates.add(el, other)
			}
		}
	}

	if r.rules.Contains(Header) && !state.hasHeader {
		out = append(out, missingHeader())
	}
	if r.rules.Contains(Duplicated) {
		out = append(out, state.duplicates.violations()...)
	}
	return out
}

// Evaluate normalizes raw elements and runs the selected rules over them.
func Evaluate(rules RuleSet, raws []model.RawElement, cfg Config) ([]report.Violation, error) {
	runner, err := NewRunner(rules, cfg)
	if err != nil {
		return nil, err
	}
	return runner.Run(model.Normalize(raws)), nil
}
