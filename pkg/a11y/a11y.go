// Package a11y checks accessibility element dumps from Go tests.
//
//	violations, err := a11y.Evaluate(a11y.All(), elements, a11y.DefaultConfig())
//
// Violations carry a severity; deciding which ones fail a test is up to the
// caller.
package a11y

import (
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/mj1618/a11ycheck/internal/rules"
)

type (
	RawElement = model.RawElement
	Rect       = model.Rect
	Violation  = report.Violation
	Severity   = report.Severity
	RuleName   = rules.Name
	RuleSet    = rules.RuleSet
	Config     = rules.Config
)

const (
	SeverityFailure = report.SeverityFailure
	SeverityWarning = report.SeverityWarning
)

var (
	ErrUnknownRule   = rules.ErrUnknownRule
	ErrInvalidConfig = rules.ErrInvalidConfig
)

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return rules.DefaultConfig()
}

// All selects every rule.
func All() RuleSet {
	return rules.NewRuleSet(rules.AllNames...)
}

// Rules resolves rule and preset names such as "interactive" or
// "header,disabled".
func Rules(specs ...string) (RuleSet, error) {
	return rules.ParseRuleSet(specs)
}

// Evaluate runs the selected rules over one screen. Nested Children are
// walked depth-first.
func Evaluate(set RuleSet, elements []RawElement, cfg Config) ([]Violation, error) {
	return rules.Evaluate(set, elements, cfg)
}

// IgnoreIdentifiers drops elements with the given accessibility identifiers.
func IgnoreIdentifiers(elements []RawElement, identifiers ...string) []RawElement {
	return model.FilterByIdentifier(elements, identifiers)
}

// Failures returns only failure-severity violations.
func Failures(vs []Violation) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.IsFailure() {
			out = append(out, v)
		}
	}
	return out
}
