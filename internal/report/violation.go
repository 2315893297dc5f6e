// Package report holds the outcome type every check produces.
package report

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11ycheck/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity is advisory: failures must be fixed, warnings should be reviewed.
type Severity string

const (
	SeverityFailure Severity = "failure"
	SeverityWarning Severity = "warning"
)

var titleCaser = cases.Title(language.English)

// Title returns "Failure" or "Warning".
func (s Severity) Title() string {
	return titleCaser.String(string(s))
}

// Violation is one reported rule outcome. It is never modified after a
// check returns it.
type Violation struct {
	Severity Severity
	Rule     string          // Rule name, or "snapshot" for comparison results
	Message  string          // Fixed per-check message
	Reason   string          // Optional detail, e.g. "Minimum size: 14"
	Elements []model.Element // Implicated elements, possibly none
	Subject  string          // Free-form target when no element is available (snapshot records)
}

// New builds a violation implicating zero or more elements.
func New(severity Severity, rule, message string, elements ...model.Element) Violation {
	return Violation{
		Severity: severity,
		Rule:     rule,
		Message:  message,
		Elements: elements,
	}
}

// WithReason returns a copy of v carrying reason.
func (v Violation) WithReason(format string, args ...interface{}) Violation {
	v.Reason = fmt.Sprintf(format, args...)
	return v
}

// WithSubject returns a copy of v naming subject instead of elements.
func (v Violation) WithSubject(subject string) Violation {
	v.Subject = subject
	return v
}

// IsFailure reports whether v has failure severity.
func (v Violation) IsFailure() bool {
	return v.Severity == SeverityFailure
}

// ElementNames returns the display names of the implicated elements.
func (v Violation) ElementNames() []string {
	names := make([]string, 0, len(v.Elements))
	for _, el := range v.Elements {
		names = append(names, el.DisplayName())
	}
	return names
}

// Text assembles the human-readable line:
//
//	Accessibility Failure: Label not meaningful: "OK" Button. Minimum length: 2.
func (v Violation) Text() string {
	var b strings.Builder
	b.WriteString("Accessibility ")
	b.WriteString(v.Severity.Title())
	b.WriteString(": ")
	b.WriteString(v.Message)

	switch {
	case len(v.Elements) > 0:
		b.WriteString(": ")
		b.WriteString(strings.Join(v.ElementNames(), ", "))
	case v.Subject != "":
		b.WriteString(": ")
		b.WriteString(v.Subject)
	}
	b.WriteString(".")

	if v.Reason != "" {
		b.WriteString(" ")
		b.WriteString(v.Reason)
		if !strings.HasSuffix(v.Reason, ".") {
			b.WriteString(".")
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	return v.Text()
}

// Counts tallies failures and warnings.
func Counts(violations []Violation) (failures, warnings int) {
	for _, v := range violations {
		if v.IsFailure() {
			failures++
		} else {
			warnings++
		}
	}
	return failures, warnings
}

// HasFailures reports whether any violation has failure severity.
func HasFailures(violations []Violation) bool {
	failures, _ := Counts(violations)
	return failures > 0
}
