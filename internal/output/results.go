package output

import (
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/mj1618/a11ycheck/internal/snapshot"
)

// ElementView is the serialized form of an implicated element.
type ElementView struct {
	Name       string     `yaml:"name"                 json:"name"`
	Identifier string     `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Type       string     `yaml:"type"                 json:"type"`
	Frame      model.Rect `yaml:"frame"                json:"frame"`
}

// ViolationView is the serialized form of a violation.
type ViolationView struct {
	Severity report.Severity `yaml:"severity"           json:"severity"`
	Rule     string          `yaml:"rule"               json:"rule"`
	Message  string          `yaml:"message"            json:"message"`
	Reason   string          `yaml:"reason,omitempty"   json:"reason,omitempty"`
	Subject  string          `yaml:"subject,omitempty"  json:"subject,omitempty"`
	Elements []ElementView   `yaml:"elements,omitempty" json:"elements,omitempty"`
	Text     string          `yaml:"text"               json:"text"`
}

// NewViolationView converts v.
func NewViolationView(v report.Violation) ViolationView {
	view := ViolationView{
		Severity: v.Severity,
		Rule:     v.Rule,
		Message:  v.Message,
		Reason:   v.Reason,
		Subject:  v.Subject,
		Text:     v.Text(),
	}
	for _, el := range v.Elements {
		view.Elements = append(view.Elements, ElementView{
			Name:       el.DisplayName(),
			Identifier: el.Identifier,
			Type:       el.Kind.String(),
			Frame:      el.Frame,
		})
	}
	return view
}

// NewViolationViews converts a list. The result is never nil so JSON
// output shows an empty array.
func NewViolationViews(vs []report.Violation) []ViolationView {
	views := make([]ViolationView, 0, len(vs))
	for _, v := range vs {
		views = append(views, NewViolationView(v))
	}
	return views
}

// CheckResult is the outcome of checking one element dump.
type CheckResult struct {
	Source     string          `yaml:"source"          json:"source"`
	Elements   int             `yaml:"elements"        json:"elements"`
	Rules      []string        `yaml:"rules"           json:"rules"`
	Failures   int             `yaml:"failures"        json:"failures"`
	Warnings   int             `yaml:"warnings"        json:"warnings"`
	Error      string          `yaml:"error,omitempty" json:"error,omitempty"`
	Violations []ViolationView `yaml:"violations"      json:"violations"`
}

// NewCheckResult tallies violations for one source.
func NewCheckResult(source string, elements int, rules []string, vs []report.Violation) CheckResult {
	failures, warnings := report.Counts(vs)
	return CheckResult{
		Source:     source,
		Elements:   elements,
		Rules:      rules,
		Failures:   failures,
		Warnings:   warnings,
		Violations: NewViolationViews(vs),
	}
}

// CheckReport groups the results of one check command.
type CheckReport struct {
	Results  []CheckResult `yaml:"results"  json:"results"`
	Failures int           `yaml:"failures" json:"failures"`
	Warnings int           `yaml:"warnings" json:"warnings"`
}

// NewCheckReport sums the per-source counts.
func NewCheckReport(results []CheckResult) CheckReport {
	r := CheckReport{Results: results}
	for _, res := range results {
		r.Failures += res.Failures
		r.Warnings += res.Warnings
	}
	return r
}

// SnapshotResult is the outcome of one snapshot comparison.
type SnapshotResult struct {
	Source     string          `yaml:"source"            json:"source"`
	Filename   string          `yaml:"filename"          json:"filename"`
	Version    string          `yaml:"version"           json:"version"`
	Records    int             `yaml:"records"           json:"records"`
	Written    string          `yaml:"written,omitempty" json:"written,omitempty"`
	Failures   int             `yaml:"failures"          json:"failures"`
	Warnings   int             `yaml:"warnings"          json:"warnings"`
	Violations []ViolationView `yaml:"violations"        json:"violations"`
	Diff       string          `yaml:"diff,omitempty"    json:"diff,omitempty"`
}

// RuleInfo describes one rule for the rules command.
type RuleInfo struct {
	Name     string   `yaml:"name"     json:"name"`
	Severity string   `yaml:"severity" json:"severity"`
	Summary  string   `yaml:"summary"  json:"summary"`
	Presets  []string `yaml:"presets"  json:"presets"`
}

// RulesResult lists the rule catalogue.
type RulesResult struct {
	Rules   []RuleInfo          `yaml:"rules"   json:"rules"`
	Presets map[string][]string `yaml:"presets" json:"presets"`
}

// NewRulesResult builds the rules listing from the catalogue.
func NewRulesResult(infos []rules.Info) RulesResult {
	res := RulesResult{Presets: make(map[string][]string, len(rules.Presets))}
	for _, info := range infos {
		res.Rules = append(res.Rules, RuleInfo{
			Name:     string(info.Name),
			Severity: info.Severity,
			Summary:  info.Summary,
			Presets:  rules.PresetsOf(info.Name),
		})
	}
	for preset, names := range rules.Presets {
		for _, n := range names {
			res.Presets[preset] = append(res.Presets[preset], string(n))
		}
	}
	return res
}

// NewSnapshotResult converts a snapshot run.
func NewSnapshotResult(source string, res snapshot.Result) SnapshotResult {
	failures, warnings := report.Counts(res.Violations)
	return SnapshotResult{
		Source:     source,
		Filename:   res.Filename,
		Version:    res.Current.Version,
		Records:    len(res.Current.Snapshot),
		Written:    res.Written,
		Failures:   failures,
		Warnings:   warnings,
		Violations: NewViolationViews(res.Violations),
	}
}

// AnnotateResult reports an annotated screenshot.
type AnnotateResult struct {
	Check   CheckResult `yaml:"check"             json:"check"`
	Image   string      `yaml:"image"             json:"image"`
	Out     string      `yaml:"out"               json:"out"`
	Boxes   int         `yaml:"boxes"             json:"boxes"`
	Skipped int         `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}
