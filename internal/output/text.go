package output

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mj1618/a11ycheck/internal/report"
	"github.com/olekukonko/tablewriter"
)

var (
	failureColor = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

// SeverityLabel colors a severity for terminal output.
func SeverityLabel(s report.Severity) string {
	if s == report.SeverityFailure {
		return failureColor.Sprint(s.Title())
	}
	return warningColor.Sprint(s.Title())
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func renderViolations(w io.Writer, views []ViolationView) error {
	var buf bytes.Buffer
	table := newTable(&buf, []string{"#", "Severity", "Rule", "Message", "Elements", "Reason"})
	for i, v := range views {
		names := make([]string, 0, len(v.Elements))
		for _, el := range v.Elements {
			names = append(names, el.Name)
		}
		if len(names) == 0 && v.Subject != "" {
			names = append(names, v.Subject)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			SeverityLabel(v.Severity),
			v.Rule,
			v.Message,
			strings.Join(names, ", "),
			v.Reason,
		})
	}
	table.Render()
	_, err := w.Write(buf.Bytes())
	return err
}

func summary(failures, warnings int) string {
	if failures == 0 && warnings == 0 {
		return okColor.Sprint("No accessibility issues found")
	}
	return fmt.Sprintf("%s, %s",
		failureColor.Sprintf("%d failure(s)", failures),
		warningColor.Sprintf("%d warning(s)", warnings))
}

// RenderText implements TextRenderer.
func (r CheckResult) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "%s %s\n", r.Source, dimColor.Sprintf("(%d elements)", r.Elements))
	if r.Error != "" {
		fmt.Fprintf(w, "  %s %s\n", failureColor.Sprint("error:"), r.Error)
		return nil
	}
	if len(r.Violations) > 0 {
		if err := renderViolations(w, r.Violations); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, summary(r.Failures, r.Warnings))
	return err
}

// RenderText implements TextRenderer.
func (r CheckReport) RenderText(w io.Writer) error {
	for i, res := range r.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := res.RenderText(w); err != nil {
			return err
		}
	}
	if len(r.Results) > 1 {
		fmt.Fprintf(w, "\nTotal: %s\n", summary(r.Failures, r.Warnings))
	}
	return nil
}

// RenderText implements TextRenderer.
func (r SnapshotResult) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "%s -> %s %s\n", r.Source, r.Filename, dimColor.Sprintf("(v%s, %d records)", r.Version, r.Records))
	if r.Written != "" {
		fmt.Fprintf(w, "wrote %s\n", r.Written)
	}
	if len(r.Violations) > 0 {
		if err := renderViolations(w, r.Violations); err != nil {
			return err
		}
	}
	if r.Diff != "" {
		fmt.Fprintln(w)
		for _, line := range strings.SplitAfter(r.Diff, "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				fmt.Fprint(w, line)
			case strings.HasPrefix(line, "+"):
				fmt.Fprint(w, okColor.Sprint(line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprint(w, failureColor.Sprint(line))
			default:
				fmt.Fprint(w, line)
			}
		}
	}
	_, err := fmt.Fprintln(w, summary(r.Failures, r.Warnings))
	return err
}

// RenderText implements TextRenderer.
func (r RulesResult) RenderText(w io.Writer) error {
	var buf bytes.Buffer
	table := newTable(&buf, []string{"Rule", "Severity", "Presets", "Checks"})
	for _, info := range r.Rules {
		table.Append([]string{info.Name, info.Severity, strings.Join(info.Presets, ", "), info.Summary})
	}
	table.Render()
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderText implements TextRenderer.
func (r AnnotateResult) RenderText(w io.Writer) error {
	if err := r.Check.RenderText(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "annotated %s -> %s %s\n", r.Image, r.Out, dimColor.Sprintf("(%d boxes)", r.Boxes))
	if r.Skipped > 0 {
		fmt.Fprintln(w, warningColor.Sprintf("%d frame(s) could not be drawn", r.Skipped))
	}
	return nil
}
