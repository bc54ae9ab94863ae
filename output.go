package utilcss

import (
	"fmt"
	"io"

	"github.com/yacobolo/utilcss/internal/reporter"
)

// OutputFormat selects how a generation report is written.
type OutputFormat string

const (
	// OutputText prints diagnostics and a summary for humans.
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data for tooling.
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat validates a format name. An empty name selects text.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text or json)", name)
}

// ReportOptions configures WriteReport.
type ReportOptions struct {
	Format    OutputFormat
	UseColors bool
	Stats     ScanStats
}

// WriteReport writes the diagnostics and summary of result.
func WriteReport(w io.Writer, result *Result, opts ReportOptions) error {
	if opts.Format == OutputJSON {
		return WriteJSON(w, result, opts.Stats)
	}

	issues := make([]reporter.Issue, len(result.Diagnostics))
	for i, d := range result.Diagnostics {
		issues[i] = reporter.Issue{
			Severity: d.Severity,
			Text:     d.Text,
			Class:    d.Class,
			Offset:   d.Offset,
		}
		if d.Pos != nil {
			issues[i].File = relativePath(d.Pos.File)
			issues[i].Line = d.Pos.Line
			issues[i].Column = d.Pos.Column
			issues[i].Source = d.Pos.Text
		}
	}

	r := reporter.New(w, reporter.Options{UseColors: opts.UseColors, PrintLines: true})
	r.PrintIssues(issues)
	r.PrintSummary(issues, reporter.Summary{Rules: len(result.Rules), FilesScanned: opts.Stats.FilesScanned})
	return nil
}
