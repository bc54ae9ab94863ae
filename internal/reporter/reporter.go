// Package reporter prints generation diagnostics for humans.
package reporter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Severities understood by the reporter.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one diagnostic to print.
type Issue struct {
	Severity string
	Text     string
	Class    string
	Offset   int // byte offset into Class, -1 when the whole class is at fault

	// Optional source position of the class.
	File   string
	Line   int
	Column int
	Source string
}

// Summary is printed after the issues.
type Summary struct {
	Rules        int
	FilesScanned int
}

// Options configures a Reporter.
type Options struct {
	UseColors  bool
	PrintLines bool // print the source line (or class) with a caret
}

// Reporter handles formatting and outputting diagnostics
type Reporter struct {
	w          io.Writer
	useColors  bool
	printLines bool
}

// New creates a reporter writing to w.
func New(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:          w,
		useColors:  opts.UseColors,
		printLines: opts.PrintLines,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stderr.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues sorted by file, line and column. Issues without
// a position keep their order and come first.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].File != issues[j].File {
			return issues[i].File < issues[j].File
		}
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		return issues[i].Column < issues[j].Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats one issue as "file:line:col: severity: message (class)"
func (r *Reporter) printIssue(issue Issue) {
	style := styleWarning
	if issue.Severity == SeverityError {
		style = styleError
	}

	location := issue.Class + ":"
	if issue.File != "" {
		location = fmt.Sprintf("%s:%d:%d:", issue.File, issue.Line, issue.Column)
	}

	classSuffix := ""
	if issue.File != "" && issue.Class != "" {
		classSuffix = fmt.Sprintf(" (%s)", issue.Class)
	}

	fmt.Fprintf(r.w, "%s %s %s%s\n",
		r.paint(styleLocation, location),
		r.paint(style, issue.Severity+":"),
		issue.Text,
		r.paint(styleClass, classSuffix))

	if !r.printLines {
		return
	}

	switch {
	case issue.Offset >= 0 && issue.Class != "":
		// Parse errors point into the class itself.
		fmt.Fprintf(r.w, "\t%s\n", issue.Class)
		caret := r.buildCaretIndicator(issue.Class, issue.Offset+1)
		fmt.Fprintf(r.w, "\t%s\n", r.paint(styleWarning, caret))
	case issue.Source != "":
		fmt.Fprintf(r.w, "\t%s\n", issue.Source)
		caret := r.buildCaretIndicator(issue.Source, issue.Column)
		fmt.Fprintf(r.w, "\t%s\n", r.paint(styleWarning, caret))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the 1-based
// column, copying tabs from the line so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the rule and issue counts.
func (r *Reporter) PrintSummary(issues []Issue, summary Summary) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	if len(issues) > 0 {
		fmt.Fprintln(r.w, "")
	}

	line := fmt.Sprintf("%s generated", pluralizeCount(summary.Rules, "rule", "rules"))
	if summary.FilesScanned > 0 {
		line += fmt.Sprintf(" from %s", pluralizeCount(summary.FilesScanned, "file", "files"))
	}

	switch {
	case errors > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n", line,
			r.paint(styleError, pluralizeCount(errors, "error", "errors")),
			pluralizeCount(warnings, "warning", "warnings"))
	case warnings > 0:
		fmt.Fprintf(r.w, "%s (%s)\n", line,
			r.paint(styleWarning, pluralizeCount(warnings, "warning", "warnings")))
	default:
		fmt.Fprintln(r.w, r.paint(styleSummary, line))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
