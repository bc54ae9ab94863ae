package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss/internal/reporter"
	"github.com/yacobolo/utilcss/internal/shorthand"
)

var classCmd = &cobra.Command{
	Use:   "class <class>...",
	Short: "Print the CSS block of each class",
	Long: `Generate the minified CSS block for each class given as an argument.
Exits non-zero when any class fails to parse or generate.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runClass,
}

func runClass(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	g, err := buildGenerator(log)
	if err != nil {
		return err
	}

	var issues []reporter.Issue
	for _, class := range args {
		css, err := g.GenerateClass(class)
		if err != nil {
			issues = append(issues, classIssue(class, err))
			continue
		}
		if css != "" {
			fmt.Fprintln(cmd.OutOrStdout(), css)
		}
	}

	if len(issues) == 0 {
		return nil
	}
	r := reporter.New(os.Stderr, reporter.Options{
		UseColors:  reporter.ShouldUseColors(getBool("color", false)),
		PrintLines: true,
	})
	r.PrintIssues(issues)
	return fmt.Errorf("%d of %d classes failed", len(issues), len(args))
}

func classIssue(class string, err error) reporter.Issue {
	issue := reporter.Issue{
		Severity: reporter.SeverityError,
		Text:     err.Error(),
		Class:    class,
		Offset:   -1,
	}
	var perr *shorthand.ParseError
	if errors.As(err, &perr) {
		issue.Text = perr.Message
		issue.Class = perr.Input
		issue.Offset = perr.Offset
	}
	return issue
}
