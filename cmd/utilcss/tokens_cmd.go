package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [globs...]",
	Short: "Print design tokens as CSS custom properties",
	Long: `Print the design token table as a :root block of custom properties.
With --used-only, only the tokens referenced by classes in the matched files
(or the configured inputs) are printed.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTokens,
}

func init() {
	f := tokensCmd.Flags()
	f.Bool("used-only", false, "Only print tokens used by the scanned files")
	f.Bool("minify", false, "Minify the output")
}

func runTokens(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	g, err := buildGenerator(log)
	if err != nil {
		return err
	}
	minify := getBool("minify", false)
	w := cmd.OutOrStdout()

	if !getBool("used-only", false) {
		_, err := io.WriteString(w, g.TokensCSS(utilcss.WithMinify(minify)))
		return err
	}

	inputs := getStrings("inputs", defaultInputs)
	if len(args) > 0 {
		inputs = args
	}
	sources, _, err := utilcss.ReadSources(inputs)
	if err != nil {
		return fmt.Errorf("reading inputs: %w", err)
	}

	collector := tokens.NewCollector()
	collector.Start()
	g.GenerateSources(sources, utilcss.WithCollector(collector))
	collector.Stop()

	css := collector.CSS()
	if minify {
		css = utilcss.Minify(css)
	}
	_, err = io.WriteString(w, css)
	return err
}
