package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/reporter"
	"github.com/yacobolo/utilcss/internal/tokens"
)

var generateCmd = &cobra.Command{
	Use:     "generate [globs...]",
	Aliases: []string{"gen"},
	Short:   "Generate CSS for the classes used in your files",
	Long: `Scan files matching the given globs (or the configured inputs) for
utility classes and write the CSS for every class that names a known rule.
Generated and gitignored files are skipped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("output", "o", "", "Write CSS to this file instead of stdout")
	f.String("tokens-css", "", "Also write the used design tokens as :root custom properties to this file")
	f.String("report", "text", "Report format: text|json")
	f.Bool("minify", true, "Minify the generated CSS")
	f.Bool("strict", false, "Exit 1 when any class fails to generate")
	f.BoolP("watch", "w", false, "Regenerate when input files change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := buildGenerateConfig(args)
	if err != nil {
		return err
	}

	log := newLogger()
	defer func() { _ = log.Sync() }()

	g, err := buildGenerator(log)
	if err != nil {
		return err
	}

	if config.Watch {
		return watch(cmd.Context(), config, log, func() error {
			return generateOnce(g, config, log)
		})
	}
	return generateOnce(g, config, log)
}

// generateOnce scans the inputs and writes the stylesheet, the token file and
// the report.
func generateOnce(g *utilcss.Generator, config generateConfig, log *zap.Logger) error {
	sources, stats, err := utilcss.ReadSources(config.Inputs)
	if err != nil {
		return fmt.Errorf("reading inputs: %w", err)
	}
	sources = withoutOutputs(sources, config)
	log.Debug("scanned inputs",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	collector := tokens.NewCollector()
	collector.Start()
	result := g.GenerateSources(sources, utilcss.WithMinify(config.Minify), utilcss.WithCollector(collector))
	collector.Stop()

	if err := writeOutput(config.Output, result.CSS); err != nil {
		return err
	}

	if config.TokensCSS != "" {
		css := collector.CSS()
		if config.Minify {
			css = utilcss.Minify(css)
		}
		if err := writeOutput(config.TokensCSS, css); err != nil {
			return err
		}
	}

	if !config.Quiet {
		// Keep stdout for the stylesheet when it goes there.
		var w io.Writer = os.Stderr
		if config.Output != "" && config.Report == utilcss.OutputJSON {
			w = os.Stdout
		}
		if err := utilcss.WriteReport(w, result, utilcss.ReportOptions{
			Format:    config.Report,
			UseColors: reporter.ShouldUseColors(config.Color),
			Stats:     stats,
		}); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if config.Strict && result.Err != nil {
		return fmt.Errorf("%d classes failed to generate", len(result.Errors()))
	}
	return nil
}

// withoutOutputs drops our own output files from the inputs.
func withoutOutputs(sources []utilcss.Source, config generateConfig) []utilcss.Source {
	skip := make(map[string]bool)
	for _, path := range []string{config.Output, config.TokensCSS} {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			skip[abs] = true
		}
	}

	out := sources[:0]
	for _, src := range sources {
		if abs, err := filepath.Abs(src.Path); err == nil && skip[abs] {
			continue
		}
		out = append(out, src)
	}
	return out
}

// writeOutput writes css to path, or to stdout when path is empty.
func writeOutput(path, css string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, css)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
