package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/utilcss"
	"github.com/yacobolo/utilcss/internal/rules"
	"github.com/yacobolo/utilcss/internal/tokens"
)

var k = koanf.New(".")

// defaultInputs are scanned when neither arguments nor config name any.
var defaultInputs = []string{"**/*.html", "**/*.templ"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".utilcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Flags last. Unchanged flags only fill keys nothing else has set.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UTILCSS_* prefix)
	if err := k.Load(env.Provider("UTILCSS_", ".", func(s string) string {
		// UTILCSS_OUTPUT -> output
		// UTILCSS_TOKENS_CSS -> tokens-css
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UTILCSS_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// generateConfig holds the settings of a generate run.
type generateConfig struct {
	Inputs    []string
	Output    string // empty writes to stdout
	TokensCSS string // used-only token file, empty to skip
	Report    utilcss.OutputFormat
	Minify    bool
	Strict    bool
	Watch     bool
	Quiet     bool
	Color     bool
}

// buildGenerateConfig constructs the run settings from koanf state.
func buildGenerateConfig(args []string) (generateConfig, error) {
	report, err := utilcss.ParseOutputFormat(getString("report", "text"))
	if err != nil {
		return generateConfig{}, err
	}

	config := generateConfig{
		Inputs:    getStrings("inputs", defaultInputs),
		Output:    getString("output", ""),
		TokensCSS: getString("tokens-css", ""),
		Report:    report,
		Minify:    getBool("minify", true),
		Strict:    getBool("strict", false),
		Watch:     getBool("watch", false),
		Quiet:     getBool("quiet", false),
		Color:     getBool("color", false),
	}
	if len(args) > 0 {
		config.Inputs = args
	}
	return config, nil
}

// newLogger builds the console logger: warnings by default, debug output
// with --verbose, nothing with --quiet.
func newLogger() *zap.Logger {
	if getBool("quiet", false) {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if getBool("verbose", false) {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// buildGenerator creates a generator with the configured token file and
// components.
func buildGenerator(log *zap.Logger) (*utilcss.Generator, error) {
	table := tokens.Default()
	if path := getString("tokens", ""); path != "" {
		extra, err := tokens.LoadTOMLFile(path)
		if err != nil {
			return nil, err
		}
		table.Merge(extra)
		log.Debug("loaded tokens", zap.String("file", path), zap.Int("count", extra.Len()))
	}

	registry := rules.NewRegistry()
	components, err := loadComponents()
	if err != nil {
		return nil, err
	}
	registry.RegisterComponents(components)

	return utilcss.New(
		utilcss.WithLogger(log),
		utilcss.WithTokens(table),
		utilcss.WithRegistry(registry),
	), nil
}

// loadComponents defines every component under the components key.
func loadComponents() (map[string]*rules.Component, error) {
	var defs map[string]rules.ComponentDefinition
	if err := k.Unmarshal("components", &defs); err != nil {
		return nil, fmt.Errorf("reading components: %w", err)
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*rules.Component, len(defs))
	for _, name := range names {
		c, err := rules.DefineComponent(defs[name])
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

// getString returns the value of key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStrings returns the list at key, or defaultVal when unset or empty.
func getStrings(key string, defaultVal []string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBool returns the value of key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
