package utilcss

import (
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/yacobolo/utilcss/internal/rules"
	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// Re-exported so callers of the package functions need no internal imports.
type (
	Expr                = shorthand.Expr
	ComponentDefinition = rules.ComponentDefinition
	ComponentDefaults   = rules.ComponentDefaults
	Component           = rules.Component

	Registry      = rules.Registry
	Collector     = tokens.Collector
	TokenTable    = tokens.Table
	Token         = tokens.Token
	TokenCategory = tokens.Category
)

// Token categories.
const (
	CategorySpacing = tokens.Spacing
	CategoryFont    = tokens.Font
	CategoryColor   = tokens.Color
	CategoryRadius  = tokens.Radius
	CategoryShadow  = tokens.Shadow
	CategoryWeight  = tokens.Weight
)

// NewRegistry returns a registry with the built-in rules and no components.
func NewRegistry() *Registry {
	return rules.NewRegistry()
}

// NewCollector returns an idle token usage collector.
func NewCollector() *Collector {
	return tokens.NewCollector()
}

// NewTokenTable returns an empty token table.
func NewTokenTable() *TokenTable {
	return tokens.NewTable()
}

// DefaultTokens returns a fresh copy of the built-in token table.
func DefaultTokens() *TokenTable {
	return tokens.Default()
}

// LoadTokensTOML reads a token table from TOML, one table per category.
func LoadTokensTOML(r io.Reader) (*TokenTable, error) {
	return tokens.LoadTOML(r)
}

// LoadTokensTOMLFile reads a token table from a TOML file.
func LoadTokensTOMLFile(path string) (*TokenTable, error) {
	return tokens.LoadTOMLFile(path)
}

var (
	defaultMu        sync.RWMutex
	defaultRegistry  = rules.NewRegistry()
	defaultCollector = tokens.NewCollector()
	defaultGenerator = New(WithRegistry(defaultRegistry), WithLogger(consoleLogger()))
)

// consoleLogger reports warnings on stderr, so a mistyped class is visible
// without any setup.
func consoleLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// SetLogger replaces the logger of the package-level generator.
func SetLogger(log *zap.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultGenerator = New(WithRegistry(defaultRegistry), WithLogger(log))
}

func generator() *Generator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGenerator
}

// withDefaults records usage in the process-wide collector unless the caller
// passes its own.
func withDefaults(opts []Option) []Option {
	return append([]Option{WithCollector(defaultCollector)}, opts...)
}

// Parse parses a single class string.
func Parse(class string) (*Expr, error) {
	return shorthand.Parse(class)
}

// Generate returns the stylesheet for classes. Problems with individual
// classes are logged and the classes skipped.
func Generate(classes []string, opts ...Option) string {
	return generator().Generate(classes, withDefaults(opts)...).CSS
}

// GenerateText returns the stylesheet for the classes found in text. Words
// that do not name a rule are dropped without a warning.
func GenerateText(text string, opts ...Option) string {
	return generator().GenerateText(text, withDefaults(opts)...).CSS
}

// GenerateClass returns the minified block for a single class.
func GenerateClass(class string) (string, error) {
	return generator().GenerateClass(class, WithCollector(defaultCollector))
}

// DefineComponent validates def and returns a component ready to register.
func DefineComponent(def ComponentDefinition) (*Component, error) {
	return rules.DefineComponent(def)
}

// RegisterComponents makes components available to subsequent calls.
// A component shadows a built-in rule of the same name.
func RegisterComponents(m map[string]*Component) {
	defaultRegistry.RegisterComponents(m)
}

// StartCollection clears the token usage log and starts recording.
// Calling it while already collecting discards what was recorded so far.
func StartCollection() {
	defaultCollector.Start()
}

// StopCollection stops recording token usage.
func StopCollection() {
	defaultCollector.Stop()
}

// UsedTokensCSS returns a minified :root block declaring only the tokens
// recorded by the last collection.
func UsedTokensCSS() string {
	return Minify(defaultCollector.CSS())
}
