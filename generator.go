package utilcss

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/utilcss/internal/rules"
	"github.com/yacobolo/utilcss/internal/selector"
	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// ErrUnknownRule is returned by GenerateClass when no tier knows the rule.
var ErrUnknownRule = errors.New("unknown rule")

// Rule is one generated CSS rule.
type Rule struct {
	Class        string // class exactly as written
	Selector     string
	Media        string // media condition, empty outside breakpoints
	Width        int    // breakpoint width used for ordering
	Declarations rules.Declarations
	Important    bool
	SourceOrder  int // index of the first occurrence in the input
	Tier         rules.Tier
}

// Result is the outcome of a batch generation.
type Result struct {
	CSS         string
	Rules       []Rule // in output order
	Candidates  int    // class strings considered
	Diagnostics []Diagnostic
	Err         error // every per-class error, combined with multierr
}

// Warnings returns the warning diagnostics.
func (r *Result) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

// Errors returns the error diagnostics.
func (r *Result) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

func (r *Result) filter(severity string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}

// Generator turns class strings into a stylesheet. It is safe for
// concurrent use as long as calls do not share a collector.
type Generator struct {
	log      *zap.Logger
	registry *rules.Registry
	tokens   *tokens.Table
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for warnings. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithTokens replaces the default token table.
func WithTokens(t *tokens.Table) GeneratorOption {
	return func(g *Generator) {
		if t != nil {
			g.tokens = t
		}
	}
}

// WithRegistry replaces the default rule registry.
func WithRegistry(r *rules.Registry) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// New creates a generator with the built-in rules and default tokens.
func New(opts ...GeneratorOption) *Generator {
	g := &Generator{
		log:      zap.NewNop(),
		registry: rules.NewRegistry(),
		tokens:   tokens.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.Named("generator")
	return g
}

// Registry returns the registry the generator resolves rules with.
func (g *Generator) Registry() *rules.Registry {
	return g.registry
}

// Tokens returns the token table.
func (g *Generator) Tokens() *tokens.Table {
	return g.tokens
}

// TokensCSS renders custom properties for every token in the table.
func (g *Generator) TokensCSS(opts ...Option) string {
	o := buildOptions(opts)
	return o.render(tokens.RenderCSS(g.tokens.All()))
}

// Option configures a single generation call.
type Option func(*options)

type options struct {
	minify    bool
	collector *tokens.Collector
}

// WithMinify toggles minified output. Output is minified by default.
func WithMinify(minify bool) Option {
	return func(o *options) { o.minify = minify }
}

// WithCollector records token usage of the call in c.
func WithCollector(c *tokens.Collector) Option {
	return func(o *options) { o.collector = c }
}

func buildOptions(opts []Option) options {
	o := options{minify: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) render(css string) string {
	if o.minify {
		return Minify(css)
	}
	return css
}

// Generate builds a stylesheet for classes. Classes that fail to parse or
// compute are reported on the result and skipped; the rest still generate.
func (g *Generator) Generate(classes []string, opts ...Option) *Result {
	return g.generate(classes, false, buildOptions(opts))
}

// GenerateText extracts candidate classes from a source blob such as HTML
// or a template and generates CSS for those that name a known rule.
//
// Unlike Generate, a candidate whose rule is unknown, or that yields no
// declarations, is dropped at debug level instead of producing a warning:
// most words in markup are not classes. Handler errors and warnings of the
// remaining candidates are reported as in Generate.
func (g *Generator) GenerateText(text string, opts ...Option) *Result {
	return g.generate(shorthand.Extract(text), true, buildOptions(opts))
}

// GenerateClass returns the minified block for a single class.
func (g *Generator) GenerateClass(class string, opts ...Option) (string, error) {
	o := buildOptions(append([]Option{WithMinify(true)}, opts...))

	expr, err := shorthand.Parse(class)
	if err != nil {
		return "", err
	}
	rule, found, warnings, err := g.compute(expr, 0, o.collector)
	for _, w := range warnings {
		g.log.Warn("class warning", zap.String("class", expr.Raw), zap.String("warning", w))
	}
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("class %q: %w %q", expr.Raw, ErrUnknownRule, expr.Rule)
	}
	if len(rule.Declarations) == 0 {
		return "", nil
	}
	return o.render(render([]Rule{rule})), nil
}

func (g *Generator) generate(classes []string, lenient bool, o options) *Result {
	res := &Result{Candidates: len(classes)}
	seen := make(map[string]bool, len(classes))

	classSeen := make(map[string]bool, len(classes))

	var generated []Rule
	for i, class := range classes {
		if classSeen[class] {
			continue
		}
		classSeen[class] = true

		expr, err := shorthand.Parse(class)
		if err != nil {
			g.log.Warn("invalid class", zap.String("class", class), zap.Error(err))
			res.add(errorDiagnostic(class, err))
			res.Err = multierr.Append(res.Err, err)
			continue
		}

		rule, found, warnings, err := g.compute(expr, i, o.collector)
		if !found {
			if lenient {
				g.log.Debug("not a rule, dropped", zap.String("class", class))
				continue
			}
			g.log.Warn("unknown rule, class skipped", zap.String("class", class), zap.String("rule", expr.Rule))
			res.add(Diagnostic{
				Class:    class,
				Severity: SeverityWarning,
				Text:     fmt.Sprintf("unknown rule %q", expr.Rule),
				Offset:   -1,
			})
			continue
		}

		if lenient && err == nil && len(rule.Declarations) == 0 {
			// Plain words such as a <p> tag name a rule but carry no value.
			g.log.Debug("no declarations, dropped", zap.String("class", class))
			continue
		}
		for _, w := range warnings {
			g.log.Warn("class warning", zap.String("class", class), zap.String("warning", w))
			res.add(Diagnostic{Class: class, Severity: SeverityWarning, Text: w, Offset: -1})
		}
		if err != nil {
			g.log.Warn("class failed", zap.String("class", class), zap.Error(err))
			res.add(errorDiagnostic(class, err))
			res.Err = multierr.Append(res.Err, err)
			continue
		}
		if len(rule.Declarations) == 0 {
			continue
		}

		key := rule.Media + "\x00" + rule.Selector
		if seen[key] {
			g.log.Debug("duplicate selector dropped", zap.String("class", class))
			continue
		}
		seen[key] = true
		generated = append(generated, rule)
	}

	res.Rules = order(generated)
	res.CSS = o.render(render(res.Rules))
	return res
}

func (r *Result) add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// compute resolves and runs the handler for expr. found is false when no
// tier knows the rule.
func (g *Generator) compute(expr *shorthand.Expr, order int, collector *tokens.Collector) (Rule, bool, []string, error) {
	m := g.registry.Resolve(expr.Rule)
	if !m.Found {
		return Rule{}, false, nil, nil
	}

	ctx := rules.NewContext(g.registry, tokens.NewResolver(g.tokens, collector))
	decls, err := ctx.Apply(m, expr)
	if err != nil {
		return Rule{}, true, ctx.Warnings(), fmt.Errorf("class %q: %w", expr.Raw, err)
	}

	target := selector.Build(expr)
	return Rule{
		Class:        expr.Raw,
		Selector:     target.Selector,
		Media:        target.Media,
		Width:        target.Width,
		Declarations: decls,
		Important:    expr.Important,
		SourceOrder:  order,
		Tier:         m.Tier,
	}, true, ctx.Warnings(), nil
}

// order keeps plain rules in source order and moves breakpoint rules after
// them, grouped per media condition in ascending width.
func order(in []Rule) []Rule {
	out := make([]Rule, 0, len(in))

	type group struct {
		media string
		width int
		first int
		rules []Rule
	}
	var groups []*group
	byMedia := make(map[string]*group)

	for _, r := range in {
		if r.Media == "" {
			out = append(out, r)
			continue
		}
		grp, ok := byMedia[r.Media]
		if !ok {
			grp = &group{media: r.Media, width: r.Width, first: r.SourceOrder}
			byMedia[r.Media] = grp
			groups = append(groups, grp)
		}
		grp.rules = append(grp.rules, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].width != groups[j].width {
			return groups[i].width < groups[j].width
		}
		return groups[i].first < groups[j].first
	})
	for _, grp := range groups {
		out = append(out, grp.rules...)
	}
	return out
}

// render writes rules in readable form. Consecutive rules sharing a media
// condition share one @media block.
func render(list []Rule) string {
	var b strings.Builder
	for i := 0; i < len(list); {
		if i > 0 {
			b.WriteByte('\n')
		}
		media := list[i].Media
		if media == "" {
			writeBlock(&b, list[i], "")
			i++
			continue
		}

		fmt.Fprintf(&b, "@media %s {\n", media)
		for start := i; i < len(list) && list[i].Media == media; i++ {
			if i > start {
				b.WriteByte('\n')
			}
			writeBlock(&b, list[i], "  ")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeBlock(b *strings.Builder, r Rule, indent string) {
	b.WriteString(indent + r.Selector + " {\n")
	for _, d := range r.Declarations {
		b.WriteString(indent + "  " + d.Property + ": " + d.Value + ";\n")
	}
	b.WriteString(indent + "}\n")
}
