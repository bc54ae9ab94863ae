package utilcss

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/utilcss/internal/rules"
	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return New(WithLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.WarnLevel))))
}

func observedGenerator() (*Generator, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return New(WithLogger(zap.New(core))), logs
}

func TestGenerateClassScenarios(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		class string
		want  string
	}{
		{class: "text(base)", want: `.text\(base\){font-size:base}`},
		{class: "text(md)", want: `.text\(md\){font-size:var(--font-md)}`},
		{class: "text(base/1.5)", want: `.text\(base\/1\.5\){font-size:base;line-height:1.5}`},
		{class: "hover:bg(blue-500)", want: `.hover\:bg\(blue-500\):hover{background-color:var(--color-blue-500)}`},
		{class: "p(sm)!", want: `.p\(sm\)\!{padding:var(--spacing-sm) !important}`},
		{class: "lg:p(sm)", want: `@media (min-width:1024px){.lg\:p\(sm\){padding:var(--spacing-sm)}}`},
		{class: "group-hover:c(red-500)", want: `.group:hover .group-hover\:c\(red-500\){color:var(--color-red-500)}`},
		{class: "c(white.8)", want: `.c\(white\.8\){color:color-mix(in srgb, var(--color-white) 80%, transparent)}`},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, err := g.GenerateClass(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := g.GenerateClass(tt.class)
			require.NoError(t, err)
			assert.Equal(t, got, again, "GenerateClass must be deterministic")
		})
	}
}

func TestGenerateClassErrors(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.GenerateClass("bg(blue-500")
	var perr *shorthand.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Offset)

	_, err = g.GenerateClass("nonexistent-rule")
	assert.ErrorIs(t, err, ErrUnknownRule)

	_, err = g.GenerateClass("shadow(2/4/8/black.5)")
	var herr *rules.HandlerError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, "shadow", herr.Rule)
}

func TestGenerateShadow(t *testing.T) {
	g := newTestGenerator(t)

	css := g.Generate([]string{"shadow(sm)"}).CSS
	assert.Contains(t, css, "box-shadow:0 2px 4px -1px rgb(0 0 0 / 0.06), 0 1px 2px -1px rgb(0 0 0 / 0.04)")

	css = g.Generate([]string{"shadow(invalid)"}).CSS
	assert.Contains(t, css, "box-shadow:invalid")
}

func TestGenerateUnknownRuleWarnsOnce(t *testing.T) {
	g, logs := observedGenerator()

	res := g.Generate([]string{"nonexistent-rule"})
	assert.Empty(t, res.CSS)
	assert.Empty(t, res.Rules)
	assert.NoError(t, res.Err)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unknown rule, class skipped", entry.Message)
	assert.Equal(t, "nonexistent-rule", entry.ContextMap()["class"])

	require.Len(t, res.Warnings(), 1)
	assert.Equal(t, `unknown rule "nonexistent-rule"`, res.Warnings()[0].Text)
}

func TestGenerateIsolatesFailures(t *testing.T) {
	g, logs := observedGenerator()

	res := g.Generate([]string{"bg(blue-500", "p(sm)", "shadow(2/4)", "c(red-500)"})

	assert.Equal(t, `.p\(sm\){padding:var(--spacing-sm)}.c\(red-500\){color:var(--color-red-500)}`, res.CSS)
	require.Error(t, res.Err)
	assert.Len(t, multierr.Errors(res.Err), 2)

	var perr *shorthand.ParseError
	assert.True(t, errors.As(res.Err, &perr))
	var herr *rules.HandlerError
	assert.True(t, errors.As(res.Err, &herr))

	errs := res.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "bg(blue-500", errs[0].Class)
	assert.Equal(t, "unclosed '('", errs[0].Text)
	assert.Equal(t, 2, errs[0].Offset)
	assert.Equal(t, -1, errs[1].Offset)

	assert.Equal(t, 2, logs.Len())
}

func TestGenerateRejectsBlockBreakingArguments(t *testing.T) {
	g := newTestGenerator(t)

	res := g.Generate([]string{"c(red}.evil{color)", "c(red;font-size)", "p(sm)"})

	assert.Equal(t, `.p\(sm\){padding:var(--spacing-sm)}`, res.CSS)
	require.Error(t, res.Err)
	assert.Len(t, multierr.Errors(res.Err), 2)

	errs := res.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "invalid character '}'", errs[0].Text)
	assert.Equal(t, 5, errs[0].Offset)
	assert.Equal(t, "invalid character ';'", errs[1].Text)
}

func TestGenerateDeduplicates(t *testing.T) {
	g := newTestGenerator(t)

	once := g.Generate([]string{"p(sm)"})
	twice := g.Generate([]string{"p(sm)", "p(sm)", " p(sm) "})
	assert.Equal(t, once.CSS, twice.CSS)
	require.Len(t, twice.Rules, 1)
	assert.Equal(t, 0, twice.Rules[0].SourceOrder)
}

func TestGenerateOrdering(t *testing.T) {
	g := newTestGenerator(t)

	res := g.Generate([]string{
		"lg:p(md)",
		"p(sm)",
		"md:p(lg)",
		"c(red-500)",
		"lg:c(blue-500)",
		"hover:bg(blue-500)",
	}, WithMinify(false))

	want := `.p\(sm\) {
  padding: var(--spacing-sm);
}

.c\(red-500\) {
  color: var(--color-red-500);
}

.hover\:bg\(blue-500\):hover {
  background-color: var(--color-blue-500);
}

@media (min-width: 768px) {
  .md\:p\(lg\) {
    padding: var(--spacing-lg);
  }
}

@media (min-width: 1024px) {
  .lg\:p\(md\) {
    padding: var(--spacing-md);
  }

  .lg\:c\(blue-500\) {
    color: var(--color-blue-500);
  }
}
`
	assert.Equal(t, want, res.CSS)

	var order []int
	for _, r := range res.Rules {
		order = append(order, r.SourceOrder)
	}
	assert.Equal(t, []int{1, 3, 5, 2, 0, 4}, order)

	minified := g.Generate([]string{"lg:p(md)", "p(sm)"}).CSS
	assert.Equal(t, `.p\(sm\){padding:var(--spacing-sm)}@media (min-width:1024px){.lg\:p\(md\){padding:var(--spacing-md)}}`, minified)
}

func TestGenerateText(t *testing.T) {
	g, logs := observedGenerator()

	res := g.GenerateText(`<div class="hbox(pack+gap-lg) c(white.8)">Hello world</div>
<p class="p">plain</p>`)

	want := `.hbox\(pack\+gap-lg\){display:flex;flex-direction:row;align-items:center;justify-content:center;gap:var(--spacing-lg)}` +
		`.c\(white\.8\){color:color-mix(in srgb, var(--color-white) 80%, transparent)}`
	assert.Equal(t, want, res.CSS)
	assert.Empty(t, res.Diagnostics)
	assert.Zero(t, logs.Len(), "ordinary words must not warn")
}

func TestGenerateComponent(t *testing.T) {
	g := newTestGenerator(t)

	btn, err := rules.DefineComponent(rules.ComponentDefinition{
		Base:     "hbox(pack) r(md)",
		Variants: map[string]string{"primary": "bg(blue-500) c(white)", "ghost": "bg(transparent)"},
		Sizes:    map[string]string{"sm": "p(xs/sm)"},
		Defaults: rules.ComponentDefaults{Variant: "primary", Size: "sm"},
	})
	require.NoError(t, err)
	g.Registry().Register("btn", btn)

	css, err := g.GenerateClass("btn(ghost)")
	require.NoError(t, err)
	assert.Equal(t, `.btn\(ghost\){display:flex;flex-direction:row;align-items:center;justify-content:center;`+
		`border-radius:var(--radius-md);background-color:transparent;padding:var(--spacing-xs) var(--spacing-sm)}`, css)

	res := g.Generate([]string{"btn"})
	require.Len(t, res.Rules, 1)
	assert.Equal(t, rules.TierComponent, res.Rules[0].Tier)
}

func TestGenerateLegacyWarns(t *testing.T) {
	g, logs := observedGenerator()

	res := g.Generate([]string{"round(md)"})
	assert.Equal(t, `.round\(md\){border-radius:var(--radius-md)}`, res.CSS)
	require.Len(t, res.Warnings(), 1)
	assert.Equal(t, `rule "round" is deprecated, use "r" instead`, res.Warnings()[0].Text)
	assert.Equal(t, 1, logs.FilterMessage("class warning").Len())
}

func TestGenerateCollector(t *testing.T) {
	g := newTestGenerator(t)
	c := tokens.NewCollector()

	g.Generate([]string{"p(xl)"}, WithCollector(c))
	assert.Empty(t, c.Used(), "idle collector must not record")

	c.Start()
	g.Generate([]string{"p(xl)", "text(md/1.5)", "text(base)"}, WithCollector(c))
	c.Stop()
	g.Generate([]string{"c(red-500)"}, WithCollector(c))

	assert.Equal(t, ":root {\n  --spacing-xl: 32px;\n  --font-md: 16px;\n}\n", c.CSS())
}

func TestGenerateCustomTokens(t *testing.T) {
	table := tokens.Default()
	table.Set(tokens.Font, "base", "16px")
	g := New(WithTokens(table))

	css, err := g.GenerateClass("text(base)")
	require.NoError(t, err)
	assert.Equal(t, `.text\(base\){font-size:var(--font-base)}`, css)
	assert.Contains(t, g.TokensCSS(), "--font-base:16px")
}
