package utilcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestPackageAPI(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() { SetLogger(consoleLogger()) })

	css, err := GenerateClass("text(base/1.5)")
	require.NoError(t, err)
	assert.Equal(t, `.text\(base\/1\.5\){font-size:base;line-height:1.5}`, css)

	expr, err := Parse("lg:hover:bg(blue-500)")
	require.NoError(t, err)
	assert.Equal(t, "bg", expr.Rule)
	assert.Len(t, expr.Modifiers, 2)

	assert.Equal(t, Generate([]string{"p(sm)"}), Generate([]string{"p(sm)", "p(sm)"}))
	assert.Equal(t, `.vbox\(gap-md\){display:flex;flex-direction:column;gap:var(--spacing-md)}`,
		GenerateText(`<section class="vbox(gap-md)">`))
}

func TestPackageComponents(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() { SetLogger(consoleLogger()) })

	chip, err := DefineComponent(ComponentDefinition{
		Base:     "inline-block r(full)",
		Variants: map[string]string{"info": "bg(blue-100) c(blue-900)"},
		Defaults: ComponentDefaults{Variant: "info"},
	})
	require.NoError(t, err)
	RegisterComponents(map[string]*Component{"api-test-chip": chip})

	css, err := GenerateClass("api-test-chip")
	require.NoError(t, err)
	assert.Equal(t, `.api-test-chip{display:inline-block;border-radius:var(--radius-full);`+
		`background-color:var(--color-blue-100);color:var(--color-blue-900)}`, css)
}

func TestPackageCollection(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() { SetLogger(consoleLogger()) })

	StartCollection()
	Generate([]string{"p(xl)", "text(md)", "shadow(invalid)"})
	StopCollection()

	want := ":root{--spacing-xl:32px;--font-md:16px}"
	assert.Equal(t, want, UsedTokensCSS())

	// Resolving while idle does not record.
	Generate([]string{"c(red-500)"})
	assert.Equal(t, want, UsedTokensCSS())

	// Starting again clears the log.
	StartCollection()
	_, err := GenerateClass("bg(blue-500)")
	require.NoError(t, err)
	StopCollection()
	assert.Equal(t, ":root{--color-blue-500:#3b82f6}", UsedTokensCSS())
}
