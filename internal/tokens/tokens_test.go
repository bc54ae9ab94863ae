package tokens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := NewResolver(Default(), nil)

	tests := []struct {
		name     string
		category Category
		input    string
		want     string
	}{
		{name: "font token", category: Font, input: "md", want: "var(--font-md)"},
		{name: "spacing token", category: Spacing, input: "lg", want: "var(--spacing-lg)"},
		{name: "color scale", category: Color, input: "blue-500", want: "var(--color-blue-500)"},
		{name: "inline shadow", category: Shadow, input: "sm", want: "0 2px 4px -1px rgb(0 0 0 / 0.06), 0 1px 2px -1px rgb(0 0 0 / 0.04)"},
		{name: "inline weight", category: Weight, input: "bold", want: "700"},
		{name: "literal passthrough", category: Font, input: "base", want: "base"},
		{name: "invalid passthrough", category: Shadow, input: "invalid", want: "invalid"},
		{name: "unit passthrough", category: Spacing, input: "12px", want: "12px"},
		{name: "multi part", category: Spacing, input: "lg/xl", want: "var(--spacing-lg) var(--spacing-xl)"},
		{name: "multi part mixed", category: Spacing, input: "sm/3px", want: "var(--spacing-sm) 3px"},
		{name: "wrong category", category: Color, input: "md", want: "md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.category, tt.input))
		})
	}
}

func TestResolveFallbackIsIdentity(t *testing.T) {
	r := NewResolver(Default(), nil)
	for _, c := range Categories {
		for _, name := range []string{"nope", "base", "42", "calc(1px+2px)", "#abcdef"} {
			assert.Equal(t, name, r.Resolve(c, name), "category %s", c)
		}
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	r := NewResolver(Default(), c)

	// Idle: resolution works, nothing is logged.
	assert.Equal(t, "var(--font-md)", r.Resolve(Font, "md"))
	assert.Empty(t, c.Used())

	c.Start()
	assert.True(t, c.Collecting())
	r.Resolve(Font, "md")
	r.Resolve(Spacing, "xl")
	r.Resolve(Spacing, "xs")
	r.Resolve(Font, "base") // miss, not a token
	r.Resolve(Font, "md")   // logged once
	c.Stop()
	assert.False(t, c.Collecting())

	r.Resolve(Color, "white")

	used := c.Used()
	require.Len(t, used, 3)
	assert.Equal(t, Token{Category: Spacing, Name: "xl", Value: "32px"}, used[0])
	assert.Equal(t, Token{Category: Spacing, Name: "xs", Value: "4px"}, used[1])
	assert.Equal(t, Token{Category: Font, Name: "md", Value: "16px"}, used[2])

	assert.Equal(t, ":root {\n  --spacing-xl: 32px;\n  --spacing-xs: 4px;\n  --font-md: 16px;\n}\n", c.CSS())
}

func TestCollectorRestartClearsLog(t *testing.T) {
	c := NewCollector()
	r := NewResolver(Default(), c)

	c.Start()
	r.Resolve(Font, "md")
	c.Start()
	r.Resolve(Font, "lg")
	c.Stop()

	used := c.Used()
	require.Len(t, used, 1)
	assert.Equal(t, "lg", used[0].Name)
}

func TestCollectorEmptyCSS(t *testing.T) {
	assert.Equal(t, "", NewCollector().CSS())
}

func TestSortTokensNatural(t *testing.T) {
	toks := []Token{
		{Category: Color, Name: "gray-500"},
		{Category: Color, Name: "gray-50"},
		{Category: Spacing, Name: "10"},
		{Category: Spacing, Name: "2"},
	}
	SortTokens(toks)

	var names []string
	for _, tok := range toks {
		names = append(names, string(tok.Category)+":"+tok.Name)
	}
	assert.Equal(t, []string{"spacing:2", "spacing:10", "color:gray-50", "color:gray-500"}, names)
}

func TestLoadTOML(t *testing.T) {
	input := `
[spacing]
3xl = "64px"

[color]
brand = "#7c3aed"
white = "#fefefe"
`
	extra, err := LoadTOML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, extra.Len())

	table := Default()
	table.Merge(extra)

	tok, ok := table.Lookup(Color, "white")
	require.True(t, ok)
	assert.Equal(t, "#fefefe", tok.Value)

	r := NewResolver(table, nil)
	assert.Equal(t, "var(--color-brand)", r.Resolve(Color, "brand"))
	assert.Equal(t, "var(--spacing-3xl)", r.Resolve(Spacing, "3xl"))
}

func TestLoadTOMLErrors(t *testing.T) {
	_, err := LoadTOML(strings.NewReader("[sizes]\nbig = \"1px\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown token category "sizes"`)

	_, err = LoadTOML(strings.NewReader("[color]\nbrand = \"\"\n"))
	require.Error(t, err)

	_, err = LoadTOML(strings.NewReader("not toml ["))
	require.Error(t, err)
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.toml")
	require.NoError(t, os.WriteFile(path, []byte("[radius]\npill = \"999px\"\n"), 0644))

	table, err := LoadTOMLFile(path)
	require.NoError(t, err)
	tok, ok := table.Lookup(Radius, "pill")
	require.True(t, ok)
	assert.Equal(t, "999px", tok.Value)

	_, err = LoadTOMLFile(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}
