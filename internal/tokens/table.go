// Package tokens holds the design token tables and resolves token names used
// inside utility classes to CSS values.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Category groups tokens of one kind. The category name is also the custom
// property prefix: font + md → --font-md.
type Category string

// Token categories
const (
	Spacing Category = "spacing"
	Font    Category = "font"
	Color   Category = "color"
	Radius  Category = "radius"
	Shadow  Category = "shadow"
	Weight  Category = "weight"
)

// Categories lists every category in output order.
var Categories = []Category{Spacing, Font, Color, Radius, Shadow, Weight}

// inlineCategories resolve to the token value itself instead of a var() reference.
var inlineCategories = map[Category]bool{
	Shadow: true,
	Weight: true,
}

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown token category %q", name)
}

// Token is a named design-system value.
type Token struct {
	Category Category
	Name     string
	Value    string
}

// Property returns the custom property name, e.g. "--font-md".
func (t Token) Property() string {
	return "--" + string(t.Category) + "-" + t.Name
}

// Ref returns what a class resolving this token emits: a var() reference,
// or the raw value for inline categories.
func (t Token) Ref() string {
	if inlineCategories[t.Category] {
		return t.Value
	}
	return "var(" + t.Property() + ")"
}

// Table is a static per-category token mapping. It is built once at
// configuration time and only read afterwards.
type Table struct {
	entries map[Category]map[string]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[Category]map[string]string)}
}

// Set adds or replaces a token.
func (t *Table) Set(category Category, name, value string) {
	m, ok := t.entries[category]
	if !ok {
		m = make(map[string]string)
		t.entries[category] = m
	}
	m[name] = value
}

// Lookup finds a token by category and name.
func (t *Table) Lookup(category Category, name string) (Token, bool) {
	value, ok := t.entries[category][name]
	if !ok {
		return Token{}, false
	}
	return Token{Category: category, Name: name, Value: value}, true
}

// Merge copies every token of other into t, replacing existing names.
func (t *Table) Merge(other *Table) {
	for category, m := range other.entries {
		for name, value := range m {
			t.Set(category, name, value)
		}
	}
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	n := 0
	for _, m := range t.entries {
		n += len(m)
	}
	return n
}

// All returns every token, ordered by category then natural name order.
func (t *Table) All() []Token {
	var out []Token
	for category, m := range t.entries {
		for name, value := range m {
			out = append(out, Token{Category: category, Name: name, Value: value})
		}
	}
	SortTokens(out)
	return out
}

// SortTokens orders tokens by category (in Categories order) and then by
// natural name order, so spacing-2 sorts before spacing-10.
func SortTokens(toks []Token) {
	rank := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		rank[c] = i
	}
	sort.Slice(toks, func(i, j int) bool {
		if toks[i].Category != toks[j].Category {
			return rank[toks[i].Category] < rank[toks[j].Category]
		}
		return natural.Less(toks[i].Name, toks[j].Name)
	})
}

// RenderCSS renders custom property declarations for toks inside a :root
// block. It returns an empty string when toks is empty.
func RenderCSS(toks []Token) string {
	if len(toks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range toks {
		fmt.Fprintf(&b, "  %s: %s;\n", tok.Property(), tok.Value)
	}
	b.WriteString("}\n")
	return b.String()
}
