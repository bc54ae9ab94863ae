package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/utilcss/internal/shorthand"
)

// ComponentDefinition describes an aggregate rule built from other classes.
// Every field holds whitespace separated class strings.
type ComponentDefinition struct {
	Base     string            `koanf:"base" json:"base"`
	Variants map[string]string `koanf:"variants" json:"variants,omitempty"`
	Sizes    map[string]string `koanf:"sizes" json:"sizes,omitempty"`
	Defaults ComponentDefaults `koanf:"defaults" json:"defaults"`
}

// ComponentDefaults selects the variant and size used when a class omits them.
type ComponentDefaults struct {
	Variant string `koanf:"variant" json:"variant,omitempty"`
	Size    string `koanf:"size" json:"size,omitempty"`
}

// Component is a validated, pre-parsed component definition.
type Component struct {
	def      ComponentDefinition
	base     []*shorthand.Expr
	variants map[string][]*shorthand.Expr
	sizes    map[string][]*shorthand.Expr
}

// DefineComponent validates def and parses every class it refers to.
// Classes inside a component may not carry modifiers.
func DefineComponent(def ComponentDefinition) (*Component, error) {
	c := &Component{
		def:      def,
		variants: make(map[string][]*shorthand.Expr, len(def.Variants)),
		sizes:    make(map[string][]*shorthand.Expr, len(def.Sizes)),
	}

	var err error
	if c.base, err = parsePiece(def.Base); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	for name, classes := range def.Variants {
		if c.variants[name], err = parsePiece(classes); err != nil {
			return nil, fmt.Errorf("variant %q: %w", name, err)
		}
	}
	for name, classes := range def.Sizes {
		if c.sizes[name], err = parsePiece(classes); err != nil {
			return nil, fmt.Errorf("size %q: %w", name, err)
		}
	}

	if v := def.Defaults.Variant; v != "" {
		if _, ok := c.variants[v]; !ok {
			return nil, fmt.Errorf("default variant %q is not defined", v)
		}
	}
	if s := def.Defaults.Size; s != "" {
		if _, ok := c.sizes[s]; !ok {
			return nil, fmt.Errorf("default size %q is not defined", s)
		}
	}

	return c, nil
}

// Definition returns the definition the component was built from.
func (c *Component) Definition() ComponentDefinition {
	return c.def
}

// VariantNames returns the defined variants, sorted.
func (c *Component) VariantNames() []string {
	return sortedKeys(c.variants)
}

// SizeNames returns the defined sizes, sorted.
func (c *Component) SizeNames() []string {
	return sortedKeys(c.sizes)
}

func parsePiece(classes string) ([]*shorthand.Expr, error) {
	var out []*shorthand.Expr
	for _, class := range strings.Fields(classes) {
		expr, err := shorthand.Parse(class)
		if err != nil {
			return nil, err
		}
		if len(expr.Modifiers) > 0 {
			return nil, fmt.Errorf("class %q: modifiers are not allowed inside components", class)
		}
		out = append(out, expr)
	}
	return out, nil
}

// handler expands name(variant/size) into base, variant and size classes and
// merges their declarations in that order.
func (c *Component) handler(name string) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		variant, size := c.def.Defaults.Variant, c.def.Defaults.Size

		pos := 0
		for _, a := range args {
			switch {
			case a.Key == "variant":
				variant = a.Value
			case a.Key == "size":
				size = a.Value
			case a.Named():
				ctx.Warn("component %q: unknown argument %q", name, a.Key)
			case pos == 0:
				variant = a.Value
				pos++
			case pos == 1:
				size = a.Value
				pos++
			default:
				ctx.Warn("component %q: extra argument %q ignored", name, a.Value)
			}
		}

		pieces := [][]*shorthand.Expr{c.base}
		if variant != "" {
			v, ok := c.variants[variant]
			if !ok {
				ctx.Warn("component %q has no variant %q", name, variant)
			}
			pieces = append(pieces, v)
		}
		if size != "" {
			s, ok := c.sizes[size]
			if !ok {
				ctx.Warn("component %q has no size %q", name, size)
			}
			pieces = append(pieces, s)
		}

		var out Declarations
		for _, piece := range pieces {
			for _, expr := range piece {
				decls, err := ctx.Expand(expr)
				if err != nil {
					return nil, err
				}
				out.Merge(decls)
			}
		}
		return out, nil
	}
}

func sortedKeys(m map[string][]*shorthand.Expr) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
