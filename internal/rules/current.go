package rules

import (
	"errors"
	"strings"

	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// currentHandlers returns the current (non-deprecated) rule set.
func currentHandlers() map[string]Handler {
	h := map[string]Handler{
		// Layout
		"hbox": hbox,
		"vbox": vbox,
		"grid": grid,
		"z":    single("z-index", tokens.Category(""), false),

		// Typography
		"text":   text,
		"weight": weight,

		// Color and decoration
		"c":       colorRule("color"),
		"bg":      colorRule("background-color"),
		"b":       border,
		"r":       lengthRule(tokens.Radius, "border-radius"),
		"shadow":  shadow,
		"opacity": single("opacity", tokens.Category(""), false),
		"cursor":  single("cursor", tokens.Category(""), false),

		// Spacing
		"p":   lengthRule(tokens.Spacing, "padding"),
		"px":  lengthRule(tokens.Spacing, "padding-left", "padding-right"),
		"py":  lengthRule(tokens.Spacing, "padding-top", "padding-bottom"),
		"pt":  lengthRule(tokens.Spacing, "padding-top"),
		"pr":  lengthRule(tokens.Spacing, "padding-right"),
		"pb":  lengthRule(tokens.Spacing, "padding-bottom"),
		"pl":  lengthRule(tokens.Spacing, "padding-left"),
		"m":   lengthRule(tokens.Spacing, "margin"),
		"mx":  lengthRule(tokens.Spacing, "margin-left", "margin-right"),
		"my":  lengthRule(tokens.Spacing, "margin-top", "margin-bottom"),
		"mt":  lengthRule(tokens.Spacing, "margin-top"),
		"mr":  lengthRule(tokens.Spacing, "margin-right"),
		"mb":  lengthRule(tokens.Spacing, "margin-bottom"),
		"ml":  lengthRule(tokens.Spacing, "margin-left"),
		"gap": lengthRule(tokens.Spacing, "gap"),

		// Sizing
		"w":     sizeRule("width"),
		"h":     sizeRule("height"),
		"min-w": sizeRule("min-width"),
		"min-h": sizeRule("min-height"),
		"max-w": sizeRule("max-width"),
		"max-h": sizeRule("max-height"),
		"size":  sizeRule("width", "height"),
	}

	for name, value := range map[string]string{
		"block":        "block",
		"inline":       "inline",
		"inline-block": "inline-block",
		"contents":     "contents",
		"hidden":       "none",
	} {
		h[name] = keyword(Declaration{"display", value})
	}

	for name, value := range map[string]string{
		"abs":    "absolute",
		"rel":    "relative",
		"fixed":  "fixed",
		"sticky": "sticky",
	} {
		h[name] = position(value)
	}

	h["bold"] = fontWeight("bold")
	h["medium"] = fontWeight("medium")
	h["semibold"] = fontWeight("semibold")
	h["italic"] = keyword(Declaration{"font-style", "italic"})
	h["underline"] = keyword(Declaration{"text-decoration", "underline"})
	h["uppercase"] = keyword(Declaration{"text-transform", "uppercase"})
	h["nowrap"] = keyword(Declaration{"white-space", "nowrap"})
	h["truncate"] = keyword(
		Declaration{"overflow", "hidden"},
		Declaration{"text-overflow", "ellipsis"},
		Declaration{"white-space", "nowrap"},
	)
	h["pointer"] = keyword(Declaration{"cursor", "pointer"})

	return h
}

// keyword emits fixed declarations and ignores arguments.
func keyword(decls ...Declaration) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		if len(args) > 0 {
			ctx.Warn("%s takes no arguments", ctx.Rule)
		}
		out := make(Declarations, len(decls))
		copy(out, decls)
		return out, nil
	}
}

// single emits one property from the first positional argument, resolved in
// category when one is given.
func single(prop string, category tokens.Category, isLength bool) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		v, ok := first(args)
		if !ok {
			ctx.Warn("%s requires a value", ctx.Rule)
			return nil, nil
		}
		switch {
		case isLength:
			v = length(ctx, category, v)
		case category != "":
			v = ctx.Tokens.Resolve(category, v)
		}
		var out Declarations
		out.Set(prop, v)
		return out, nil
	}
}

// lengthRule sets every prop to the space-joined positional lengths.
func lengthRule(category tokens.Category, props ...string) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		v := lengths(ctx, category, args)
		if v == "" {
			ctx.Warn("%s requires a value", ctx.Rule)
			return nil, nil
		}
		var out Declarations
		for _, p := range props {
			out.Set(p, v)
		}
		return out, nil
	}
}

var sizeKeywords = map[string]string{
	"fill": "100%",
	"hug":  "fit-content",
	"auto": "auto",
}

// sizeRule sets width/height style props. With several props, each
// positional argument feeds the matching prop and a single argument feeds all.
func sizeRule(props ...string) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		var values []string
		for _, a := range args {
			if a.Named() {
				ctx.Warn("%s: named argument %q ignored", ctx.Rule, a.Key)
				continue
			}
			if kw, ok := sizeKeywords[a.Value]; ok {
				values = append(values, kw)
				continue
			}
			values = append(values, length(ctx, tokens.Spacing, a.Value))
		}
		if len(values) == 0 {
			ctx.Warn("%s requires a value", ctx.Rule)
			return nil, nil
		}

		var out Declarations
		for i, p := range props {
			v := values[0]
			if i < len(values) {
				v = values[i]
			}
			out.Set(p, v)
		}
		return out, nil
	}
}

func colorRule(prop string) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		v, ok := first(args)
		if !ok {
			ctx.Warn("%s requires a color", ctx.Rule)
			return nil, nil
		}
		var out Declarations
		out.Set(prop, color(ctx, v))
		return out, nil
	}
}

func fontWeight(name string) Handler {
	return func(ctx *Context, _ []shorthand.Arg) (Declarations, error) {
		var out Declarations
		out.Set("font-weight", ctx.Tokens.Resolve(tokens.Weight, name))
		return out, nil
	}
}

func weight(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	v, ok := first(args)
	if !ok {
		ctx.Warn("weight requires a value")
		return nil, nil
	}
	var out Declarations
	out.Set("font-weight", ctx.Tokens.Resolve(tokens.Weight, v))
	return out, nil
}

// text sets font-size and line-height from text(size/line-height).
func text(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	values := positional(args)
	if len(values) == 0 {
		ctx.Warn("text requires a font size")
		return nil, nil
	}

	var out Declarations
	out.Set("font-size", length(ctx, tokens.Font, values[0]))
	if len(values) > 1 {
		out.Set("line-height", values[1])
	}
	if len(values) > 2 {
		// Letter-spacing as a third part has no agreed meaning yet.
		ctx.Warn("text: third argument %q is not supported and was ignored", values[2])
	}
	return out, nil
}

var errMultiShadow = errors.New("multi-part shadow syntax is not supported")

func shadow(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	values := positional(args)
	switch len(values) {
	case 0:
		ctx.Warn("shadow requires a value")
		return nil, nil
	case 1:
	default:
		return nil, &HandlerError{Rule: ctx.Rule, Err: errMultiShadow}
	}

	var out Declarations
	out.Set("box-shadow", ctx.Tokens.Resolve(tokens.Shadow, values[0]))
	return out, nil
}

var borderStyles = map[string]bool{
	"solid": true, "dashed": true, "dotted": true, "double": true, "none": true,
}

// border builds a border shorthand from b(width/style/color) in any order.
func border(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	width, style, col := "1px", "solid", "currentColor"
	for _, v := range positional(args) {
		switch {
		case borderStyles[v]:
			style = v
		case isBareNumber(v) || strings.HasSuffix(v, "px") || ctx.Tokens.Known(tokens.Spacing, v):
			width = length(ctx, tokens.Spacing, v)
		default:
			col = color(ctx, v)
		}
	}

	var out Declarations
	out.Set("border", width+" "+style+" "+col)
	return out, nil
}

var hboxFlags = map[string]Declarations{
	"pack":    {{"justify-content", "center"}, {"align-items", "center"}},
	"fill":    {{"align-items", "stretch"}},
	"top":     {{"align-items", "flex-start"}},
	"middle":  {{"align-items", "center"}},
	"bottom":  {{"align-items", "flex-end"}},
	"left":    {{"justify-content", "flex-start"}},
	"center":  {{"justify-content", "center"}},
	"right":   {{"justify-content", "flex-end"}},
	"between": {{"justify-content", "space-between"}},
	"around":  {{"justify-content", "space-around"}},
	"evenly":  {{"justify-content", "space-evenly"}},
	"wrap":    {{"flex-wrap", "wrap"}},
	"reverse": {{"flex-direction", "row-reverse"}},
}

var vboxFlags = map[string]Declarations{
	"pack":    {{"justify-content", "center"}, {"align-items", "center"}},
	"fill":    {{"align-items", "stretch"}},
	"top":     {{"justify-content", "flex-start"}},
	"middle":  {{"justify-content", "center"}},
	"bottom":  {{"justify-content", "flex-end"}},
	"left":    {{"align-items", "flex-start"}},
	"center":  {{"align-items", "center"}},
	"right":   {{"align-items", "flex-end"}},
	"between": {{"justify-content", "space-between"}},
	"around":  {{"justify-content", "space-around"}},
	"evenly":  {{"justify-content", "space-evenly"}},
	"wrap":    {{"flex-wrap", "wrap"}},
	"reverse": {{"flex-direction", "column-reverse"}},
}

func hbox(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	out := Declarations{{"display", "flex"}, {"flex-direction", "row"}, {"align-items", "center"}}
	applyFlags(ctx, &out, hboxFlags, args)
	return out, nil
}

func vbox(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	out := Declarations{{"display", "flex"}, {"flex-direction", "column"}}
	applyFlags(ctx, &out, vboxFlags, args)
	return out, nil
}

// applyFlags applies box flags; gap-<size> and gap:<size> set the gap.
func applyFlags(ctx *Context, out *Declarations, flags map[string]Declarations, args []shorthand.Arg) {
	for _, a := range args {
		if a.Key == "gap" {
			out.Set("gap", length(ctx, tokens.Spacing, a.Value))
			continue
		}
		if a.Named() {
			ctx.Warn("%s: unknown argument %q", ctx.Rule, a.Key)
			continue
		}
		if size, ok := strings.CutPrefix(a.Value, "gap-"); ok && size != "" {
			out.Set("gap", length(ctx, tokens.Spacing, size))
			continue
		}
		decls, ok := flags[a.Value]
		if !ok {
			ctx.Warn("%s: unknown flag %q", ctx.Rule, a.Value)
			continue
		}
		out.Merge(decls)
	}
}

// grid handles grid(3), grid(cols:3+rows:2+gap-md) and raw templates such
// as grid(200px_1fr).
func grid(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	out := Declarations{{"display", "grid"}}

	template := func(v string) string {
		if isDigits(v) {
			return "repeat(" + v + ", minmax(0, 1fr))"
		}
		return literal(v)
	}

	for _, a := range args {
		switch {
		case a.Key == "cols":
			out.Set("grid-template-columns", template(a.Value))
		case a.Key == "rows":
			out.Set("grid-template-rows", template(a.Value))
		case a.Key == "gap":
			out.Set("gap", length(ctx, tokens.Spacing, a.Value))
		case a.Named():
			ctx.Warn("grid: unknown argument %q", a.Key)
		case strings.HasPrefix(a.Value, "gap-") && len(a.Value) > 4:
			out.Set("gap", length(ctx, tokens.Spacing, a.Value[4:]))
		default:
			out.Set("grid-template-columns", template(a.Value))
		}
	}
	return out, nil
}

var offsets = []string{"top", "right", "bottom", "left", "inset"}

// position handles abs(top:0+left:0) and friends. A positional argument sets
// inset.
func position(value string) Handler {
	return func(ctx *Context, args []shorthand.Arg) (Declarations, error) {
		out := Declarations{{"position", value}}
		for _, a := range args {
			if !a.Named() {
				out.Set("inset", length(ctx, tokens.Spacing, a.Value))
				continue
			}
			if !contains(offsets, a.Key) {
				ctx.Warn("%s: unknown offset %q", ctx.Rule, a.Key)
				continue
			}
			out.Set(a.Key, length(ctx, tokens.Spacing, a.Value))
		}
		return out, nil
	}
}

func positional(args []shorthand.Arg) []string {
	var out []string
	for _, a := range args {
		if !a.Named() {
			out = append(out, a.Value)
		}
	}
	return out
}

func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
