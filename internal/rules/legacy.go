package rules

import (
	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// legacyReplacements names the current rule that supersedes each legacy rule.
var legacyReplacements = map[string]string{
	"color":      "c",
	"background": "bg",
	"row":        "hbox",
	"column":     "vbox",
	"round":      "r",
	"pad":        "p",
	"hbox":       "hbox",
	"text":       "text",
}

// legacyHandlers returns the v1 rule set. hbox and text are shadowed by the
// current tier and only reachable through a registry without it.
func legacyHandlers() map[string]Handler {
	return map[string]Handler{
		"color":      colorRule("color"),
		"background": colorRule("background-color"),
		"row":        hbox,
		"column":     vbox,
		"round":      lengthRule(tokens.Radius, "border-radius"),
		"pad":        lengthRule(tokens.Spacing, "padding"),
		"hbox":       hboxV1,
		"text":       textV1,
	}
}

// hboxV1 predates the default cross-axis centering.
func hboxV1(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	out := Declarations{{"display", "flex"}, {"flex-direction", "row"}}
	applyFlags(ctx, &out, hboxFlags, args)
	return out, nil
}

// textV1 only knew font sizes.
func textV1(ctx *Context, args []shorthand.Arg) (Declarations, error) {
	v, ok := first(args)
	if !ok {
		ctx.Warn("text requires a font size")
		return nil, nil
	}
	var out Declarations
	out.Set("font-size", length(ctx, tokens.Font, v))
	return out, nil
}
