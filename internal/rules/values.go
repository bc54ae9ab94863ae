package rules

import (
	"fmt"
	"strings"

	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// isBareNumber reports whether s is an unsigned or signed number without
// unit: "4", "-2", "1.5", ".5". A trailing dot is not a number.
func isBareNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || s[len(s)-1] == '.' {
		return false
	}
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.' && !dot:
			dot = true
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// length resolves a length value. Tokens resolve through category; bare
// non-zero numbers that are not tokens get a px unit. Slash separated parts
// resolve independently and are joined with a space.
func length(ctx *Context, category tokens.Category, v string) string {
	parts := strings.Split(v, "/")
	for i, part := range parts {
		resolved := ctx.Tokens.Resolve(category, part)
		if resolved == part && isBareNumber(part) && strings.Trim(part, "-0.") != "" {
			resolved = part + "px"
		}
		parts[i] = resolved
	}
	return strings.Join(parts, " ")
}

// lengths resolves every positional argument and joins them with a space,
// as in padding: 8px 16px.
func lengths(ctx *Context, category tokens.Category, args []shorthand.Arg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Named() {
			ctx.Warn("%s: named argument %q ignored", ctx.Rule, a.Key)
			continue
		}
		parts = append(parts, length(ctx, category, a.Value))
	}
	return strings.Join(parts, " ")
}

// color resolves a color token with an optional alpha suffix: "white.8" is
// white at 80% opacity.
func color(ctx *Context, v string) string {
	base, alpha, ok := splitAlpha(v)
	if !ok {
		return ctx.Tokens.Resolve(tokens.Color, v)
	}
	return fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", ctx.Tokens.Resolve(tokens.Color, base), alpha)
}

// splitAlpha splits "name.85" into "name" and the percentage "85".
// Numbers such as "0.5" are not split.
func splitAlpha(v string) (string, string, bool) {
	idx := strings.LastIndexByte(v, '.')
	if idx <= 0 || idx == len(v)-1 {
		return "", "", false
	}
	base, digits := v[:idx], v[idx+1:]
	if !isDigits(digits) || isBareNumber(base) {
		return "", "", false
	}
	return base, alphaPercent(digits), true
}

// alphaPercent converts the fractional digits of an opacity to a percentage
// without going through floating point: "8" → "80", "05" → "5", "125" → "12.5".
func alphaPercent(digits string) string {
	whole := digits
	frac := ""
	if len(digits) > 2 {
		whole, frac = digits[:2], digits[2:]
	}
	for len(whole) < 2 {
		whole += "0"
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	frac = strings.TrimRight(frac, "0")
	if frac != "" {
		return whole + "." + frac
	}
	return whole
}

// first returns the first positional argument.
func first(args []shorthand.Arg) (string, bool) {
	for _, a := range args {
		if !a.Named() {
			return a.Value, true
		}
	}
	return "", false
}

// literal turns underscores into spaces so multi-word values fit in a class.
func literal(v string) string {
	return strings.ReplaceAll(v, "_", " ")
}
