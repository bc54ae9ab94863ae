// Package selector turns class strings into CSS selectors and media contexts.
package selector

import (
	"fmt"
	"strings"

	"github.com/yacobolo/utilcss/internal/shorthand"
)

// Escape escapes s so it can be used verbatim as a CSS identifier, following
// the CSSOM serialize-an-identifier algorithm (CSS.escape).
func Escape(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('\uFFFD')
		case (r >= 0x1 && r <= 0x1f) || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Target is where a rule applies: its selector and optional media condition.
type Target struct {
	Selector string // ".group:hover .group-hover\:c\(red\)"
	Media    string // "(min-width: 1024px)"; empty outside breakpoints
	Width    int    // widest breakpoint, used for ordering media blocks
}

// MediaQuery formats a min-width condition.
func MediaQuery(width int) string {
	return fmt.Sprintf("(min-width: %dpx)", width)
}

// Build computes the target for expr. Modifiers apply outermost first:
// combinators prefix the selector in order, pseudo-classes are appended in
// order, pseudo-elements always come last, and breakpoints only contribute
// media conditions.
func Build(expr *shorthand.Expr) Target {
	var (
		prefix   strings.Builder
		pseudo   strings.Builder
		elements strings.Builder
		conds    []string
		width    int
	)

	for _, m := range expr.Modifiers {
		switch m.Kind {
		case shorthand.KindCombinator:
			prefix.WriteString(m.Value)
		case shorthand.KindPseudoClass:
			pseudo.WriteString(m.Value)
		case shorthand.KindPseudoElement:
			elements.WriteString(m.Value)
		case shorthand.KindBreakpoint:
			conds = append(conds, MediaQuery(m.Width))
			width = max(width, m.Width)
		}
	}

	return Target{
		Selector: prefix.String() + "." + Escape(expr.Raw) + pseudo.String() + elements.String(),
		Media:    strings.Join(conds, " and "),
		Width:    width,
	}
}
