// Package shorthand parses utility-class shorthand such as "hbox(pack+gap-lg)",
// "c(white.8)" or "lg:hover:bg(blue-500)" into structured expressions.
//
// # Grammar
//
//	class   := prefix* ['!'] rule ['(' arglist? ')' suffix*] ['!']
//	prefix  := modifier ':'
//	suffix  := ':' modifier
//	arglist := arg (('/' | '+') arg)*
//	arg     := [key ':'] value
//
// Slash separates sequential positional values ("text(base/1.5)"), plus separates
// compound flags ("hbox(pack+gap-lg)"). Separators nested inside inner parentheses
// belong to the value ("w(calc(100%-8px))").
package shorthand

import "strings"

// Arg is a single argument inside the parentheses of a class.
type Arg struct {
	Key   string // "top" for "top:20", empty for positional arguments
	Value string // "20"
	Sep   byte   // separator preceding this argument: 0 for the first, '/' or '+'
}

// Named reports whether the argument is a key:value pair.
func (a Arg) Named() bool {
	return a.Key != ""
}

// String renders the argument without its separator.
func (a Arg) String() string {
	if a.Key != "" {
		return a.Key + ":" + a.Value
	}
	return a.Value
}

// Expr is a parsed class expression.
type Expr struct {
	Rule      string     // "bg"
	Args      []Arg      // [{Value: "blue-500"}]
	Modifiers []Modifier // outermost first
	Important bool
	Raw       string // the class exactly as written
	HasParens bool   // "hbox()" vs "hbox"
}

// Breakpoints returns the breakpoint modifiers in order.
func (e *Expr) Breakpoints() []Modifier {
	var out []Modifier
	for _, m := range e.Modifiers {
		if m.Kind == KindBreakpoint {
			out = append(out, m)
		}
	}
	return out
}

// String renders the canonical form of the expression. Parsing the result
// yields an expression with the same rule, arguments, modifiers and importance.
func (e *Expr) String() string {
	var b strings.Builder
	for _, m := range e.Modifiers {
		b.WriteString(m.Name)
		b.WriteByte(':')
	}
	if e.Important {
		b.WriteByte('!')
	}
	b.WriteString(e.Rule)
	if e.HasParens || len(e.Args) > 0 {
		b.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				sep := a.Sep
				if sep == 0 {
					sep = '/'
				}
				b.WriteByte(sep)
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
