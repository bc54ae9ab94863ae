package shorthand

import "strings"

// ModifierKind tags the variant of a Modifier.
type ModifierKind int

const (
	// KindPseudoClass appends a pseudo-class to the selector (":hover").
	KindPseudoClass ModifierKind = iota
	// KindPseudoElement appends a pseudo-element to the selector ("::before").
	KindPseudoElement
	// KindBreakpoint wraps the rule in a min-width media query.
	KindBreakpoint
	// KindCombinator prefixes the selector with an ancestor or sibling context.
	KindCombinator
)

func (k ModifierKind) String() string {
	switch k {
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	case KindBreakpoint:
		return "breakpoint"
	case KindCombinator:
		return "combinator"
	}
	return "unknown"
}

// Modifier qualifies where or when a rule applies.
type Modifier struct {
	Kind  ModifierKind
	Name  string // as written: "hover", "lg", "group-hover"
	Value string // selector fragment: ":hover", "::before", ".group:hover "; empty for breakpoints
	Width int    // min-width in px for breakpoints
}

// Breakpoints maps breakpoint modifier names to their min-width in pixels.
var Breakpoints = map[string]int{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

var pseudoClasses = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-visible": ":focus-visible",
	"focus-within":  ":focus-within",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"enabled":       ":enabled",
	"checked":       ":checked",
	"required":      ":required",
	"invalid":       ":invalid",
	"empty":         ":empty",
	"first":         ":first-child",
	"last":          ":last-child",
	"only":          ":only-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
}

var pseudoElements = map[string]string{
	"before":      "::before",
	"after":       "::after",
	"placeholder": "::placeholder",
	"selection":   "::selection",
	"marker":      "::marker",
}

// LookupModifier resolves a modifier name. The second result is false for
// names that are not modifiers.
func LookupModifier(name string) (Modifier, bool) {
	if w, ok := Breakpoints[name]; ok {
		return Modifier{Kind: KindBreakpoint, Name: name, Width: w}, true
	}
	if v, ok := pseudoClasses[name]; ok {
		return Modifier{Kind: KindPseudoClass, Name: name, Value: v}, true
	}
	if v, ok := pseudoElements[name]; ok {
		return Modifier{Kind: KindPseudoElement, Name: name, Value: v}, true
	}
	if name == "dark" {
		return Modifier{Kind: KindCombinator, Name: name, Value: ".dark "}, true
	}
	if state, ok := strings.CutPrefix(name, "group-"); ok {
		if v, ok := pseudoClasses[state]; ok {
			return Modifier{Kind: KindCombinator, Name: name, Value: ".group" + v + " "}, true
		}
	}
	if state, ok := strings.CutPrefix(name, "peer-"); ok {
		if v, ok := pseudoClasses[state]; ok {
			return Modifier{Kind: KindCombinator, Name: name, Value: ".peer" + v + " ~ "}, true
		}
	}
	return Modifier{}, false
}
