package rules

import (
	"fmt"

	"github.com/yacobolo/utilcss/internal/shorthand"
	"github.com/yacobolo/utilcss/internal/tokens"
)

// maxExpandDepth bounds component nesting so definitions that refer to each
// other fail instead of recursing forever.
const maxExpandDepth = 8

// Context is handed to every handler invocation.
type Context struct {
	Tokens *tokens.Resolver
	Rule   string // rule being computed

	registry *Registry
	depth    int
	warnings *[]string
}

// NewContext creates a context for computing one class.
func NewContext(registry *Registry, resolver *tokens.Resolver) *Context {
	return &Context{
		Tokens:   resolver,
		registry: registry,
		warnings: new([]string),
	}
}

// Warn records a non-fatal problem with the class being computed.
func (c *Context) Warn(format string, args ...any) {
	*c.warnings = append(*c.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the warnings recorded so far, including nested expansions.
func (c *Context) Warnings() []string {
	return *c.warnings
}

// Apply runs the handler of m for expr with c as context.
func (c *Context) Apply(m Match, expr *shorthand.Expr) (Declarations, error) {
	c.Rule = expr.Rule
	if m.Deprecated() {
		c.Warn("rule %q is deprecated, use %q instead", expr.Rule, m.Replacement)
	}
	decls, err := m.Handler(c, expr.Args)
	if err != nil {
		return nil, err
	}
	if expr.Important {
		decls = decls.Important()
	}
	return decls, nil
}

// Expand resolves and computes expr in a nested context. Components use it
// for the classes they are composed of; unknown rules are skipped with a
// warning.
func (c *Context) Expand(expr *shorthand.Expr) (Declarations, error) {
	if c.depth >= maxExpandDepth {
		return nil, &HandlerError{
			Rule: c.Rule,
			Err:  fmt.Errorf("component nesting deeper than %d levels (cyclic definition?)", maxExpandDepth),
		}
	}

	m := c.registry.Resolve(expr.Rule)
	if !m.Found {
		c.Warn("unknown rule %q in %q", expr.Rule, c.Rule)
		return nil, nil
	}

	child := &Context{
		Tokens:   c.Tokens,
		registry: c.registry,
		depth:    c.depth + 1,
		warnings: c.warnings,
	}
	return child.Apply(m, expr)
}
