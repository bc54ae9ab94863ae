// Package rules maps utility rule names to the handlers that turn their
// arguments into CSS declarations.
//
// Resolution walks an ordered chain of tiers and the first tier that knows
// the name wins:
//
//  1. components registered at runtime
//  2. the current rule set
//  3. the legacy (deprecated) rule set, kept so old class names still work
//
// Handlers are never merged across tiers.
package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yacobolo/utilcss/internal/shorthand"
)

// Handler computes declarations for the arguments of one class.
type Handler func(ctx *Context, args []shorthand.Arg) (Declarations, error)

// HandlerError reports an unrecoverable failure inside a matched handler.
// Unknown values are never handler errors; they pass through as literals.
type HandlerError struct {
	Rule string
	Err  error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Tier identifies which layer of the chain resolved a rule.
type Tier int

// Resolution tiers, highest priority first.
const (
	TierComponent Tier = iota
	TierCurrent
	TierLegacy
)

func (t Tier) String() string {
	switch t {
	case TierComponent:
		return "component"
	case TierCurrent:
		return "current"
	case TierLegacy:
		return "legacy"
	}
	return "unknown"
}

// Match is the outcome of resolving a rule name. Found is false when no tier
// knows the name; Handler is nil in that case.
type Match struct {
	Found       bool
	Handler     Handler
	Tier        Tier
	Replacement string // suggested rule name for deprecated matches
}

// Deprecated reports whether the match came from the legacy tier.
func (m Match) Deprecated() bool {
	return m.Found && m.Tier == TierLegacy
}

// resolver is one tier of the chain.
type resolver interface {
	lookup(name string) Match
}

// handlerTable is a static tier of built-in handlers.
type handlerTable struct {
	tier     Tier
	handlers map[string]Handler
	replaced map[string]string
}

func (t *handlerTable) lookup(name string) Match {
	h, ok := t.handlers[name]
	if !ok {
		return Match{}
	}
	return Match{Found: true, Handler: h, Tier: t.tier, Replacement: t.replaced[name]}
}

// componentTable is the runtime-extensible tier.
type componentTable struct {
	mu         sync.RWMutex
	components map[string]*Component
}

func (t *componentTable) lookup(name string) Match {
	t.mu.RLock()
	c, ok := t.components[name]
	t.mu.RUnlock()
	if !ok {
		return Match{}
	}
	return Match{Found: true, Handler: c.handler(name), Tier: TierComponent}
}

// Registry resolves rule names through the tier chain.
type Registry struct {
	components *componentTable
	chain      []resolver
}

// NewRegistry returns a registry with the built-in current and legacy rules
// and no components.
func NewRegistry() *Registry {
	components := &componentTable{components: make(map[string]*Component)}
	return &Registry{
		components: components,
		chain: []resolver{
			components,
			&handlerTable{tier: TierCurrent, handlers: currentHandlers()},
			&handlerTable{tier: TierLegacy, handlers: legacyHandlers(), replaced: legacyReplacements},
		},
	}
}

// Resolve finds the handler for name, querying tiers in priority order.
func (r *Registry) Resolve(name string) Match {
	for _, tier := range r.chain {
		if m := tier.lookup(name); m.Found {
			return m
		}
	}
	return Match{}
}

// Register adds or replaces the component called name. Components shadow
// built-in rules of the same name.
func (r *Registry) Register(name string, c *Component) {
	r.components.mu.Lock()
	defer r.components.mu.Unlock()
	r.components.components[name] = c
}

// RegisterComponents registers every component in m.
func (r *Registry) RegisterComponents(m map[string]*Component) {
	for name, c := range m {
		r.Register(name, c)
	}
}

// Components returns the registered component names, sorted.
func (r *Registry) Components() []string {
	r.components.mu.RLock()
	defer r.components.mu.RUnlock()

	names := make([]string, 0, len(r.components.components))
	for name := range r.components.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
