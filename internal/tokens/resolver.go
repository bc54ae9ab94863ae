package tokens

import "strings"

// Resolver maps token names to CSS values. Resolution is pure and total:
// names missing from the table come back unchanged, so "text(base)" emits
// font-size:base rather than failing.
type Resolver struct {
	table     *Table
	collector *Collector
}

// NewResolver creates a resolver over table. Hits are recorded in collector
// while it is collecting; collector may be nil.
func NewResolver(table *Table, collector *Collector) *Resolver {
	if table == nil {
		table = NewTable()
	}
	return &Resolver{table: table, collector: collector}
}

// Resolve returns the CSS value for name in category. Slash separated names
// ("lg/xl") resolve part by part and are joined with a single space.
func (r *Resolver) Resolve(category Category, name string) string {
	if strings.Contains(name, "/") {
		parts := strings.Split(name, "/")
		for i, part := range parts {
			parts[i] = r.resolveOne(category, part)
		}
		return strings.Join(parts, " ")
	}
	return r.resolveOne(category, name)
}

// Known reports whether name is a token of category, without recording usage.
func (r *Resolver) Known(category Category, name string) bool {
	_, ok := r.table.Lookup(category, name)
	return ok
}

func (r *Resolver) resolveOne(category Category, name string) string {
	tok, ok := r.table.Lookup(category, name)
	if !ok {
		return name
	}
	if r.collector != nil {
		r.collector.Record(tok)
	}
	return tok.Ref()
}
