package rules

import "strings"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an insertion-ordered property map. Output order follows
// the order properties were first set.
type Declarations []Declaration

// Set adds prop, or replaces its value in place when already present.
func (d *Declarations) Set(prop, value string) {
	for i := range *d {
		if (*d)[i].Property == prop {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Declaration{Property: prop, Value: value})
}

// Get returns the value of prop.
func (d Declarations) Get(prop string) (string, bool) {
	for _, decl := range d {
		if decl.Property == prop {
			return decl.Value, true
		}
	}
	return "", false
}

// Merge sets every declaration of other on d; later values win.
func (d *Declarations) Merge(other Declarations) {
	for _, decl := range other {
		d.Set(decl.Property, decl.Value)
	}
}

// Important returns a copy with !important appended to every value.
func (d Declarations) Important() Declarations {
	out := make(Declarations, len(d))
	for i, decl := range d {
		out[i] = decl
		if !strings.HasSuffix(decl.Value, "!important") {
			out[i].Value = decl.Value + " !important"
		}
	}
	return out
}

// String renders the declarations on one line, for messages and debugging.
func (d Declarations) String() string {
	parts := make([]string, len(d))
	for i, decl := range d {
		parts[i] = decl.Property + ": " + decl.Value
	}
	return strings.Join(parts, "; ")
}
