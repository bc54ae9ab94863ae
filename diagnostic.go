package utilcss

import (
	"errors"

	"github.com/yacobolo/utilcss/internal/shorthand"
)

// Diagnostic is a problem found while generating one class.
type Diagnostic struct {
	Class    string    `json:"class"`         // "bg(blue-500"
	Severity string    `json:"severity"`      // "error" or "warning"
	Text     string    `json:"text"`          // "unclosed '('"
	Offset   int       `json:"offset"`        // byte offset into Class for parse errors, -1 otherwise
	Pos      *Location `json:"pos,omitempty"` // first occurrence in the inputs, when known
	Err      error     `json:"-"`
}

// Diagnostic severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

func errorDiagnostic(class string, err error) Diagnostic {
	d := Diagnostic{Class: class, Severity: SeverityError, Text: err.Error(), Offset: -1, Err: err}

	var perr *shorthand.ParseError
	if errors.As(err, &perr) {
		d.Class = perr.Input
		d.Text = perr.Message
		d.Offset = perr.Offset
	}
	return d
}
