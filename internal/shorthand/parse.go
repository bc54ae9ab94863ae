package shorthand

import (
	"fmt"
	"strings"
)

// ParseError reports malformed shorthand. Offset is the byte offset into Input
// where the problem was detected.
type ParseError struct {
	Input   string
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Offset, e.Message)
}

// Near returns the offending part of the input, starting at Offset.
func (e *ParseError) Near() string {
	if e.Offset < 0 || e.Offset >= len(e.Input) {
		return ""
	}
	return e.Input[e.Offset:]
}

// segment is a colon-separated part of a class at parenthesis depth zero.
type segment struct {
	text string
	off  int
}

type parser struct {
	input string
	base  int // offset of the trimmed class inside input
}

func (p *parser) fail(off int, format string, args ...any) error {
	return &ParseError{Input: p.input, Offset: p.base + off, Message: fmt.Sprintf(format, args...)}
}

// Parse parses a single class string. Surrounding whitespace is ignored.
// On failure the error is a *ParseError and no expression is returned.
func Parse(input string) (*Expr, error) {
	trimmed := strings.TrimLeft(input, " \t\r\n\f")
	p := &parser{input: input, base: len(input) - len(trimmed)}
	return p.parse(strings.TrimRight(trimmed, " \t\r\n\f"))
}

func (p *parser) parse(s string) (*Expr, error) {
	if s == "" {
		return nil, p.fail(0, "empty class")
	}

	segs, err := p.split(s)
	if err != nil {
		return nil, err
	}

	expr := &Expr{Raw: s}

	// A trailing '!' marks the whole class important, wherever the chain ends.
	last := &segs[len(segs)-1]
	if strings.HasSuffix(last.text, "!") {
		expr.Important = true
		last.text = strings.TrimSuffix(last.text, "!")
	}

	ruleIdx := len(segs) - 1
	for i, seg := range segs {
		if strings.Contains(seg.text, "(") {
			ruleIdx = i
			break
		}
	}

	if err := p.parseRule(segs[ruleIdx], expr); err != nil {
		return nil, err
	}

	for i, seg := range segs {
		if i == ruleIdx {
			continue
		}
		if seg.text == "" {
			return nil, p.fail(seg.off, "empty modifier")
		}
		m, ok := LookupModifier(seg.text)
		if !ok {
			return nil, p.fail(seg.off, "unknown modifier %q", seg.text)
		}
		expr.Modifiers = append(expr.Modifiers, m)
	}

	return expr, nil
}

// split cuts s at every ':' outside parentheses and validates nesting and
// characters.
func (p *parser) split(s string) ([]segment, error) {
	var segs []segment
	depth, start, openAt := 0, 0, -1

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(':
			if depth == 0 {
				openAt = i
			}
			depth++
		case ')':
			if depth == 0 {
				return nil, p.fail(i, "unbalanced ')'")
			}
			depth--
		case ':':
			if depth == 0 {
				segs = append(segs, segment{text: s[start:i], off: start})
				start = i + 1
			}
		case ' ', '\t', '\n', '\r', '\f':
			return nil, p.fail(i, "unexpected whitespace")
		default:
			// Extract never yields these; inside a value they would
			// end the declaration or the rule block.
			if c < 0x80 && isBoundary(rune(c)) {
				return nil, p.fail(i, "invalid character %q", c)
			}
		}
	}
	if depth > 0 {
		return nil, p.fail(openAt, "unclosed '('")
	}

	return append(segs, segment{text: s[start:], off: start}), nil
}

func (p *parser) parseRule(seg segment, expr *Expr) error {
	text, off := seg.text, seg.off
	if strings.HasPrefix(text, "!") {
		expr.Important = true
		text, off = text[1:], off+1
	}

	open := strings.IndexByte(text, '(')
	name := text
	if open >= 0 {
		name = text[:open]
	}
	if name == "" {
		return p.fail(off, "empty rule name")
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return p.fail(off+i, "invalid character %q in rule name", name[i])
		}
	}
	expr.Rule = name

	if open < 0 {
		return nil
	}
	expr.HasParens = true

	closeAt := matchParen(text, open)
	if closeAt != len(text)-1 {
		return p.fail(off+closeAt+1, "unexpected text after ')'")
	}

	args, err := p.parseArgs(text[open+1:closeAt], off+open+1)
	if err != nil {
		return err
	}
	expr.Args = args
	return nil
}

func (p *parser) parseArgs(inner string, off int) ([]Arg, error) {
	if inner == "" {
		return nil, nil
	}

	var args []Arg
	depth, start := 0, 0
	var sep byte

	flush := func(end int) error {
		arg, err := p.parseArg(inner[start:end], off+start)
		if err != nil {
			return err
		}
		arg.Sep = sep
		args = append(args, arg)
		return nil
	}

	for i := 0; i < len(inner); i++ {
		switch c := inner[i]; c {
		case '(':
			depth++
		case ')':
			depth--
		case '/', '+':
			if depth > 0 {
				continue
			}
			if err := flush(i); err != nil {
				return nil, err
			}
			sep, start = c, i+1
		}
	}
	if err := flush(len(inner)); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseArg(text string, off int) (Arg, error) {
	if text == "" {
		return Arg{}, p.fail(off, "empty argument")
	}

	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth > 0 {
				continue
			}
			key, value := text[:i], text[i+1:]
			if key == "" {
				return Arg{}, p.fail(off, "empty argument name")
			}
			for j := 0; j < len(key); j++ {
				if !isNameByte(key[j]) {
					return Arg{}, p.fail(off+j, "invalid character %q in argument name", key[j])
				}
			}
			if value == "" {
				return Arg{}, p.fail(off+i+1, "empty value for %q", key)
			}
			return Arg{Key: key, Value: value}, nil
		}
	}
	return Arg{Value: text}, nil
}

// matchParen returns the index of the ')' closing the '(' at open.
// Callers guarantee the parentheses are balanced.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(s) - 1
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
