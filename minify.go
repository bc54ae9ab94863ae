package utilcss

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Minify strips insignificant whitespace and comments from css. Whitespace
// is dropped around braces and semicolons, and around colons inside blocks or
// parentheses; selector whitespace is kept since it is a combinator there.
// The last semicolon of every block is dropped. Token text is copied
// verbatim, so escaped identifiers and values are never altered.
func Minify(src string) string {
	lexer := css.NewLexer(parse.NewInputString(src))

	var (
		b         strings.Builder
		prev      = css.ErrorToken // start of output
		space     bool
		semicolon bool
		blocks    int
		parens    int
	)
	b.Grow(len(src))

	nested := func() bool { return blocks > 0 || parens > 0 }

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			space = true
			continue
		case css.SemicolonToken:
			semicolon = true
			space = false
			prev = tt
			continue
		}

		if semicolon && tt != css.RightBraceToken && tt != css.ErrorToken {
			b.WriteByte(';')
		}
		semicolon = false

		if tt == css.ErrorToken {
			break
		}

		if space && !dropAfter(prev, nested()) && !dropBefore(tt, nested()) {
			b.WriteByte(' ')
		}
		space = false

		switch tt {
		case css.LeftBraceToken:
			blocks++
		case css.RightBraceToken:
			if blocks > 0 {
				blocks--
			}
		case css.LeftParenthesisToken, css.FunctionToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		}

		b.Write(text)
		prev = tt
	}

	return b.String()
}

func dropAfter(tt css.TokenType, nested bool) bool {
	switch tt {
	case css.ErrorToken, css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
		return true
	case css.ColonToken:
		return nested
	}
	return false
}

func dropBefore(tt css.TokenType, nested bool) bool {
	switch tt {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
		return true
	case css.ColonToken:
		return nested
	}
	return false
}
