// Package token is the batteries-included byte vocabulary for peck:
// single-byte and short-sequence tokens covering brackets, punctuation,
// arithmetic operators and whitespace, plus the balanced and quoted
// delimited-group peekables.
//
// Every Kind is a peck.Matcher[byte], a peck.Visitor[byte, Kind], and a
// peck.Peekable[byte]. The peekable form searches for the first
// occurrence of the token, so Last(CloseParen) finds the rightmost
// closing paren and a Peeker over several kinds stops at the nearest one.
package token

import "github.com/dhamidi/peck"

// Kind enumerates the catalogue.
type Kind int

const (
	OpenParen Kind = iota
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace

	Comma
	Dot
	Colon
	Semicolon
	Question
	Bang
	Hash
	At
	Dollar
	Underscore
	Backslash
	SingleQuote
	DoubleQuote

	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	Equals
	LessThan
	GreaterThan
	Ampersand
	Pipe
	Tilde

	Space
	Tab
	CarriageReturn
	LineFeed
	CRLF

	// Newline matches any of "\r\n", "\n", or "\r"; its consumed length
	// is data-dependent.
	Newline
)

var literals = [...]string{
	OpenParen:      "(",
	CloseParen:     ")",
	OpenBracket:    "[",
	CloseBracket:   "]",
	OpenBrace:      "{",
	CloseBrace:     "}",
	Comma:          ",",
	Dot:            ".",
	Colon:          ":",
	Semicolon:      ";",
	Question:       "?",
	Bang:           "!",
	Hash:           "#",
	At:             "@",
	Dollar:         "$",
	Underscore:     "_",
	Backslash:      "\\",
	SingleQuote:    "'",
	DoubleQuote:    "\"",
	Plus:           "+",
	Minus:          "-",
	Star:           "*",
	Slash:          "/",
	Percent:        "%",
	Caret:          "^",
	Equals:         "=",
	LessThan:       "<",
	GreaterThan:    ">",
	Ampersand:      "&",
	Pipe:           "|",
	Tilde:          "~",
	Space:          " ",
	Tab:            "\t",
	CarriageReturn: "\r",
	LineFeed:       "\n",
	CRLF:           "\r\n",
	Newline:        "",
}

var names = [...]string{
	OpenParen:      "OpenParen",
	CloseParen:     "CloseParen",
	OpenBracket:    "OpenBracket",
	CloseBracket:   "CloseBracket",
	OpenBrace:      "OpenBrace",
	CloseBrace:     "CloseBrace",
	Comma:          "Comma",
	Dot:            "Dot",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Question:       "Question",
	Bang:           "Bang",
	Hash:           "Hash",
	At:             "At",
	Dollar:         "Dollar",
	Underscore:     "Underscore",
	Backslash:      "Backslash",
	SingleQuote:    "SingleQuote",
	DoubleQuote:    "DoubleQuote",
	Plus:           "Plus",
	Minus:          "Minus",
	Star:           "Star",
	Slash:          "Slash",
	Percent:        "Percent",
	Caret:          "Caret",
	Equals:         "Equals",
	LessThan:       "LessThan",
	GreaterThan:    "GreaterThan",
	Ampersand:      "Ampersand",
	Pipe:           "Pipe",
	Tilde:          "Tilde",
	Space:          "Space",
	Tab:            "Tab",
	CarriageReturn: "CarriageReturn",
	LineFeed:       "LineFeed",
	CRLF:           "CRLF",
	Newline:        "Newline",
}

// All lists every kind except Newline in registration order, CRLF before
// its single-byte components so recognizer chains built from it prefer the
// longer form.
var All = []Kind{
	CRLF,
	OpenParen, CloseParen, OpenBracket, CloseBracket, OpenBrace, CloseBrace,
	Comma, Dot, Colon, Semicolon, Question, Bang, Hash, At, Dollar,
	Underscore, Backslash, SingleQuote, DoubleQuote,
	Plus, Minus, Star, Slash, Percent, Caret, Equals, LessThan, GreaterThan,
	Ampersand, Pipe, Tilde,
	Space, Tab, CarriageReturn, LineFeed,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// IsWhitespace reports whether k is a spacing or newline token.
func (k Kind) IsWhitespace() bool {
	switch k {
	case Space, Tab, CarriageReturn, LineFeed, CRLF, Newline:
		return true
	}
	return false
}

// Match implements peck.Matcher.
func (k Kind) Match(prefix []byte) (bool, int) {
	if k == Newline {
		if len(prefix) == 0 {
			return false, 0
		}
		switch prefix[0] {
		case '\n':
			return true, 1
		case '\r':
			if len(prefix) > 1 && prefix[1] == '\n' {
				return true, 2
			}
			return true, 1
		}
		return false, 0
	}
	if k < 0 || int(k) >= len(literals) {
		return false, 0
	}
	lit := literals[k]
	if len(prefix) < len(lit) {
		return false, 0
	}
	for i := 0; i < len(lit); i++ {
		if prefix[i] != lit[i] {
			return false, 0
		}
	}
	return true, len(lit)
}

// Size implements peck.Matcher. Newline reports 0: its length depends on
// the data.
func (k Kind) Size() int {
	if k < 0 || int(k) >= len(literals) {
		return 0
	}
	return len(literals[k])
}

// Accept implements peck.Visitor: recognize the token, yield its kind.
func (k Kind) Accept(c *peck.Cursor[byte]) (Kind, bool, error) {
	ok, err := peck.Recognize[byte](c, k)
	return k, ok, err
}

// Peek implements peck.Peekable as a first-occurrence search.
func (k Kind) Peek(c *peck.Cursor[byte]) (peck.Find, bool, error) {
	return peck.Until[byte, Kind](k).Peek(c)
}
