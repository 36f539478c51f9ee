package token

import "github.com/dhamidi/peck"

// Escape introduces a literal delimiter byte inside a group. The byte
// after an escape never opens, closes, or terminates anything.
const Escape = '\\'

// Group is a balanced-delimiter peekable: a single-pass scanner with one
// depth counter and the one-byte escape rule. It requires the opener at
// the cursor position and finds the matching closer across nested pairs.
// The body is the region strictly between the outer delimiters.
type Group struct {
	Open  byte
	Close byte
}

var (
	Parens   = Group{'(', ')'}
	Brackets = Group{'[', ']'}
	Braces   = Group{'{', '}'}
)

// Peek implements peck.Peekable. Unbalanced input is not found.
func (g Group) Peek(c *peck.Cursor[byte]) (peck.Find, bool, error) {
	rest := c.Remaining()
	if len(rest) == 0 || rest[0] != g.Open {
		return peck.Find{}, false, nil
	}
	depth := 1
	i := 1
	for i < len(rest) {
		switch {
		case rest[i] == Escape && i+1 < len(rest):
			i += 2
		case rest[i] == g.Open:
			depth++
			i++
		case rest[i] == g.Close:
			depth--
			i++
			if depth == 0 {
				return peck.Find{End: i, StartLen: 1, EndLen: 1}, true, nil
			}
		default:
			i++
		}
	}
	return peck.Find{}, false, nil
}

// Quoted is the flag-based variant of Group for quote characters, which
// cannot nest: the first unescaped closing quote terminates. Escape
// sequences are preserved verbatim in the body, not unescaped.
type Quoted struct {
	Quote byte
}

var (
	SingleQuoted = Quoted{'\''}
	DoubleQuoted = Quoted{'"'}
)

// Peek implements peck.Peekable. An unterminated quote is not found.
func (q Quoted) Peek(c *peck.Cursor[byte]) (peck.Find, bool, error) {
	rest := c.Remaining()
	if len(rest) == 0 || rest[0] != q.Quote {
		return peck.Find{}, false, nil
	}
	i := 1
	for i < len(rest) {
		switch {
		case rest[i] == Escape && i+1 < len(rest):
			i += 2
		case rest[i] == q.Quote:
			return peck.Find{End: i + 1, StartLen: 1, EndLen: 1}, true, nil
		default:
			i++
		}
	}
	return peck.Find{}, false, nil
}
