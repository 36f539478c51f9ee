package calc

import (
	"errors"
	"fmt"

	"github.com/dhamidi/peck"
	"github.com/dhamidi/peck/token"
)

// Diagnostic is a byte-offset-ranged problem report for tooling.
type Diagnostic struct {
	Start   int
	End     int
	Message string
}

// Check reports problems in input: every unbalanced delimiter, or, when
// the delimiters are balanced, the first parse failure. A clean input
// yields nil.
func Check(input []byte) []Diagnostic {
	var diags []Diagnostic

	diags = append(diags, checkDelimiters(input)...)

	if len(diags) == 0 {
		if _, err := Parse(input); err != nil {
			start, end := 0, len(input)
			var pe *ParseError
			if errors.As(err, &pe) {
				start = pe.Offset
				if start > len(input) {
					start = len(input)
				}
				end = start + 1
				if end > len(input) {
					end = len(input)
				}
			}
			diags = append(diags, Diagnostic{
				Start:   start,
				End:     end,
				Message: err.Error(),
			})
		}
	}

	return diags
}

// checkDelimiters walks the input once and reports every opener without a
// balanced closer and every stray closer. Escaped delimiters are skipped
// the way the group scanner skips them.
func checkDelimiters(input []byte) []Diagnostic {
	var diags []Diagnostic
	var open []int // offsets of unmatched openers

	c := peck.NewCursor(input)
	for !c.IsEmpty() {
		at := c.Position()
		rest := c.Remaining()

		if rest[0] == token.Escape && len(rest) > 1 {
			if err := c.Bump(2); err != nil {
				break
			}
			continue
		}

		switch rest[0] {
		case '(':
			// a balanced group from here is fine as a whole; skip it
			if find, ok, _ := token.Parens.Peek(c); ok {
				if err := c.Bump(find.End); err != nil {
					return diags
				}
				continue
			}
			open = append(open, at)
		case ')':
			if len(open) > 0 {
				open = open[:len(open)-1]
			} else {
				diags = append(diags, Diagnostic{
					Start:   at,
					End:     at + 1,
					Message: "closing parenthesis without an opener",
				})
			}
		}
		if err := c.Bump(1); err != nil {
			break
		}
	}

	for _, at := range open {
		diags = append(diags, Diagnostic{
			Start:   at,
			End:     at + 1,
			Message: fmt.Sprintf("unclosed parenthesis opened at offset %d", at),
		})
	}
	return diags
}
