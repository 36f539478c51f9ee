package calc

import (
	"errors"
	"fmt"

	"github.com/dhamidi/peck"
	"github.com/dhamidi/peck/token"
)

// ParseError is a parse failure with the byte offset it occurred at. It
// wraps one of the peck error kinds.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses input as an arithmetic expression and returns its tree.
// Failures are *ParseError values wrapping peck.ErrUnexpectedToken or
// peck.ErrInteger.
func Parse(input []byte) (Expr, error) {
	p := &parser{cursor: peck.NewCursor(input)}
	p.skipSpace()
	expr, ok, err := p.parseSum()
	if err != nil {
		return nil, p.wrap(err)
	}
	if !ok {
		return nil, p.fail()
	}
	p.skipSpace()
	if !p.cursor.IsEmpty() {
		return nil, p.fail()
	}
	return expr, nil
}

type parser struct {
	cursor *peck.Cursor[byte]
}

func (p *parser) fail() error {
	return &ParseError{
		Offset: p.cursor.Position(),
		Err:    peck.ErrUnexpectedToken,
	}
}

func (p *parser) wrap(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Offset: p.cursor.Position(), Err: err}
}

func (p *parser) skipSpace() {
	for {
		_, ok, err := peck.NewRecognizer(p.cursor).
			TryOr(token.Space).
			TryOr(token.Tab).
			TryOr(token.Newline).
			Finish()
		if err != nil || !ok {
			return
		}
	}
}

// sum := product (("+" | "-") product)*
func (p *parser) parseSum() (Expr, bool, error) {
	return p.parseBinary(
		func() (Expr, bool, error) { return p.parseProduct() },
		token.Plus, token.Minus,
	)
}

// product := factor (("*" | "/") factor)*
func (p *parser) parseProduct() (Expr, bool, error) {
	return p.parseBinary(
		func() (Expr, bool, error) { return p.parseFactor() },
		token.Star, token.Slash,
	)
}

func (p *parser) parseBinary(operand func() (Expr, bool, error), ops ...token.Kind) (Expr, bool, error) {
	left, ok, err := operand()
	if err != nil || !ok {
		return nil, ok, err
	}
	for {
		p.skipSpace()
		r := peck.NewRecognizer(p.cursor)
		for _, op := range ops {
			r.TryOr(op)
		}
		m, ok, err := r.Finish()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return left, true, nil
		}
		p.skipSpace()
		right, ok, err := operand()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			// an operator without a right operand is an error, not a miss
			return nil, false, p.fail()
		}
		left = Binary{Op: m.(token.Kind), Left: left, Right: right}
	}
}

// factor := number | "(" sum ")"
func (p *parser) parseFactor() (Expr, bool, error) {
	return peck.NewAcceptor[byte, Expr](p.cursor).
		TryOr(peck.VisitorFunc[byte, Expr](p.acceptNumber)).
		TryOr(peck.VisitorFunc[byte, Expr](p.acceptParen)).
		Finish()
}

// digitRun matches a maximal run of ASCII digits. Its length is
// data-dependent.
type digitRun struct{}

func (digitRun) Match(prefix []byte) (bool, int) {
	n := 0
	for n < len(prefix) && prefix[n] >= '0' && prefix[n] <= '9' {
		n++
	}
	return n > 0, n
}

func (digitRun) Size() int { return 0 }

func (p *parser) acceptNumber(c *peck.Cursor[byte]) (Expr, bool, error) {
	raw, ok, err := peck.RecognizeSlice[byte](c, digitRun{})
	if err != nil || !ok {
		return nil, false, err
	}
	value, err := peck.ParseInt(raw)
	if err != nil {
		return nil, false, err
	}
	return Number{Value: value}, true, nil
}

func (p *parser) acceptParen(c *peck.Cursor[byte]) (Expr, bool, error) {
	ok, err := peck.Recognize[byte](c, token.OpenParen)
	if err != nil || !ok {
		return nil, false, err
	}
	// past the opener the subexpression is committed
	p.skipSpace()
	inner, ok, err := p.parseSum()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, p.fail()
	}
	p.skipSpace()
	if err := peck.Expect[byte](c, token.CloseParen); err != nil {
		return nil, false, p.wrap(err)
	}
	return Paren{Inner: inner}, true, nil
}
