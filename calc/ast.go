// Package calc is the worked grammar for peck: integer arithmetic with
// the four operators, parenthesized subexpressions, and optional
// whitespace, parsed entirely through the core combinators and the byte
// token catalogue.
package calc

import (
	"fmt"

	"github.com/dhamidi/peck/token"
)

// Expr is a node of the expression tree.
type Expr interface {
	String() string
}

// Number is an integer literal.
type Number struct {
	Value int64
}

func (n Number) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// Binary applies an operator to two operands.
type Binary struct {
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (b Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, opText(b.Op), b.Right)
}

// Paren is an explicitly parenthesized subexpression. It is kept in the
// tree so formatting round-trips the source shape.
type Paren struct {
	Inner Expr
}

func (p Paren) String() string {
	if _, ok := p.Inner.(Binary); ok {
		// a Binary already prints its own enclosing parens
		return p.Inner.String()
	}
	return fmt.Sprintf("(%s)", p.Inner)
}

func opText(op token.Kind) string {
	switch op {
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	}
	return "?"
}

// Eval computes the value of an expression tree.
func Eval(e Expr) (int64, error) {
	switch node := e.(type) {
	case Number:
		return node.Value, nil
	case Paren:
		return Eval(node.Inner)
	case Binary:
		left, err := Eval(node.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(node.Right)
		if err != nil {
			return 0, err
		}
		switch node.Op {
		case token.Plus:
			return left + right, nil
		case token.Minus:
			return left - right, nil
		case token.Star:
			return left * right, nil
		case token.Slash:
			if right == 0 {
				return 0, fmt.Errorf("division by zero in %s", node)
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %s", node.Op)
	}
	return 0, fmt.Errorf("unknown node %T", e)
}
