package peck

import "fmt"

// Find locates a region within a remaining slice. All offsets are relative
// to the cursor position the peek started from.
type Find struct {
	// End is one past the end of the region, including the trailing
	// sentinel.
	End int
	// StartLen is the length of the leading sentinel consumed before the
	// body, 0 if none.
	StartLen int
	// EndLen is the length of the trailing sentinel.
	EndLen int
}

// Peeked couples a Find with the unadvanced remaining slice it was
// measured against. It never mutates the cursor it came from.
type Peeked[T any] struct {
	Find
	Data []T
}

// Body returns the region between the leading and trailing sentinels.
func (p Peeked[T]) Body() []T {
	return p.Data[p.StartLen : p.End-p.EndLen]
}

// Slice returns the full found region, sentinels included.
func (p Peeked[T]) Slice() []T {
	return p.Data[:p.End]
}

// Peekable is a non-consuming search: it reports where a pattern would end
// without moving the cursor.
type Peekable[T any] interface {
	Peek(c *Cursor[T]) (Find, bool, error)
}

// PeekableFunc adapts a plain function to the Peekable interface.
type PeekableFunc[T any] func(c *Cursor[T]) (Find, bool, error)

func (f PeekableFunc[T]) Peek(c *Cursor[T]) (Find, bool, error) { return f(c) }

// AsPeekable promotes a visitor to a peekable. The visitor runs on a fork
// of the cursor; a hit yields a find covering exactly the consumed length,
// with no sentinels. The promotion is explicit: visitors do not become
// peekables on their own.
func AsPeekable[T, V any](v Visitor[T, V]) Peekable[T] {
	return PeekableFunc[T](func(c *Cursor[T]) (Find, bool, error) {
		fork := c.Fork()
		_, ok, err := v.Accept(fork)
		if err != nil || !ok {
			return Find{}, false, err
		}
		return Find{End: fork.Position()}, true, nil
	})
}

// Peek runs p against the cursor and escalates not-found to
// ErrUnexpectedToken.
func Peek[T any](c *Cursor[T], p Peekable[T]) (Peeked[T], error) {
	find, ok, err := p.Peek(c)
	if err != nil {
		return Peeked[T]{}, err
	}
	if !ok {
		return Peeked[T]{}, fmt.Errorf("at offset %d: %w", c.Position(), ErrUnexpectedToken)
	}
	return Peeked[T]{Find: find, Data: c.Remaining()}, nil
}
