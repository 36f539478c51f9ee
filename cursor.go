package peck

import "fmt"

// Cursor is a position over an immutable element slice. The slice is never
// mutated through the cursor, and the offset stays within [0, len] after
// every successful operation.
//
// A cursor is single-threaded state. Independent cursors over the same
// slice may be used concurrently because all access to the slice is
// read-only.
type Cursor[T any] struct {
	data   []T
	offset int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor[T any](data []T) *Cursor[T] {
	return &Cursor[T]{data: data}
}

// Bump advances the cursor by n elements.
func (c *Cursor[T]) Bump(n int) error {
	if n < 0 || c.offset+n > len(c.data) {
		return fmt.Errorf("bump %d at offset %d/%d: %w", n, c.offset, len(c.data), ErrEndOfInput)
	}
	c.offset += n
	return nil
}

// Rewind retreats the cursor by n elements.
func (c *Cursor[T]) Rewind(n int) error {
	if n < 0 || n > c.offset {
		return fmt.Errorf("rewind %d at offset %d: %w", n, c.offset, ErrEndOfInput)
	}
	c.offset -= n
	return nil
}

// Jump sets the cursor to the absolute offset n.
func (c *Cursor[T]) Jump(n int) error {
	if n < 0 || n > len(c.data) {
		return fmt.Errorf("jump to %d/%d: %w", n, len(c.data), ErrEndOfInput)
	}
	c.offset = n
	return nil
}

// Position reports the current offset into the underlying slice.
func (c *Cursor[T]) Position() int {
	return c.offset
}

// Remaining returns the view from the current offset to the end of the
// underlying slice. The view aliases the input and stays valid after the
// cursor is discarded.
func (c *Cursor[T]) Remaining() []T {
	return c.data[c.offset:]
}

// Data returns the full underlying slice.
func (c *Cursor[T]) Data() []T {
	return c.data
}

// IsEmpty reports whether the cursor has reached the end of its input.
func (c *Cursor[T]) IsEmpty() bool {
	return c.offset == len(c.data)
}

// Fork returns a throwaway cursor over Remaining(), positioned at its
// start. Peek implementations scan on a fork so the parent never moves.
func (c *Cursor[T]) Fork() *Cursor[T] {
	return &Cursor[T]{data: c.data[c.offset:]}
}
