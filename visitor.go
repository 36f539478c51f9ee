package peck

// Visitor is a composite consumer: it accepts input at the cursor and
// produces a value, or reports a miss or an error. A visitor may advance
// the cursor arbitrarily on a hit and must leave it untouched on a miss.
// Visitors compose; a visitor's body typically calls Recognize and other
// visitors.
type Visitor[T, V any] interface {
	Accept(c *Cursor[T]) (V, bool, error)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[T, V any] func(c *Cursor[T]) (V, bool, error)

func (f VisitorFunc[T, V]) Accept(c *Cursor[T]) (V, bool, error) { return f(c) }

// Attempt runs v and rewinds the cursor to its entry position when v
// reports a miss, enforcing the visitor contract for bodies that advance
// before discovering they cannot accept.
func Attempt[T, V any](c *Cursor[T], v Visitor[T, V]) (V, bool, error) {
	start := c.Position()
	val, ok, err := v.Accept(c)
	if err != nil {
		return val, false, err
	}
	if !ok {
		if jerr := c.Jump(start); jerr != nil {
			return val, false, jerr
		}
		return val, false, nil
	}
	return val, true, nil
}

// Recognized induces the visitor for a matcher: recognize it, then yield
// the matcher value itself.
func Recognized[T any, M Matcher[T]](m M) Visitor[T, M] {
	return VisitorFunc[T, M](func(c *Cursor[T]) (M, bool, error) {
		ok, err := Recognize[T](c, m)
		return m, ok, err
	})
}

// Map rewraps the value produced by v, so visitors with different value
// types can feed one Acceptor.
func Map[T, U, V any](v Visitor[T, U], f func(U) V) Visitor[T, V] {
	return VisitorFunc[T, V](func(c *Cursor[T]) (V, bool, error) {
		u, ok, err := v.Accept(c)
		if err != nil || !ok {
			var zero V
			return zero, false, err
		}
		return f(u), true, nil
	})
}
