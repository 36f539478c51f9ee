package peck

import "errors"

// Recognizer tries matchers against a cursor in registration order; the
// first hit wins and fills the result slot. Register more specific
// patterns first ("hello" before "hell").
//
// A candidate that fails with ErrEndOfInput leaves the cursor untouched,
// so the recognizer treats it as a miss and keeps trying shorter
// candidates. Any other error latches and short-circuits the chain.
type Recognizer[T any] struct {
	cursor *Cursor[T]
	result Matcher[T]
	err    error
}

// NewRecognizer returns a recognizer-of-alternatives over c.
func NewRecognizer[T any](c *Cursor[T]) *Recognizer[T] {
	return &Recognizer[T]{cursor: c}
}

// TryOr registers m as the next candidate. Once a candidate has hit,
// further calls are no-ops.
func (r *Recognizer[T]) TryOr(m Matcher[T]) *Recognizer[T] {
	if r.err != nil || r.result != nil {
		return r
	}
	ok, err := Recognize(r.cursor, m)
	if err != nil {
		if !errors.Is(err, ErrEndOfInput) {
			r.err = err
		}
		return r
	}
	if ok {
		r.result = m
	}
	return r
}

// Finish reports the winning matcher, if any. The cursor reflects the
// winner's advance; on all-miss it is exactly where it started.
func (r *Recognizer[T]) Finish() (Matcher[T], bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}
	return r.result, r.result != nil, nil
}

// Acceptor tries visitors against a cursor in registration order; the
// first hit wins. It is the visitor-level analogue of Recognizer, with the
// same first-wins and rollback rules. Each candidate runs inside a
// snapshot: on a miss (or an ErrEndOfInput failure) the cursor is restored
// and the next candidate gets a clean start.
type Acceptor[T, V any] struct {
	cursor *Cursor[T]
	result V
	ok     bool
	err    error
}

// NewAcceptor returns an acceptor-of-alternatives over c producing values
// of type V.
func NewAcceptor[T, V any](c *Cursor[T]) *Acceptor[T, V] {
	return &Acceptor[T, V]{cursor: c}
}

// TryOr registers v as the next candidate. Use Map to adapt visitors whose
// value type differs from V.
func (a *Acceptor[T, V]) TryOr(v Visitor[T, V]) *Acceptor[T, V] {
	if a.err != nil || a.ok {
		return a
	}
	start := a.cursor.Position()
	val, ok, err := v.Accept(a.cursor)
	if err != nil {
		if errors.Is(err, ErrEndOfInput) {
			if jerr := a.cursor.Jump(start); jerr != nil {
				a.err = jerr
			}
			return a
		}
		a.err = err
		return a
	}
	if !ok {
		if jerr := a.cursor.Jump(start); jerr != nil {
			a.err = jerr
		}
		return a
	}
	a.result = val
	a.ok = true
	return a
}

// Finish reports the first accepted value, if any.
func (a *Acceptor[T, V]) Finish() (V, bool, error) {
	if a.err != nil {
		var zero V
		return zero, false, a.err
	}
	return a.result, a.ok, nil
}

// Peeker tries peekables against a cursor and keeps the find with the
// shortest body (End - EndLen), independent of registration order. Equal
// lengths keep the earlier registration. The cursor is never moved.
//
// Shortest-wins is deliberate and distinct from the consuming builders:
// a lookahead over "7 * ( 1 + 2 )" must stop at the nearest terminator
// whichever operator it is.
type Peeker[T any] struct {
	cursor *Cursor[T]
	best   Find
	found  bool
	err    error
}

// NewPeeker returns a peeker-of-alternatives over c.
func NewPeeker[T any](c *Cursor[T]) *Peeker[T] {
	return &Peeker[T]{cursor: c}
}

// TryOr registers p as a candidate. Unlike the consuming builders, every
// candidate is always evaluated; the shortest find is retained.
func (p *Peeker[T]) TryOr(cand Peekable[T]) *Peeker[T] {
	if p.err != nil {
		return p
	}
	find, ok, err := cand.Peek(p.cursor)
	if err != nil {
		if !errors.Is(err, ErrEndOfInput) {
			p.err = err
		}
		return p
	}
	if !ok {
		return p
	}
	if !p.found || find.End-find.EndLen < p.best.End-p.best.EndLen {
		p.best = find
		p.found = true
	}
	return p
}

// Peek reports the best find over all registered candidates.
func (p *Peeker[T]) Peek() (Peeked[T], bool, error) {
	if p.err != nil {
		return Peeked[T]{}, false, p.err
	}
	if !p.found {
		return Peeked[T]{}, false, nil
	}
	return Peeked[T]{Find: p.best, Data: p.cursor.Remaining()}, true, nil
}
