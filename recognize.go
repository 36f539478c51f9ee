package peck

import "fmt"

// Recognize attempts to consume a prefix matched by m. On a hit the cursor
// advances by exactly the consumed length and Recognize returns (true, nil).
// On a miss the cursor is untouched and Recognize returns (false, nil).
// When fewer than m.Size() elements remain it returns ErrEndOfInput with
// the cursor untouched.
func Recognize[T any](c *Cursor[T], m Matcher[T]) (bool, error) {
	rest := c.Remaining()
	if m.Size() > len(rest) {
		return false, fmt.Errorf("need %d elements, have %d: %w", m.Size(), len(rest), ErrEndOfInput)
	}
	ok, n := m.Match(rest)
	if !ok {
		return false, nil
	}
	if err := c.Bump(n); err != nil {
		return false, err
	}
	return true, nil
}

// RecognizeSlice is Recognize, additionally yielding the consumed slice
// view on a hit. The view aliases the cursor's underlying data.
func RecognizeSlice[T any](c *Cursor[T], m Matcher[T]) ([]T, bool, error) {
	rest := c.Remaining()
	if m.Size() > len(rest) {
		return nil, false, fmt.Errorf("need %d elements, have %d: %w", m.Size(), len(rest), ErrEndOfInput)
	}
	ok, n := m.Match(rest)
	if !ok {
		return nil, false, nil
	}
	if err := c.Bump(n); err != nil {
		return nil, false, err
	}
	return rest[:n], true, nil
}

// Expect recognizes m and escalates a miss to ErrUnexpectedToken, for
// linear parsers where the pattern is required.
func Expect[T any](c *Cursor[T], m Matcher[T]) error {
	ok, err := Recognize(c, m)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("at offset %d: %w", c.Position(), ErrUnexpectedToken)
	}
	return nil
}

// ExpectSlice recognizes m, yielding the consumed slice; a miss escalates
// to ErrUnexpectedToken.
func ExpectSlice[T any](c *Cursor[T], m Matcher[T]) ([]T, error) {
	s, ok, err := RecognizeSlice(c, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("at offset %d: %w", c.Position(), ErrUnexpectedToken)
	}
	return s, nil
}
