package peck

import "errors"

// SeparatedList accepts element (separator element)* and collects the
// element values. The loop ends on the first miss of either visitor: an
// element miss commits the position before the attempt, a separator miss
// restores to before the separator. A separator that fails with
// ErrEndOfInput counts as a miss, so the list ends cleanly at the end of
// the input. Other errors propagate verbatim, so a trailing separator
// makes an assertive element visitor fail the whole accept rather than
// being trimmed silently; use TrimTrailingSeparator first to tolerate one.
type SeparatedList[T, V, S any] struct {
	Element   Visitor[T, V]
	Separator Visitor[T, S]
}

// Accept implements Visitor over the collected element values. An empty
// input (or an immediate element miss) yields an empty hit.
func (l SeparatedList[T, V, S]) Accept(c *Cursor[T]) ([]V, bool, error) {
	var values []V
	for {
		start := c.Position()
		v, ok, err := l.Element.Accept(c)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			if jerr := c.Jump(start); jerr != nil {
				return nil, false, jerr
			}
			break
		}
		values = append(values, v)

		mark := c.Position()
		_, ok, err = l.Separator.Accept(c)
		if err != nil && !errors.Is(err, ErrEndOfInput) {
			return nil, false, err
		}
		if err != nil {
			ok = false
		}
		if !ok {
			if jerr := c.Jump(mark); jerr != nil {
				return nil, false, jerr
			}
			break
		}
	}
	return values, true, nil
}

// TrimTrailingSeparator returns a cursor over a truncated view of c's
// remaining elements: when the input ends in a separator found by sep, the
// view stops just before that separator; otherwise it is the remaining
// view unchanged. Input consisting only of separators truncates to an
// empty cursor. The original cursor is not moved.
func TrimTrailingSeparator[T any](c *Cursor[T], sep Peekable[T]) (*Cursor[T], error) {
	rest := c.Remaining()
	find, ok, err := Last(sep).Peek(c)
	if err != nil {
		return nil, err
	}
	if !ok || find.End != len(rest) {
		return NewCursor(rest), nil
	}
	return NewCursor(rest[:find.End-find.EndLen]), nil
}
