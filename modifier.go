package peck

import "errors"

// Until returns a peekable locating the first position at which v
// accepts. The find ends one past the accepted region; the accepted
// length becomes the trailing sentinel, so Body excludes the terminator.
// An ErrEndOfInput failure from v mid-scan counts as a miss at that
// position.
func Until[T, V any](v Visitor[T, V]) Peekable[T] {
	return PeekableFunc[T](func(c *Cursor[T]) (Find, bool, error) {
		fork := c.Fork()
		for {
			if fork.IsEmpty() {
				return Find{}, false, nil
			}
			start := fork.Position()
			_, ok, err := v.Accept(fork)
			if err != nil && !errors.Is(err, ErrEndOfInput) {
				return Find{}, false, err
			}
			if err == nil && ok {
				return Find{End: fork.Position(), EndLen: fork.Position() - start}, true, nil
			}
			if jerr := fork.Jump(start); jerr != nil {
				return Find{}, false, jerr
			}
			if berr := fork.Bump(1); berr != nil {
				return Find{}, false, berr
			}
		}
	})
}

// Last returns a peekable that applies p at successive positions of the
// remaining slice, advancing past each find (and by one element on a
// miss), and reports the final find with offsets absolutized to the
// original position. Scanning by one on a miss is what lets Last over an
// at-position peekable locate the rightmost occurrence.
func Last[T any](p Peekable[T]) Peekable[T] {
	return PeekableFunc[T](func(c *Cursor[T]) (Find, bool, error) {
		fork := c.Fork()
		var best Find
		found := false
		for !fork.IsEmpty() {
			at := fork.Position()
			find, ok, err := p.Peek(fork)
			if err != nil {
				if !errors.Is(err, ErrEndOfInput) {
					return Find{}, false, err
				}
				ok = false
			}
			if ok {
				best = Find{End: at + find.End, StartLen: find.StartLen, EndLen: find.EndLen}
				found = true
				step := find.End
				if step < 1 {
					step = 1
				}
				if berr := fork.Bump(step); berr != nil {
					break
				}
			} else if berr := fork.Bump(1); berr != nil {
				break
			}
		}
		return best, found, nil
	})
}
