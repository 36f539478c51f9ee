package peck

import (
	"errors"
	"testing"
)

func TestCursorMotion(t *testing.T) {
	tests := []struct {
		name    string
		ops     func(c *Cursor[byte]) error
		wantPos int
		wantErr bool
	}{
		{"bump within bounds", func(c *Cursor[byte]) error { return c.Bump(3) }, 3, false},
		{"bump to end", func(c *Cursor[byte]) error { return c.Bump(5) }, 5, false},
		{"bump past end", func(c *Cursor[byte]) error { return c.Bump(6) }, 0, true},
		{"bump negative", func(c *Cursor[byte]) error { return c.Bump(-1) }, 0, true},
		{"rewind after bump", func(c *Cursor[byte]) error {
			if err := c.Bump(4); err != nil {
				return err
			}
			return c.Rewind(2)
		}, 2, false},
		{"rewind underflow", func(c *Cursor[byte]) error { return c.Rewind(1) }, 0, true},
		{"jump absolute", func(c *Cursor[byte]) error { return c.Jump(4) }, 4, false},
		{"jump to len", func(c *Cursor[byte]) error { return c.Jump(5) }, 5, false},
		{"jump past len", func(c *Cursor[byte]) error { return c.Jump(6) }, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor([]byte("hello"))
			err := tt.ops(c)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrEndOfInput) {
					t.Errorf("error = %v, want ErrEndOfInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Position(); got != tt.wantPos {
				t.Errorf("Position() = %d, want %d", got, tt.wantPos)
			}
		})
	}
}

func TestCursorFailedMotionKeepsOffset(t *testing.T) {
	c := NewCursor([]byte("abc"))
	if err := c.Bump(2); err != nil {
		t.Fatal(err)
	}
	if err := c.Bump(5); err == nil {
		t.Fatal("expected error")
	}
	if got := c.Position(); got != 2 {
		t.Errorf("Position() after failed bump = %d, want 2", got)
	}
	if err := c.Rewind(3); err == nil {
		t.Fatal("expected error")
	}
	if got := c.Position(); got != 2 {
		t.Errorf("Position() after failed rewind = %d, want 2", got)
	}
}

func TestCursorViews(t *testing.T) {
	data := []byte("hello")
	c := NewCursor(data)
	if err := c.Bump(2); err != nil {
		t.Fatal(err)
	}
	if got := string(c.Remaining()); got != "llo" {
		t.Errorf("Remaining() = %q, want %q", got, "llo")
	}
	if got := string(c.Data()); got != "hello" {
		t.Errorf("Data() = %q, want %q", got, "hello")
	}
	if c.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if err := c.Jump(5); err != nil {
		t.Fatal(err)
	}
	if !c.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if got := len(c.Remaining()); got != 0 {
		t.Errorf("len(Remaining()) = %d, want 0", got)
	}
}

func TestCursorForkIsIndependent(t *testing.T) {
	c := NewCursor([]byte("hello"))
	if err := c.Bump(1); err != nil {
		t.Fatal(err)
	}
	fork := c.Fork()
	if got := string(fork.Remaining()); got != "ello" {
		t.Errorf("fork Remaining() = %q, want %q", got, "ello")
	}
	if err := fork.Bump(3); err != nil {
		t.Fatal(err)
	}
	if got := c.Position(); got != 1 {
		t.Errorf("parent Position() = %d, want 1 after fork motion", got)
	}
}
