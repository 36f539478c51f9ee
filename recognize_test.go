package peck

import (
	"errors"
	"testing"
)

func lit(s string) Literal[byte] {
	return Literal[byte]{Seq: []byte(s)}
}

func TestRecognize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		matcher Matcher[byte]
		wantOK  bool
		wantPos int
		wantErr error
	}{
		{"hit advances by consumed", "hello world", lit("hello"), true, 5, nil},
		{"miss keeps cursor", "hello", lit("world"), false, 0, nil},
		{"short input fails probe", "he", lit("hello"), false, 0, ErrEndOfInput},
		{"empty matcher hits without advance", "abc", lit(""), true, 0, nil},
		{"data-dependent size on short input", "", MatchFunc[byte](func(p []byte) (bool, int) {
			return false, 0
		}), false, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor([]byte(tt.input))
			ok, err := Recognize(c, tt.matcher)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if got := c.Position(); got != tt.wantPos {
					t.Errorf("Position() = %d, want %d", got, tt.wantPos)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got := c.Position(); got != tt.wantPos {
				t.Errorf("Position() = %d, want %d", got, tt.wantPos)
			}
		})
	}
}

func TestRecognizeSlice(t *testing.T) {
	c := NewCursor([]byte("hello world"))
	s, ok, err := RecognizeSlice(c, lit("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if got := string(s); got != "hello" {
		t.Errorf("slice = %q, want %q", got, "hello")
	}
	if got := c.Position(); got != 5 {
		t.Errorf("Position() = %d, want 5", got)
	}

	s, ok, err = RecognizeSlice(c, lit("planet"))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("ok = true, want false")
	}
	if s != nil {
		t.Errorf("slice = %q, want nil", s)
	}
	if got := c.Position(); got != 5 {
		t.Errorf("Position() after miss = %d, want 5", got)
	}
}

func TestRecognizeSliceAliasesInput(t *testing.T) {
	data := []byte("abc")
	c := NewCursor(data)
	s, ok, err := RecognizeSlice(c, lit("ab"))
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if &s[0] != &data[0] {
		t.Error("returned slice does not alias the input")
	}
}

func TestExpect(t *testing.T) {
	c := NewCursor([]byte("abc"))
	if err := Expect(c, lit("ab")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Expect(c, lit("x"))
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("error = %v, want ErrUnexpectedToken", err)
	}
	if got := c.Position(); got != 2 {
		t.Errorf("Position() after failed Expect = %d, want 2", got)
	}
}

func TestExpectSlice(t *testing.T) {
	c := NewCursor([]byte("abc"))
	s, err := ExpectSlice(c, lit("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(s); got != "abc" {
		t.Errorf("slice = %q, want %q", got, "abc")
	}
	if _, err := ExpectSlice(c, lit("")); err != nil {
		t.Fatalf("empty literal at end: %v", err)
	}
}

func TestRecognizedVisitor(t *testing.T) {
	c := NewCursor([]byte("ab"))
	v := Recognized[byte](lit("ab"))
	m, ok, err := v.Accept(c)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if got := string(m.Seq); got != "ab" {
		t.Errorf("value = %q, want %q", got, "ab")
	}
	if got := c.Position(); got != 2 {
		t.Errorf("Position() = %d, want 2", got)
	}
}

func TestAttemptRewindsOnMiss(t *testing.T) {
	c := NewCursor([]byte("abcdef"))
	greedy := VisitorFunc[byte, string](func(c *Cursor[byte]) (string, bool, error) {
		// advances before discovering it cannot accept
		if err := c.Bump(3); err != nil {
			return "", false, err
		}
		return "", false, nil
	})
	_, ok, err := Attempt[byte, string](c, greedy)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("ok = true, want false")
	}
	if got := c.Position(); got != 0 {
		t.Errorf("Position() = %d, want 0", got)
	}
}

func TestMapRewrapsValue(t *testing.T) {
	c := NewCursor([]byte("42"))
	digits := MatchFunc[byte](func(p []byte) (bool, int) {
		n := 0
		for n < len(p) && p[n] >= '0' && p[n] <= '9' {
			n++
		}
		return n > 0, n
	})
	number := Map[byte, []byte, string](
		VisitorFunc[byte, []byte](func(c *Cursor[byte]) ([]byte, bool, error) {
			return RecognizeSlice[byte](c, digits)
		}),
		func(b []byte) string { return string(b) },
	)
	got, ok, err := number.Accept(c)
	if err != nil || !ok {
		t.Fatalf("ok = %v, err = %v", ok, err)
	}
	if got != "42" {
		t.Errorf("value = %q, want %q", got, "42")
	}
}
