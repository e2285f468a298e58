package der

import "testing"

func TestCursorPeekTagDoesNotAdvance(t *testing.T) {
	cur := NewCursor([]byte{0x05, 0x00})
	tag, err := cur.PeekTag()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != TagNull {
		t.Fatalf("got %v", tag)
	}
	if cur.Pos() != 0 {
		t.Fatalf("PeekTag advanced cursor to %d", cur.Pos())
	}
}

func TestCursorSequenceConsumesExactly(t *testing.T) {
	// SEQUENCE { NULL }
	data := []byte{0x30, 0x02, 0x05, 0x00}
	cur := NewCursor(data)
	err := cur.Sequence(func(sub *Cursor) error {
		var n Null
		return sub.Decode(&n)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cur.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestCursorSequenceRejectsTrailingBytes(t *testing.T) {
	// SEQUENCE declares length 4 but body has only one NULL (2 bytes)
	// plus two stray bytes the inner decode does not consume.
	data := []byte{0x30, 0x04, 0x05, 0x00, 0xFF, 0xFF}
	cur := NewCursor(data)
	err := cur.Sequence(func(sub *Cursor) error {
		var n Null
		return sub.Decode(&n)
	})
	if err == nil {
		t.Fatal("expected trailing-bytes error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindTrailing {
		t.Fatalf("got %v, want KindTrailing", err)
	}
}

func TestCursorRejectsTruncatedLength(t *testing.T) {
	// SEQUENCE declares a body longer than the remaining input.
	data := []byte{0x30, 0x05, 0x05, 0x00}
	cur := NewCursor(data)
	err := cur.Sequence(func(sub *Cursor) error { return nil })
	if err == nil {
		t.Fatal("expected truncated error")
	}
}

func TestCursorNestingDepthCap(t *testing.T) {
	// Build maxNestingDepth+1 levels of nested SEQUENCEs around a
	// single NULL; the innermost open attempt must fail with
	// KindOverflow.
	data := []byte{0x05, 0x00}
	for i := 0; i <= maxNestingDepth; i++ {
		data = append([]byte{0x30, byte(len(data))}, data...)
	}
	cur := NewCursor(data)
	var walk func(sub *Cursor) error
	walk = func(sub *Cursor) error {
		if sub.AtEnd() {
			return nil
		}
		return sub.Sequence(walk)
	}
	err := cur.Sequence(walk)
	if err == nil {
		t.Fatal("expected recursion depth error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindOverflow {
		t.Fatalf("got %v, want KindOverflow", err)
	}
}

func TestFromDERRequiresFullConsumption(t *testing.T) {
	data := []byte{0x05, 0x00, 0xFF}
	var n Null
	err := FromDER(data, &n)
	if err == nil {
		t.Fatal("expected trailing-bytes error")
	}
}

func TestFromDEREmptyInput(t *testing.T) {
	var n Null
	if err := FromDER(nil, &n); err == nil {
		t.Fatal("expected truncated error")
	}
}
