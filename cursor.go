package der

/*
cursor.go implements a cursor-based decoder: a single stateful,
bounds-checked reader over a borrowed byte slice, with nested-scope
decoding for constructed types and a recursion cap to bound stack use
on adversarial input.
*/

// maxNestingDepth bounds recursion through nested/sequence calls to a
// conservative constant, since DER places no limit on how deeply a
// constructed value may nest.
const maxNestingDepth = 32

// Decodable is implemented by any type that knows how to decode its
// own DER TLV (tag, length and value) from a [Cursor].
type Decodable interface {
	DecodeDER(cur *Cursor) error
}

// Cursor is a read-only, bounds-checked reader over a borrowed byte
// slice. Its position is monotonically non-decreasing and never
// exceeds the length of the input. Cursors are scoped to a single
// decode call tree; types decoded from a Cursor (e.g. [Any],
// [OctetString], string types) borrow references into the Cursor's
// input and share its lifetime.
type Cursor struct {
	input []byte
	pos   int
	depth int
}

// NewCursor returns a [Cursor] over the given input. The input is
// borrowed, not copied.
func NewCursor(input []byte) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the cursor's current read position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the cursor's input.
func (c *Cursor) Len() int { return len(c.input) }

// Remaining reports the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.input) - c.pos }

// PeekTag inspects the upcoming identifier octet without advancing
// the cursor. Used to drive OPTIONAL and CHOICE dispatch.
func (c *Cursor) PeekTag() (Tag, error) {
	if c.pos >= len(c.input) {
		return Tag{}, errTruncated(c.pos)
	}
	return decodeTag(c.input[c.pos], c.pos)
}

// AtEnd reports whether the cursor has consumed its entire input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.input) }

// readHeader reads a Header at the current position and advances
// the cursor past the tag and length octets (not the value).
func (c *Cursor) readHeader() (Header, error) {
	h, n, err := decodeHeader(c.input, c.pos)
	if err != nil {
		return Header{}, err
	}
	if c.pos+n+h.Length > len(c.input) {
		return Header{}, errTruncated(c.pos)
	}
	c.pos += n
	return h, nil
}

// bytes reads exactly n raw bytes starting at the current position
// and advances the cursor by n.
func (c *Cursor) bytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.input) {
		return nil, errTruncated(c.pos)
	}
	v := c.input[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

// primitiveValue reads a TLV header, asserts its tag equals
// expected, then returns its value bytes, advancing the cursor past
// the full TLV.
func (c *Cursor) primitiveValue(expected Tag) ([]byte, error) {
	start := c.pos
	h, err := c.readHeader()
	if err != nil {
		return nil, err
	}
	if err := h.Tag.assertEqual(expected, start); err != nil {
		return nil, err
	}
	return c.bytes(h.Length)
}

// Nested runs fn against a sub-cursor bounded to exactly length
// bytes starting at the current position. On success the outer
// cursor advances by length; fn must consume the sub-cursor fully
// or [KindTrailing] is raised.
func (c *Cursor) Nested(length int, fn func(*Cursor) error) error {
	if length < 0 || c.pos+length > len(c.input) {
		return errTruncated(c.pos)
	}
	if c.depth+1 > maxNestingDepth {
		return errOverflow(c.pos, "recursion depth exceeds maximum")
	}

	sub := &Cursor{input: c.input[c.pos : c.pos+length], depth: c.depth + 1}
	if err := fn(sub); err != nil {
		return err
	}
	if sub.pos != length {
		return errTrailing(c.pos + sub.pos)
	}

	c.pos += length
	return nil
}

// Sequence reads a SEQUENCE header (the tag must equal [TagSequence])
// then calls Nested with its declared length.
func (c *Cursor) Sequence(fn func(*Cursor) error) error {
	start := c.pos
	h, err := c.readHeader()
	if err != nil {
		return err
	}
	if err := h.Tag.assertEqual(TagSequence, start); err != nil {
		return err
	}
	return c.Nested(h.Length, fn)
}

// Decode invokes v's own DecodeDER method against the cursor.
func (c *Cursor) Decode(v Decodable) error { return v.DecodeDER(c) }

// Finish succeeds only when the cursor has consumed its entire
// input; otherwise it reports [KindTrailing].
func (c *Cursor) Finish() error {
	if !c.AtEnd() {
		return errTrailing(c.pos)
	}
	return nil
}

// FromDER decodes v from data and requires the entire input be
// consumed by a single top-level value.
func FromDER(data []byte, v Decodable) error {
	cur := NewCursor(data)
	if err := v.DecodeDER(cur); err != nil {
		return err
	}
	return cur.Finish()
}
