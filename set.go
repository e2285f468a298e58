package der

/*
set.go implements the ASN.1 SET OF type (X.690 §8.12) and its DER
canonical-order rule: elements must be sorted ascending by their full
DER encoding, compared byte-for-byte with the shorter encoding
ordered first at the first differing length. The encoder sorts; the
decoder rejects out-of-order input.
*/

import "bytes"

// compareDER orders two DER encodings per the SET OF canonical rule:
// lexicographic byte comparison, shorter-is-smaller at the first
// differing length. bytes.Compare already implements exactly this.
func compareDER(a, b []byte) int { return bytes.Compare(a, b) }

// decodablePtr constrains PT to be a pointer to T that implements
// Decodable, letting [DecodeSetOf] construct elements generically.
type decodablePtr[T any] interface {
	*T
	Decodable
}

// SetOf implements the ASN.1 SET OF type (tag 17) over a concrete
// element type.
type SetOf[T Encodable] []T

// ASN1Tag returns [TagSet].
func (SetOf[T]) ASN1Tag() Tag { return TagSet }

// EncodedLen returns the full TLV length of the receiver.
func (s SetOf[T]) EncodedLen() int {
	total := 0
	for _, e := range s {
		total += e.EncodedLen()
	}
	return Header{Tag: TagSet, Length: total}.EncodedLen() + total
}

// EncodeDER writes the receiver's elements sorted ascending by their
// full DER encoding.
func (s SetOf[T]) EncodeDER(buf *Buffer) error {
	elems := make([]Encodable, len(s))
	for i, e := range s {
		elems[i] = e
	}
	return buf.SetOf(elems)
}

// DecodeDER reads a SET OF, rejecting elements that are not in
// ascending canonical order.
func (s *SetOf[T]) DecodeDER(cur *Cursor) error {
	var out []T
	err := cur.SetOf(func(sub *Cursor) error {
		var v T
		if dv, ok := any(&v).(Decodable); ok {
			if err := dv.DecodeDER(sub); err != nil {
				return err
			}
			out = append(out, v)
			return nil
		}
		return errValue(TagSet, sub.pos, "element type does not implement Decodable")
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// SetOf on [Buffer] writes a SET whose body is elems encoded and
// sorted ascending by their full DER encoding, per the canonical SET
// OF rule. Computing the sort order requires materializing each
// element's full encoding in its own temporary buffer before any of
// them is written to b.
func (b *Buffer) SetOf(elems []Encodable) error {
	encoded := make([][]byte, len(elems))
	for i, e := range elems {
		tmp := make([]byte, e.EncodedLen())
		eb := NewBuffer(tmp)
		if err := e.EncodeDER(eb); err != nil {
			return err
		}
		encoded[i] = tmp
	}
	sortByteSlices(encoded)

	total := 0
	for _, e := range encoded {
		total += len(e)
	}
	if err := b.writeHeader(TagSet, total); err != nil {
		return err
	}
	for _, e := range encoded {
		if err := b.writeBytes(e); err != nil {
			return err
		}
	}
	return nil
}

func sortByteSlices(s [][]byte) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && compareDER(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// SetOf reads a SET whose tag must equal [TagSet], then repeatedly
// invokes decodeElem against a cursor bounded to the SET's body until
// it is exhausted. Each call to decodeElem must consume exactly one
// element; elements are required to appear in ascending canonical
// order, matching the rule the encoder enforces.
func (c *Cursor) SetOf(decodeElem func(*Cursor) error) error {
	start := c.pos
	h, err := c.readHeader()
	if err != nil {
		return err
	}
	if err := h.Tag.assertEqual(TagSet, start); err != nil {
		return err
	}

	return c.Nested(h.Length, func(sub *Cursor) error {
		var prev []byte
		for !sub.AtEnd() {
			elemStart := sub.pos
			if err := decodeElem(sub); err != nil {
				return err
			}
			raw := sub.input[elemStart:sub.pos]
			if prev != nil && compareDER(raw, prev) < 0 {
				return errNoncanonical(TagSet, start, "SET OF elements must be sorted ascending")
			}
			prev = raw
		}
		return nil
	})
}

// DecodeSetOf reads a SET OF into a freshly allocated []T, using PT
// (a pointer to T) to decode each element.
func DecodeSetOf[T any, PT decodablePtr[T]](cur *Cursor) ([]T, error) {
	var out []T
	err := cur.SetOf(func(sub *Cursor) error {
		var v T
		if err := PT(&v).DecodeDER(sub); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	return out, err
}
