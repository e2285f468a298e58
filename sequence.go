package der

/*
sequence.go implements the ASN.1 SEQUENCE type (X.690 §8.9) as a
message protocol: a message type declares the tag SEQUENCE and
produces its body as an ordered list of heterogeneous encodable
fields; a generic walk over that list computes the total length and
emits bytes. Decoding a message is always a fixed sequence of field
decodes against a cursor bounded to the SEQUENCE's declared length,
with OPTIONAL fields dispatched by tag peek rather than by reflection
over struct tags.
*/

// Message is implemented by any SEQUENCE-shaped type that can produce
// its fields as an ordered list of heterogeneous encodable values.
// [EncodedLenOf] and [EncodeMessage] walk that list generically;
// decoding a Message has no generic counterpart; it is always written
// by hand as cur.Sequence(func(sub *Cursor) error { ... }), decoding
// one field at a time in the fixed order the type defines.
type Message interface {
	Fields() []Encodable
}

// EncodedLenOf returns the full SEQUENCE TLV length for m, computed by
// summing its fields' individual lengths.
func EncodedLenOf(m Message) int {
	fields := m.Fields()
	total := 0
	for _, f := range fields {
		total += f.EncodedLen()
	}
	return Header{Tag: TagSequence, Length: total}.EncodedLen() + total
}

// EncodeMessage writes m as a SEQUENCE whose body is its fields'
// encodings, in order.
func EncodeMessage(buf *Buffer, m Message) error {
	return buf.Message(m.Fields()...)
}

// DecodeOptional attempts to decode an OPTIONAL field tagged tag into
// v. Presence is determined by a tag peek: if the cursor is at the
// end of the enclosing SEQUENCE's body, or the upcoming tag does not
// equal tag, the field is absent and v is left untouched. Absence is
// not an error.
func DecodeOptional(cur *Cursor, tag Tag, v Decodable) (present bool, err error) {
	if cur.AtEnd() {
		return false, nil
	}
	peek, err := cur.PeekTag()
	if err != nil {
		return false, err
	}
	if peek != tag {
		return false, nil
	}
	if err := v.DecodeDER(cur); err != nil {
		return false, err
	}
	return true, nil
}
