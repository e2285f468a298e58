package der

/*
any.go implements Any, a type-erased TLV carrier: a retained
reference to a full TLV (its tag and borrowed value bytes), used for
fields whose concrete type is defined elsewhere (e.g. ANY DEFINED BY
algorithm parameters).
*/

// Any borrows a tag and the value bytes of a single TLV, deferring
// interpretation to the caller. Its Value slice references the
// Cursor's input and shares its lifetime.
type Any struct {
	Tag   Tag
	Value []byte
}

// ASN1Tag returns the receiver's tag.
func (a Any) ASN1Tag() Tag { return a.Tag }

// EncodedLen returns the full TLV length of the receiver.
func (a Any) EncodedLen() int {
	return Header{Tag: a.Tag, Length: len(a.Value)}.EncodedLen() + len(a.Value)
}

// EncodeDER writes the receiver's tag, length and value bytes
// verbatim.
func (a Any) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(a.Tag, a.Value)
}

// DecodeDER reads the next TLV, of any tag, and retains its tag and
// value bytes without further interpretation.
func (a *Any) DecodeDER(cur *Cursor) error {
	h, err := cur.readHeader()
	if err != nil {
		return err
	}
	value, err := cur.bytes(h.Length)
	if err != nil {
		return err
	}
	*a = Any{Tag: h.Tag, Value: value}
	return nil
}

// AcceptedTags implements [Choice]: Any accepts any tag, since it
// defers interpretation. The nil result is the unconstrained set
// that [acceptsTag] and [DecodeChoice] treat as matching every tag.
func (a Any) AcceptedTags() []Tag { return nil }
