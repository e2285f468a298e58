package der

/*
null.go implements the ASN.1 NULL type (X.690 §8.8): a value whose
length must be exactly zero.
*/

// Null implements the ASN.1 NULL type (tag 5). Its only valid value
// is the zero-length value itself.
type Null struct{}

// ASN1Tag returns [TagNull].
func (Null) ASN1Tag() Tag { return TagNull }

// EncodedLen returns 2: a one-octet header plus a zero-octet value.
func (Null) EncodedLen() int { return 2 }

// EncodeDER writes the two-octet NULL encoding (0x05 0x00).
func (Null) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagNull, nil)
}

// DecodeDER reads a NULL, rejecting any non-zero-length value.
func (r *Null) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagNull)
	if err != nil {
		return err
	}
	if len(value) != 0 {
		return errLength(TagNull, pos, "NULL value must be empty")
	}
	*r = Null{}
	return nil
}
