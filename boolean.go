package der

/*
boolean.go implements the ASN.1 BOOLEAN type (X.690 §8.2): a single
value octet, 0x00 for false and 0xFF for true. DER narrows this to
exactly those two octets, unlike BER which treats any non-zero octet
as true.
*/

// Boolean implements the ASN.1 BOOLEAN type.
type Boolean bool

// ASN1Tag returns [TagBoolean].
func (Boolean) ASN1Tag() Tag { return TagBoolean }

// EncodedLen returns 3: a one-octet header plus a one-octet value.
func (Boolean) EncodedLen() int { return 3 }

// EncodeDER writes the canonical DER encoding: 0xFF for true, 0x00
// for false.
func (b Boolean) EncodeDER(buf *Buffer) error {
	if err := buf.writeHeader(TagBoolean, 1); err != nil {
		return err
	}
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	return buf.writeByte(v)
}

// DecodeDER reads a BOOLEAN, rejecting any value octet other than
// 0x00 or 0xFF as non-canonical.
func (b *Boolean) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagBoolean)
	if err != nil {
		return err
	}
	if len(value) != 1 {
		return errLength(TagBoolean, pos, "BOOLEAN value must be exactly one octet")
	}
	switch value[0] {
	case 0x00:
		*b = false
	case 0xFF:
		*b = true
	default:
		return errNoncanonical(TagBoolean, pos, "BOOLEAN value octet must be 0x00 or 0xFF")
	}
	return nil
}
