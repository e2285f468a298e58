package der

/*
octetstring.go implements the ASN.1 OCTET STRING type (X.690 §8.7):
opaque bytes with no canonical constraint beyond the minimal length
encoding every DER value already requires.
*/

// OctetString implements the ASN.1 OCTET STRING type (tag 4).
type OctetString []byte

// ASN1Tag returns [TagOctetString].
func (OctetString) ASN1Tag() Tag { return TagOctetString }

// EncodedLen returns the full TLV length of the receiver.
func (r OctetString) EncodedLen() int {
	return Header{Tag: TagOctetString, Length: len(r)}.EncodedLen() + len(r)
}

// EncodeDER writes the receiver's bytes verbatim.
func (r OctetString) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagOctetString, r)
}

// DecodeDER reads an OCTET STRING's value bytes verbatim.
func (r *OctetString) DecodeDER(cur *Cursor) error {
	value, err := cur.primitiveValue(TagOctetString)
	if err != nil {
		return err
	}
	*r = OctetString(value)
	return nil
}
