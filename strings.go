package der

/*
strings.go implements three ASN.1 character string types whose
storage is byte-identical to their DER value octets but whose decode
validators differ: UTF8String (tag 12, well-formed UTF-8, defined in
ITU-T Rec. X.680), PrintableString (tag 19, a restricted ASCII
subset) and IA5String (tag 22, the full 7-bit ASCII range).
*/

import "unicode/utf8"

// UTF8String implements the ASN.1 UTF8String type (tag 12).
type UTF8String string

// ASN1Tag returns [TagUTF8String].
func (UTF8String) ASN1Tag() Tag { return TagUTF8String }

// EncodedLen returns the full TLV length of the receiver.
func (r UTF8String) EncodedLen() int {
	return Header{Tag: TagUTF8String, Length: len(r)}.EncodedLen() + len(r)
}

// EncodeDER writes the receiver's UTF-8 bytes verbatim.
func (r UTF8String) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagUTF8String, []byte(r))
}

// DecodeDER reads a UTF8String, rejecting malformed UTF-8.
func (r *UTF8String) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagUTF8String)
	if err != nil {
		return err
	}
	if !utf8.Valid(value) {
		return errUTF8(pos)
	}
	*r = UTF8String(value)
	return nil
}

// PrintableString implements the ASN.1 PrintableString type (tag
// 19): `A-Z a-z 0-9 ' ( ) + , - . / : = ?` and space.
type PrintableString string

// ASN1Tag returns [TagPrintableString].
func (PrintableString) ASN1Tag() Tag { return TagPrintableString }

// EncodedLen returns the full TLV length of the receiver.
func (r PrintableString) EncodedLen() int {
	return Header{Tag: TagPrintableString, Length: len(r)}.EncodedLen() + len(r)
}

// EncodeDER writes the receiver's bytes verbatim.
func (r PrintableString) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagPrintableString, []byte(r))
}

// DecodeDER reads a PrintableString, rejecting any byte outside its
// restricted character set.
func (r *PrintableString) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagPrintableString)
	if err != nil {
		return err
	}
	for i, b := range value {
		if !isPrintableStringChar(b) {
			return errValue(TagPrintableString, pos+i, "disallowed character in PrintableString")
		}
	}
	*r = PrintableString(value)
	return nil
}

func isPrintableStringChar(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

// IA5String implements the ASN.1 IA5String type (tag 22): the full
// 7-bit ASCII range (0x00-0x7F).
type IA5String string

// ASN1Tag returns [TagIA5String].
func (IA5String) ASN1Tag() Tag { return TagIA5String }

// EncodedLen returns the full TLV length of the receiver.
func (r IA5String) EncodedLen() int {
	return Header{Tag: TagIA5String, Length: len(r)}.EncodedLen() + len(r)
}

// EncodeDER writes the receiver's bytes verbatim.
func (r IA5String) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagIA5String, []byte(r))
}

// DecodeDER reads an IA5String, rejecting any byte with its high bit
// set.
func (r *IA5String) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagIA5String)
	if err != nil {
		return err
	}
	for i, b := range value {
		if b > 0x7F {
			return errValue(TagIA5String, pos+i, "disallowed byte in IA5String")
		}
	}
	*r = IA5String(value)
	return nil
}
