package der

/*
header.go implements Header, the (Tag, Length) pair that forms the
identifier-and-length prologue of every DER-encoded TLV (X.690 §8.1).
*/

// Header is the tag/length prologue of a TLV. It is produced and
// consumed atomically by [Cursor] and [Buffer].
type Header struct {
	Tag    Tag
	Length int
}

// EncodedLen returns the number of octets this header occupies when
// encoded: one tag octet plus the length's encoded size.
func (h Header) EncodedLen() int {
	return 1 + encodedLengthSize(h.Length)
}

// encode appends the DER encoding of h to dst.
func (h Header) encode(dst []byte) ([]byte, error) {
	tb, err := h.Tag.byteValue()
	if err != nil {
		return nil, err
	}
	dst = append(dst, tb)
	return encodeLength(h.Length, dst)
}

// decodeHeader reads a tag octet followed by a length field from b
// starting at off, returning the parsed Header and the number of
// octets consumed.
func decodeHeader(b []byte, off int) (h Header, consumed int, err error) {
	if off >= len(b) {
		return Header{}, 0, errTruncated(off)
	}

	tag, err := decodeTag(b[off], off)
	if err != nil {
		return Header{}, 0, err
	}

	length, lenConsumed, err := decodeLength(b, off+1)
	if err != nil {
		return Header{}, 0, err
	}

	return Header{Tag: tag, Length: length}, 1 + lenConsumed, nil
}
