package der

/*
bitstring.go implements the ASN.1 BIT STRING type (X.690 §8.6): a
leading "unused bits" count octet (0-7) followed by the bit payload.
DER additionally requires any unused trailing bits to be zero and
rejects an unused-bit count greater than 7, neither of which BER
enforces.
*/

// BitString implements the ASN.1 BIT STRING type (tag 3). Bytes
// holds the bit payload (with trailing unused bits zeroed);
// BitLength is the number of significant bits.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// NewBitString returns a [BitString] for the given bit payload and
// significant bit count. bitLength must not exceed len(bytes)*8, and
// any bits beyond bitLength must already be zero in bytes.
func NewBitString(bytes []byte, bitLength int) (BitString, error) {
	if bitLength < 0 || bitLength > len(bytes)*8 {
		return BitString{}, errValue(TagBitString, -1, "bit length out of range for payload")
	}
	if err := checkTrailingZero(bytes, bitLength); err != nil {
		return BitString{}, err
	}
	return BitString{Bytes: bytes, BitLength: bitLength}, nil
}

func checkTrailingZero(bytes []byte, bitLength int) error {
	unused := len(bytes)*8 - bitLength
	if unused == 0 || len(bytes) == 0 {
		return nil
	}
	last := bytes[len(bytes)-1]
	mask := byte(1<<uint(unused) - 1)
	if last&mask != 0 {
		return errValue(TagBitString, -1, "unused trailing bits must be zero")
	}
	return nil
}

// ASN1Tag returns [TagBitString].
func (BitString) ASN1Tag() Tag { return TagBitString }

func (r BitString) unusedBits() byte {
	if len(r.Bytes) == 0 {
		return 0
	}
	return byte(len(r.Bytes)*8 - r.BitLength)
}

// EncodedLen returns the full TLV length of the receiver.
func (r BitString) EncodedLen() int {
	n := 1 + len(r.Bytes)
	return Header{Tag: TagBitString, Length: n}.EncodedLen() + n
}

// EncodeDER writes the receiver's canonical encoding: the unused-bit
// count octet followed by the bit payload.
func (r BitString) EncodeDER(buf *Buffer) error {
	if err := buf.writeHeader(TagBitString, 1+len(r.Bytes)); err != nil {
		return err
	}
	if err := buf.writeByte(r.unusedBits()); err != nil {
		return err
	}
	return buf.writeBytes(r.Bytes)
}

// DecodeDER reads a BIT STRING, rejecting an unused-bit count
// greater than 7 and any non-zero unused trailing bits.
func (r *BitString) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagBitString)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return errLength(TagBitString, pos, "BIT STRING value must contain at least the unused-bits octet")
	}

	unused := value[0]
	payload := value[1:]
	if unused > 7 {
		return errValue(TagBitString, pos, "unused-bit count must be 0-7")
	}
	if unused > 0 && len(payload) == 0 {
		return errValue(TagBitString, pos, "non-zero unused-bit count with empty payload")
	}
	if len(payload) > 0 {
		mask := byte(1<<unused - 1)
		if payload[len(payload)-1]&mask != 0 {
			return errNoncanonical(TagBitString, pos, "unused trailing bits must be zero")
		}
	}

	*r = BitString{Bytes: payload, BitLength: len(payload)*8 - int(unused)}
	return nil
}
