package der

/*
bigint.go implements BigInt, the unsigned magnitude variant of the
ASN.1 INTEGER type (X.690 §8.3): a non-negative value encoded as a
big-endian magnitude with a leading 0x00 octet inserted iff the high
bit of the first magnitude byte would otherwise be set. It is kept
separate from the signed [Integer] codec in integer.go because the
sign-handling rules differ.
*/

import "math/big"

// BigInt wraps a non-negative *big.Int encoded as a DER INTEGER
// using the unsigned big-endian magnitude form: at most one leading
// 0x00 octet, present if and only if it is required to keep the
// value's sign bit clear. Used for certificate/key moduli and serial
// numbers, which frequently overflow int64.
type BigInt struct {
	Value *big.Int
}

// NewBigInt returns a [BigInt] wrapping v. v must be non-negative.
func NewBigInt(v *big.Int) (BigInt, error) {
	if v.Sign() < 0 {
		return BigInt{}, errValue(TagInteger, -1, "unsigned INTEGER must not be negative")
	}
	return BigInt{Value: new(big.Int).Set(v)}, nil
}

// ASN1Tag returns [TagInteger].
func (BigInt) ASN1Tag() Tag { return TagInteger }

func (r BigInt) bytes() []byte {
	b := r.Value.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// EncodedLen returns the full TLV length of the receiver.
func (r BigInt) EncodedLen() int {
	n := len(r.bytes())
	return Header{Tag: TagInteger, Length: n}.EncodedLen() + n
}

// EncodeDER writes the receiver's canonical unsigned encoding.
func (r BigInt) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagInteger, r.bytes())
}

// DecodeDER reads an INTEGER as an unsigned magnitude, rejecting a
// leading 0x00 octet that was not required for sign disambiguation.
func (r *BigInt) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagInteger)
	if err != nil {
		return err
	}
	n, err := magnitudeDecodeBig(value, pos)
	if err != nil {
		return err
	}
	r.Value = n
	return nil
}

func magnitudeDecodeBig(b []byte, pos int) (*big.Int, error) {
	if len(b) == 0 {
		return nil, errLength(TagInteger, pos, "INTEGER value must not be empty")
	}
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		return nil, errNoncanonical(TagInteger, pos, "leading 0x00 not required for sign disambiguation")
	}
	start := 0
	if b[0] == 0x00 {
		start = 1
	}
	return new(big.Int).SetBytes(b[start:]), nil
}
