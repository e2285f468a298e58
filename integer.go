package der

/*
integer.go implements the ASN.1 signed INTEGER type (X.690 §8.3):
two's-complement, big-endian, minimal-length encoding. Zero encodes
as a single 0x00 octet; decode rejects non-minimal leading bytes (a
redundant 0x00 before a byte whose high bit is clear, or a redundant
0xFF before a byte whose high bit is set) and zero-length values.

Integer itself stores small values natively and only promotes to
*big.Int when a value overflows int64. Fixed-width generic helpers
(EncodeInt/DecodeInt in genint.go) cover every signed Go integer
width built on the same minimal-encoding rule.
*/

import "math/big"

// Integer implements the unbounded ASN.1 INTEGER type (tag 2). A
// zero-value Integer{} equates to int64(0).
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

// NewInteger returns an [Integer] wrapping v. Supported input types
// are int, int64, uint64, *big.Int and []byte (a big-endian,
// two's-complement minimal DER INTEGER value, as produced by
// [Integer.Bytes]).
func NewInteger(v any) (Integer, error) {
	switch tv := v.(type) {
	case int:
		return Integer{native: int64(tv)}, nil
	case int64:
		return Integer{native: tv}, nil
	case uint64:
		if tv <= 1<<63-1 {
			return Integer{native: int64(tv)}, nil
		}
		return Integer{big: true, bigInt: new(big.Int).SetUint64(tv)}, nil
	case *big.Int:
		return bigIntToInteger(tv), nil
	case []byte:
		bi, err := twosComplementDecode(tv)
		if err != nil {
			return Integer{}, err
		}
		return bigIntToInteger(bi), nil
	default:
		return Integer{}, errValue(TagInteger, -1, "unsupported type for INTEGER")
	}
}

func bigIntToInteger(bi *big.Int) Integer {
	if bi.IsInt64() {
		return Integer{native: bi.Int64()}
	}
	return Integer{big: true, bigInt: new(big.Int).Set(bi)}
}

// ASN1Tag returns [TagInteger].
func (Integer) ASN1Tag() Tag { return TagInteger }

// IsBig reports whether the receiver's magnitude overflows int64.
func (r Integer) IsBig() bool { return r.big }

// Big returns the receiver as a *big.Int.
func (r Integer) Big() *big.Int {
	if r.big {
		return new(big.Int).Set(r.bigInt)
	}
	return big.NewInt(r.native)
}

// Native returns the receiver as an int64. The result is undefined
// (but does not panic) when IsBig reports true.
func (r Integer) Native() int64 { return r.native }

// Bytes returns the canonical minimal two's-complement big-endian
// encoding of the receiver's value (the DER INTEGER value octets,
// without tag or length).
func (r Integer) Bytes() []byte {
	if r.big {
		return twosComplementEncode(r.bigInt)
	}
	return twosComplementEncode(big.NewInt(r.native))
}

// EncodedLen returns the full TLV length of the receiver.
func (r Integer) EncodedLen() int {
	n := len(r.Bytes())
	return Header{Tag: TagInteger, Length: n}.EncodedLen() + n
}

// EncodeDER writes the receiver's canonical DER encoding.
func (r Integer) EncodeDER(buf *Buffer) error {
	return buf.writeTLV(TagInteger, r.Bytes())
}

// DecodeDER reads an INTEGER, rejecting any non-minimal
// two's-complement encoding.
func (r *Integer) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagInteger)
	if err != nil {
		return err
	}
	bi, err := twosComplementDecodeAt(value, pos)
	if err != nil {
		return err
	}
	*r = bigIntToInteger(bi)
	return nil
}

// twosComplementEncode returns the minimal two's-complement
// big-endian encoding of i.
func twosComplementEncode(i *big.Int) []byte {
	if i.Sign() == 0 {
		return []byte{0x00}
	}
	if i.Sign() > 0 {
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	b := value.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// twosComplementDecode parses a minimal two's-complement big-endian
// value, rejecting non-minimal and zero-length encodings.
func twosComplementDecode(b []byte) (*big.Int, error) {
	return twosComplementDecodeAt(b, -1)
}

func twosComplementDecodeAt(b []byte, pos int) (*big.Int, error) {
	if len(b) == 0 {
		return nil, errLength(TagInteger, pos, "INTEGER value must not be empty")
	}
	if len(b) > 1 {
		if (b[0] == 0x00 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0) {
			return nil, errNoncanonical(TagInteger, pos, "non-minimal INTEGER encoding")
		}
	}

	negative := b[0]&0x80 != 0
	val := new(big.Int).SetBytes(b)
	if negative {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		val.Sub(val, mod)
	}
	return val, nil
}
