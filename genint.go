package der

/*
genint.go implements generic, allocation-light fixed-width INTEGER
helpers: one canonical byte codec serving every signed and unsigned
Go integer width, instead of a hand-written variant per width.
*/

import "golang.org/x/exp/constraints"

// EncodeInt returns the minimal two's-complement big-endian encoding
// of v, suitable as the value octets of a DER INTEGER.
func EncodeInt[T constraints.Signed](v T) []byte {
	return twosComplementEncode64(int64(v))
}

// DecodeInt parses the minimal two's-complement big-endian value
// octets of a DER INTEGER into T, failing with [KindOverflow] if the
// value does not fit in T.
func DecodeInt[T constraints.Signed](b []byte) (T, error) {
	bi, err := twosComplementDecode(b)
	if err != nil {
		var zero T
		return zero, err
	}
	if !bi.IsInt64() {
		var zero T
		return zero, errOverflow(-1, "INTEGER value does not fit requested width")
	}
	n := bi.Int64()
	t := T(n)
	if int64(t) != n {
		var zero T
		return zero, errOverflow(-1, "INTEGER value does not fit requested width")
	}
	return t, nil
}

// EncodeUint returns the minimal unsigned big-integer encoding of v:
// big-endian magnitude with a leading 0x00 octet iff the high bit of
// the first magnitude byte would otherwise be set, per the INTEGER
// sign-disambiguation rule in X.690 §8.3.
func EncodeUint[T constraints.Unsigned](v T) []byte {
	return magnitudeEncode64(uint64(v))
}

// DecodeUint parses an unsigned big-integer byte sequence into T,
// rejecting a leading 0x00 not required for sign disambiguation and
// failing with [KindOverflow] if the value does not fit in T.
func DecodeUint[T constraints.Unsigned](b []byte) (T, error) {
	n, err := magnitudeDecode64(b)
	if err != nil {
		var zero T
		return zero, err
	}
	t := T(n)
	if uint64(t) != n {
		var zero T
		return zero, errOverflow(-1, "INTEGER value does not fit requested width")
	}
	return t, nil
}

func twosComplementEncode64(v int64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	negative := v < 0
	var raw []byte
	for {
		b := byte(v & 0xff)
		raw = append([]byte{b}, raw...)
		v >>= 8
		if !negative && v == 0 && b&0x80 == 0 {
			break
		}
		if negative && v == -1 && b&0x80 != 0 {
			break
		}
	}
	return raw
}

func magnitudeEncode64(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var raw []byte
	for v > 0 {
		raw = append([]byte{byte(v & 0xff)}, raw...)
		v >>= 8
	}
	if raw[0]&0x80 != 0 {
		raw = append([]byte{0x00}, raw...)
	}
	return raw
}

func magnitudeDecode64(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, errLength(TagInteger, -1, "INTEGER value must not be empty")
	}
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		return 0, errNoncanonical(TagInteger, -1, "leading 0x00 not required for sign disambiguation")
	}
	if len(b) > 9 || (len(b) == 9 && b[0] != 0x00) {
		return 0, errOverflow(-1, "INTEGER magnitude exceeds 64 bits")
	}

	var n uint64
	start := 0
	if len(b) == 9 {
		start = 1
	}
	for _, o := range b[start:] {
		n = n<<8 | uint64(o)
	}
	return n, nil
}
