package der

/*
length.go implements the DER length-octet codec per X.690 §8.1.3:
short form for values <=127, long form (1-4 trailing big-endian
octets) otherwise. X.690 §10.1 forbids the indefinite-length form in
DER, and the canonical rule additionally requires decoders to reject
any non-minimal definite-length encoding.
*/

// maxLength is the implementation maximum for a DER length value,
// chosen to fit a machine word on 32-bit platforms (2^32 - 1).
const maxLength = 0xFFFFFFFF

// encodedLengthSize returns the number of octets encodeLength would
// write for n, in the range [1,5].
func encodedLengthSize(n int) int {
	if n <= 0x7F {
		return 1
	}
	size := 1
	for v := n; v > 0; v >>= 8 {
		size++
	}
	return size
}

// encodeLength appends the DER encoding of n to dst and returns the
// extended slice.
func encodeLength(n int, dst []byte) ([]byte, error) {
	if n < 0 || n > maxLength {
		return nil, errOverflow(-1, "length exceeds implementation maximum")
	}
	if n <= 0x7F {
		return append(dst, byte(n)), nil
	}

	var octets []byte
	for v := n; v > 0; v >>= 8 {
		octets = append([]byte{byte(v)}, octets...)
	}
	dst = append(dst, 0x80|byte(len(octets)))
	dst = append(dst, octets...)
	return dst, nil
}

// decodeLength reads a DER length field from b starting at off and
// returns the decoded value plus the number of octets consumed.
func decodeLength(b []byte, off int) (length, consumed int, err error) {
	if off >= len(b) {
		return 0, 0, errTruncated(off)
	}

	lead := b[off]
	if lead&0x80 == 0 {
		return int(lead), 1, nil
	}

	k := int(lead & 0x7F)
	if k == 0 {
		// Indefinite length: not permitted in DER.
		return 0, 0, errNoncanonical(Tag{}, off, "indefinite length not permitted in DER")
	}
	if k > 4 {
		return 0, 0, errOverflow(off, "length form uses more than 4 octets")
	}
	if off+1+k > len(b) {
		return 0, 0, errTruncated(off)
	}

	octets := b[off+1 : off+1+k]
	if octets[0] == 0x00 {
		return 0, 0, errNoncanonical(Tag{}, off, "non-minimal length: leading zero octet")
	}

	var n int
	for _, o := range octets {
		n = n<<8 | int(o)
	}
	if n > maxLength {
		return 0, 0, errOverflow(off, "length exceeds implementation maximum")
	}
	if n <= 0x7F {
		return 0, 0, errNoncanonical(Tag{}, off, "non-minimal length: short form required")
	}

	return n, 1 + k, nil
}
