package der

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER type (X.690 §8.19):
base-128 variable-length arcs (high bit set on every octet but the
last of each arc), with the first two arcs packed into a single
leading arc as 40*arc1 + arc2. Each arc's encoding must use the
minimal number of octets; the dotted-string form must round-trip.
*/

import "math/big"

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type (tag
// 6) as a sequence of arcs, each capable of holding values beyond
// uint64 range via math/big.
type ObjectIdentifier []*big.Int

// NewObjectIdentifier parses a dotted-decimal string (e.g.
// "1.2.840.113549.1.1.1") into an [ObjectIdentifier].
func NewObjectIdentifier(dotted string) (ObjectIdentifier, error) {
	parts := split(dotted, ".")
	if len(parts) < 2 {
		return nil, errOIDMalformed(-1, "OBJECT IDENTIFIER requires at least two arcs")
	}

	arcs := make(ObjectIdentifier, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, errOIDMalformed(-1, "empty arc in dotted form")
		}
		n, ok := new(big.Int).SetString(p, 10)
		if !ok || n.Sign() < 0 {
			return nil, errOIDMalformed(-1, "arc is not a non-negative decimal integer")
		}
		arcs = append(arcs, n)
	}

	if err := validateFirstArcs(arcs); err != nil {
		return nil, err
	}
	return arcs, nil
}

func validateFirstArcs(arcs ObjectIdentifier) error {
	arc1 := arcs[0]
	if arc1.Cmp(big.NewInt(2)) > 0 {
		return errOIDMalformed(-1, "first arc must be 0, 1 or 2")
	}
	if arc1.Cmp(big.NewInt(2)) < 0 && arcs[1].Cmp(big.NewInt(39)) > 0 {
		return errOIDMalformed(-1, "second arc must be <=39 when first arc is 0 or 1")
	}
	return nil
}

// String returns the dotted-decimal representation of the receiver.
func (r ObjectIdentifier) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = a.String()
	}
	return join(parts, ".")
}

// ASN1Tag returns [TagOID].
func (ObjectIdentifier) ASN1Tag() Tag { return TagOID }

func (r ObjectIdentifier) value() ([]byte, error) {
	if len(r) < 2 {
		return nil, errOIDMalformed(-1, "OBJECT IDENTIFIER requires at least two arcs")
	}
	if err := validateFirstArcs(r); err != nil {
		return nil, err
	}

	first := new(big.Int).Mul(r[0], big.NewInt(40))
	first.Add(first, r[1])

	var out []byte
	out = append(out, encodeVLQ(first)...)
	for _, arc := range r[2:] {
		if arc.Sign() < 0 {
			return nil, errOIDMalformed(-1, "arc must be non-negative")
		}
		out = append(out, encodeVLQ(arc)...)
	}
	return out, nil
}

// EncodedLen returns the full TLV length of the receiver. If the
// receiver is malformed it returns 2, the length of an empty OID
// header (EncodeDER will then return the error).
func (r ObjectIdentifier) EncodedLen() int {
	v, err := r.value()
	if err != nil {
		return Header{Tag: TagOID, Length: 0}.EncodedLen()
	}
	return Header{Tag: TagOID, Length: len(v)}.EncodedLen() + len(v)
}

// EncodeDER writes the receiver's base-128 arc encoding.
func (r ObjectIdentifier) EncodeDER(buf *Buffer) error {
	v, err := r.value()
	if err != nil {
		return err
	}
	return buf.writeTLV(TagOID, v)
}

// DecodeDER reads an OBJECT IDENTIFIER, rejecting non-minimal arc
// encodings.
func (r *ObjectIdentifier) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagOID)
	if err != nil {
		return err
	}
	if len(value) == 0 {
		return errLength(TagOID, pos, "OBJECT IDENTIFIER value must not be empty")
	}

	arcs, err := decodeVLQArcs(value, pos)
	if err != nil {
		return err
	}

	first := arcs[0]
	var arc1, arc2 *big.Int
	switch {
	case first.Cmp(big.NewInt(80)) >= 0:
		arc1 = big.NewInt(2)
		arc2 = new(big.Int).Sub(first, big.NewInt(80))
	case first.Cmp(big.NewInt(40)) >= 0:
		arc1 = big.NewInt(1)
		arc2 = new(big.Int).Sub(first, big.NewInt(40))
	default:
		arc1 = big.NewInt(0)
		arc2 = new(big.Int).Set(first)
	}

	out := append(ObjectIdentifier{arc1, arc2}, arcs[1:]...)
	*r = out
	return nil
}

// encodeVLQ returns the base-128 variable-length encoding of n, with
// the high bit set on every octet but the last.
func encodeVLQ(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}

	v := new(big.Int).Set(n)
	var octets []byte
	mask := big.NewInt(0x7F)
	for v.Sign() > 0 {
		b := new(big.Int).And(v, mask)
		octets = append([]byte{byte(b.Uint64())}, octets...)
		v.Rsh(v, 7)
	}
	for i := 0; i < len(octets)-1; i++ {
		octets[i] |= 0x80
	}
	return octets
}

// decodeVLQArcs splits value into its base-128 arcs, rejecting
// non-minimal per-arc encodings (a leading 0x80 continuation octet)
// and truncated final arcs.
func decodeVLQArcs(value []byte, pos int) ([]*big.Int, error) {
	var arcs []*big.Int
	i := 0
	for i < len(value) {
		if value[i] == 0x80 {
			return nil, errNoncanonical(TagOID, pos, "non-minimal arc encoding: leading 0x80 continuation octet")
		}
		n := big.NewInt(0)
		for {
			if i >= len(value) {
				return nil, errTruncated(pos)
			}
			b := value[i]
			i++
			n.Lsh(n, 7)
			n.Or(n, big.NewInt(int64(b&0x7F)))
			if b&0x80 == 0 {
				break
			}
		}
		arcs = append(arcs, n)
	}
	return arcs, nil
}
