package der

/*
document.go implements Document, the heap-backed owning counterpart
to the borrowed-slice [Cursor]/[Buffer] pair: decoding normally
borrows from caller-owned input and encoding writes into a
caller-sized destination, but callers that need to retain an encoded
value past the lifetime of its source buffer need a form that owns
its bytes. Document also carries a PEM convenience (RFC 7468), a
textual wrapper with no bearing on the DER wire format itself.
*/

import "encoding/pem"

// Document is an owned, heap-backed DER encoding. Unlike a [Cursor],
// which borrows its input, a Document copies its bytes on
// construction so it can outlive the buffer it was built from.
type Document struct {
	raw []byte
}

// NewDocument encodes v and returns a Document owning a copy of the
// result.
func NewDocument(v Encodable) (*Document, error) {
	b, err := ToDER(v)
	if err != nil {
		return nil, err
	}
	return DocumentFromBytes(b), nil
}

// DocumentFromBytes returns a Document owning a copy of data.
func DocumentFromBytes(data []byte) *Document {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Document{raw: owned}
}

// Bytes returns the Document's encoded DER bytes. The returned slice
// aliases the Document's own storage and must not be modified.
func (d *Document) Bytes() []byte { return d.raw }

// Len returns the length of the Document's encoded bytes.
func (d *Document) Len() int { return len(d.raw) }

// Decode decodes the Document's bytes into v, requiring the entire
// Document to be consumed by a single top-level value.
func (d *Document) Decode(v Decodable) error { return FromDER(d.raw, v) }

// EncodeToPEM wraps the Document's bytes in a PEM block of the given
// label (e.g. "CERTIFICATE", "PRIVATE KEY"), using a trailing newline
// and 64-column base64 wrapping per RFC 7468, matched by the standard
// library's encoding/pem.
func (d *Document) EncodeToPEM(label string) (string, error) {
	block := &pem.Block{Type: label, Bytes: d.raw}
	return string(pem.EncodeToMemory(block)), nil
}

// DecodePEM parses the first PEM block in text and returns a
// Document owning its decoded bytes.
func DecodePEM(text string) (*Document, error) {
	doc, _, err := DecodeDocumentFromPEMLabel(text)
	return doc, err
}

// DecodeDocumentFromPEMLabel parses the first PEM block in text and
// returns a Document owning its decoded bytes, along with the
// block's label.
func DecodeDocumentFromPEMLabel(text string) (doc *Document, label string, err error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, "", errValue(Tag{}, -1, "no PEM block found in input")
	}
	return DocumentFromBytes(block.Bytes), block.Type, nil
}
