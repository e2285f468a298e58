package der

import "testing"

// timeChoice models the common CHOICE { utcTime UTCTime,
// generalTime GeneralizedTime }, accepting exactly the two tags its
// alternatives declare.
type timeChoice struct {
	UTC *UTCTime
	Gen *GeneralizedTime
}

func (c *timeChoice) AcceptedTags() []Tag { return []Tag{TagUTCTime, TagGeneralizedTime} }

func (c *timeChoice) DecodeDER(cur *Cursor) error {
	tag, err := cur.PeekTag()
	if err != nil {
		return err
	}
	switch tag {
	case TagUTCTime:
		var v UTCTime
		if err := v.DecodeDER(cur); err != nil {
			return err
		}
		c.UTC = &v
	case TagGeneralizedTime:
		var v GeneralizedTime
		if err := v.DecodeDER(cur); err != nil {
			return err
		}
		c.Gen = &v
	default:
		return errUnexpectedTag(TagUTCTime, tag, cur.Pos())
	}
	return nil
}

func TestDecodeChoiceDispatchesOnTag(t *testing.T) {
	ut, err := NewUTCTime(2024, 3, 5, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := ToDER(ut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var c timeChoice
	if err := DecodeChoice(NewCursor(data), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.UTC == nil || c.Gen != nil {
		t.Fatalf("got %+v", c)
	}
}

func TestDecodeChoiceRejectsUnacceptedTag(t *testing.T) {
	var c timeChoice
	err := DecodeChoice(NewCursor([]byte{0x05, 0x00}), &c)
	if err == nil {
		t.Fatal("expected unexpected-tag error for NULL")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindUnexpectedTag {
		t.Fatalf("got %v, want KindUnexpectedTag", err)
	}
}

func TestAcceptsTagHelper(t *testing.T) {
	accepted := []Tag{TagBoolean, TagInteger}
	if !acceptsTag(accepted, TagInteger) {
		t.Fatal("expected TagInteger to be accepted")
	}
	if acceptsTag(accepted, TagNull) {
		t.Fatal("expected TagNull to be rejected")
	}
}
