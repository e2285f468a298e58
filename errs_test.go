package der

import "testing"

func TestErrorUnexpectedTagMessage(t *testing.T) {
	err := errUnexpectedTag(TagInteger, TagBoolean, 4)
	want := "der: UnexpectedTag: expected INTEGER, got BOOLEAN at offset 4"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrorUnknownTagMessage(t *testing.T) {
	err := errUnknownTag(0x1F, 2)
	want := "der: UnknownTag: byte 0x1f at offset 2"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrorDetailWithoutPos(t *testing.T) {
	err := errUnderflow()
	want := "der: Underflow"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestErrorKindStringUnknown(t *testing.T) {
	var k ErrorKind = 255
	if k.String() != "Unknown" {
		t.Fatalf("got %q", k.String())
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = errTruncated(0)
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}
