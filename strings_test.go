package der

import "testing"

func TestUTF8StringRoundTrip(t *testing.T) {
	want := UTF8String("héllo, 世界")
	out, err := ToDER(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back UTF8String
	if err := FromDER(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != want {
		t.Fatalf("got %q, want %q", back, want)
	}
}

func TestUTF8StringDecodeRejectsMalformed(t *testing.T) {
	var s UTF8String
	err := FromDER([]byte{0x0C, 0x01, 0xFF}, &s)
	if err == nil {
		t.Fatal("expected UTF-8 error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindUTF8 {
		t.Fatalf("got %v, want KindUTF8", err)
	}
}

func TestPrintableStringAcceptsRestrictedSet(t *testing.T) {
	want := PrintableString("Test (01) - OK?")
	out, err := ToDER(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back PrintableString
	if err := FromDER(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != want {
		t.Fatalf("got %q, want %q", back, want)
	}
}

func TestPrintableStringRejectsDisallowedChar(t *testing.T) {
	var s PrintableString
	err := FromDER([]byte{0x13, 0x01, '_'}, &s)
	if err == nil {
		t.Fatal("expected value error for underscore")
	}
}

func TestIA5StringAcceptsFullASCII(t *testing.T) {
	want := IA5String("user@example.com")
	out, err := ToDER(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back IA5String
	if err := FromDER(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != want {
		t.Fatalf("got %q, want %q", back, want)
	}
}

func TestIA5StringRejectsHighBit(t *testing.T) {
	var s IA5String
	err := FromDER([]byte{0x16, 0x01, 0x80}, &s)
	if err == nil {
		t.Fatal("expected value error for byte >0x7F")
	}
}

func TestStringTagsDistinct(t *testing.T) {
	tags := []Tag{UTF8String("").ASN1Tag(), PrintableString("").ASN1Tag(), IA5String("").ASN1Tag()}
	seen := map[Tag]bool{}
	for _, tg := range tags {
		if seen[tg] {
			t.Fatalf("duplicate tag %v", tg)
		}
		seen[tg] = true
	}
}
