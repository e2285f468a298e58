package der

import (
	"bytes"
	"testing"
)

func TestUTCTimeEncodeWindow(t *testing.T) {
	// 1999-12-31 23:59:59, within the UTCTime window.
	ut, err := NewUTCTime(1999, 12, 31, 23, 59, 59)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := ToDER(ut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := append([]byte{0x17, 0x0D}, []byte("991231235959Z")...)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestUTCTimeRejectsYearOutsideWindow(t *testing.T) {
	if _, err := NewUTCTime(2050, 1, 1, 0, 0, 0); err == nil {
		t.Fatal("expected error for year outside 1950-2049")
	}
}

func TestUTCTimeDecodeTwoDigitYearWindowing(t *testing.T) {
	// "500101000000Z" -> 1950; "490101000000Z" -> 2049.
	var ut1950 UTCTime
	if err := FromDER([]byte("\x17\x0d500101000000Z"), &ut1950); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ut1950.Year != 1950 {
		t.Fatalf("got year %d, want 1950", ut1950.Year)
	}

	var ut2049 UTCTime
	if err := FromDER([]byte("\x17\x0d490101000000Z"), &ut2049); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ut2049.Year != 2049 {
		t.Fatalf("got year %d, want 2049", ut2049.Year)
	}
}

func TestUTCTimeDecodeRejectsMissingZ(t *testing.T) {
	var ut UTCTime
	err := FromDER([]byte("\x17\x0d991231235959X"), &ut)
	if err == nil {
		t.Fatal("expected date/time error for missing Z suffix")
	}
}

func TestUTCTimeDecodeRejectsWrongLength(t *testing.T) {
	var ut UTCTime
	if err := FromDER([]byte("\x17\x0c99123123595Z"), &ut); err == nil {
		t.Fatal("expected length error")
	}
}

func TestGeneralizedTimeRoundTrip(t *testing.T) {
	gt, err := NewGeneralizedTime(2075, 6, 15, 12, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := ToDER(gt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back GeneralizedTime
	if err := FromDER(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != gt {
		t.Fatalf("got %+v, want %+v", back, gt)
	}
}

func TestGeneralizedTimeRejectsNonZSuffix(t *testing.T) {
	// 15 value octets, the last of which is not 'Z' (as a fractional
	// seconds field or explicit zone offset would produce).
	var gt GeneralizedTime
	err := FromDER([]byte("\x18\x0f202506151200005"), &gt)
	if err == nil {
		t.Fatal("expected error for non-Z suffix")
	}
}

func TestValidateCalendarRejectsOutOfRangeMonth(t *testing.T) {
	if _, err := NewUTCTime(2000, 13, 1, 0, 0, 0); err == nil {
		t.Fatal("expected error for month 13")
	}
}
