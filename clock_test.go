package der

import (
	"testing"
	"time"
)

func TestUTCTimeFromTimeRoundTrip(t *testing.T) {
	src := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	ut, err := UTCTimeFromTime(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ut.AsTime(); !got.Equal(src) {
		t.Fatalf("got %v, want %v", got, src)
	}
}

func TestUTCTimeFromTimeRejectsOutsideWindow(t *testing.T) {
	src := time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)
	if _, err := UTCTimeFromTime(src); err == nil {
		t.Fatal("expected error for year outside UTCTime window")
	}
}

func TestGeneralizedTimeFromTimeRoundTrip(t *testing.T) {
	src := time.Date(2075, time.December, 25, 23, 59, 59, 0, time.UTC)
	gt, err := GeneralizedTimeFromTime(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gt.AsTime(); !got.Equal(src) {
		t.Fatalf("got %v, want %v", got, src)
	}
}

func TestUTCTimeFromTimeConvertsNonUTC(t *testing.T) {
	loc := time.FixedZone("TEST", -5*3600)
	src := time.Date(2024, time.March, 5, 5, 30, 0, 0, loc)
	ut, err := UTCTimeFromTime(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := src.UTC()
	if ut.Year != want.Year() || ut.Hour != want.Hour() {
		t.Fatalf("got %+v, want hour %d", ut, want.Hour())
	}
}
