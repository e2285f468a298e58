package der

/*
clock.go converts between this package's pure (Y,M,D,h,m,s) time
types and a platform clock (time.Time), kept separate from the core
decode/encode path in time.go.
*/

import "time"

// AsTime converts the receiver to a [time.Time] in UTC.
func (r UTCTime) AsTime() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, 0, time.UTC)
}

// UTCTimeFromTime converts t (interpreted in UTC) to a [UTCTime].
// t's year must fall within the UTCTime window (1950-2049).
func UTCTimeFromTime(t time.Time) (UTCTime, error) {
	t = t.UTC()
	return NewUTCTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// AsTime converts the receiver to a [time.Time] in UTC.
func (r GeneralizedTime) AsTime() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, 0, time.UTC)
}

// GeneralizedTimeFromTime converts t (interpreted in UTC) to a
// [GeneralizedTime].
func GeneralizedTimeFromTime(t time.Time) (GeneralizedTime, error) {
	t = t.UTC()
	return NewGeneralizedTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
