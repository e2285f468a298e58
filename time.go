package der

/*
time.go implements UTCTime (X.690 §8.25, tag 23) and GeneralizedTime
(X.690 §8.24, tag 24). Both are pure (Y,M,D,h,m,s) value types;
conversion to and from a platform clock (time.Time) is provided
separately by clock.go, not required on the core decode/encode path.
*/

import "strconv"

// dateTime is the shared pure calendar representation behind UTCTime
// and GeneralizedTime.
type dateTime struct {
	Year, Month, Day, Hour, Minute, Second int
}

// UTCTime implements the ASN.1 UTCTime type (tag 23): exactly 13
// bytes "YYMMDDHHMMSSZ". Two-digit years 00-49 mean 2000-2049; 50-99
// mean 1950-1999.
type UTCTime dateTime

// ASN1Tag returns [TagUTCTime].
func (UTCTime) ASN1Tag() Tag { return TagUTCTime }

// NewUTCTime returns a [UTCTime] for the given full (four-digit)
// year, which must fall within the UTCTime-representable window
// (1950-2049).
func NewUTCTime(year, month, day, hour, minute, second int) (UTCTime, error) {
	if year < 1950 || year > 2049 {
		return UTCTime{}, errValue(TagUTCTime, -1, "year outside UTCTime representable window 1950-2049")
	}
	if err := validateCalendar(month, day, hour, minute, second); err != nil {
		return UTCTime{}, err
	}
	return UTCTime{year, month, day, hour, minute, second}, nil
}

// EncodedLen returns 15: a two-octet header plus the fixed
// 13-octet value.
func (UTCTime) EncodedLen() int { return 15 }

// EncodeDER writes the receiver as "YYMMDDHHMMSSZ".
func (r UTCTime) EncodeDER(buf *Buffer) error {
	yy := r.Year % 100
	v := []byte(pad2(yy) + pad2(r.Month) + pad2(r.Day) + pad2(r.Hour) + pad2(r.Minute) + pad2(r.Second) + "Z")
	return buf.writeTLV(TagUTCTime, v)
}

// DecodeDER reads a UTCTime, rejecting any input that is not exactly
// 13 bytes of the form "YYMMDDHHMMSSZ".
func (r *UTCTime) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagUTCTime)
	if err != nil {
		return err
	}
	if len(value) != 13 {
		return errLength(TagUTCTime, pos, "UTCTime value must be exactly 13 octets")
	}
	if value[12] != 'Z' {
		return errDateTime(TagUTCTime, pos, "UTCTime must end in Z")
	}

	yy, mo, dd, hh, mm, ss, ok := parseSixFields(value[:12])
	if !ok {
		return errDateTime(TagUTCTime, pos, "UTCTime fields must be decimal digits")
	}
	if err := validateCalendar(mo, dd, hh, mm, ss); err != nil {
		return err
	}

	year := yy + 1900
	if yy < 50 {
		year = yy + 2000
	}
	*r = UTCTime{year, mo, dd, hh, mm, ss}
	return nil
}

// GeneralizedTime implements the ASN.1 GeneralizedTime type (tag
// 24): exactly 15 bytes "YYYYMMDDHHMMSSZ". Fractional seconds and
// non-Z time zones are rejected.
type GeneralizedTime dateTime

// ASN1Tag returns [TagGeneralizedTime].
func (GeneralizedTime) ASN1Tag() Tag { return TagGeneralizedTime }

// NewGeneralizedTime returns a [GeneralizedTime] for the given
// four-digit year.
func NewGeneralizedTime(year, month, day, hour, minute, second int) (GeneralizedTime, error) {
	if year < 0 || year > 9999 {
		return GeneralizedTime{}, errValue(TagGeneralizedTime, -1, "year must be representable in four digits")
	}
	if err := validateCalendar(month, day, hour, minute, second); err != nil {
		return GeneralizedTime{}, err
	}
	return GeneralizedTime{year, month, day, hour, minute, second}, nil
}

// EncodedLen returns 17: a two-octet header plus the fixed
// 15-octet value.
func (GeneralizedTime) EncodedLen() int { return 17 }

// EncodeDER writes the receiver as "YYYYMMDDHHMMSSZ".
func (r GeneralizedTime) EncodeDER(buf *Buffer) error {
	v := []byte(pad4(r.Year) + pad2(r.Month) + pad2(r.Day) + pad2(r.Hour) + pad2(r.Minute) + pad2(r.Second) + "Z")
	return buf.writeTLV(TagGeneralizedTime, v)
}

// DecodeDER reads a GeneralizedTime, rejecting any input that is not
// exactly 15 bytes of the form "YYYYMMDDHHMMSSZ" (no fractional
// seconds, no non-Z zone offset).
func (r *GeneralizedTime) DecodeDER(cur *Cursor) error {
	pos := cur.pos
	value, err := cur.primitiveValue(TagGeneralizedTime)
	if err != nil {
		return err
	}
	if len(value) != 15 {
		return errLength(TagGeneralizedTime, pos, "GeneralizedTime value must be exactly 15 octets")
	}
	if value[14] != 'Z' {
		return errDateTime(TagGeneralizedTime, pos, "GeneralizedTime must end in Z, fractional seconds and offsets are not supported")
	}

	yyyy, ok1 := atoiFixed(value[0:4])
	mo, ok2 := atoiFixed(value[4:6])
	dd, ok3 := atoiFixed(value[6:8])
	hh, ok4 := atoiFixed(value[8:10])
	mm, ok5 := atoiFixed(value[10:12])
	ss, ok6 := atoiFixed(value[12:14])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return errDateTime(TagGeneralizedTime, pos, "GeneralizedTime fields must be decimal digits")
	}
	if err := validateCalendar(mo, dd, hh, mm, ss); err != nil {
		return err
	}

	*r = GeneralizedTime{yyyy, mo, dd, hh, mm, ss}
	return nil
}

func parseSixFields(b []byte) (yy, mo, dd, hh, mm, ss int, ok bool) {
	var o [6]bool
	yy, o[0] = atoiFixed(b[0:2])
	mo, o[1] = atoiFixed(b[2:4])
	dd, o[2] = atoiFixed(b[4:6])
	hh, o[3] = atoiFixed(b[6:8])
	mm, o[4] = atoiFixed(b[8:10])
	ss, o[5] = atoiFixed(b[10:12])
	ok = o[0] && o[1] && o[2] && o[3] && o[4] && o[5]
	return
}

func atoiFixed(b []byte) (int, bool) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func validateCalendar(month, day, hour, minute, second int) error {
	if month < 1 || month > 12 {
		return errDateTime(Tag{}, -1, "month out of range")
	}
	if day < 1 || day > 31 {
		return errDateTime(Tag{}, -1, "day out of range")
	}
	if hour < 0 || hour > 23 {
		return errDateTime(Tag{}, -1, "hour out of range")
	}
	if minute < 0 || minute > 59 {
		return errDateTime(Tag{}, -1, "minute out of range")
	}
	if second < 0 || second > 59 {
		return errDateTime(Tag{}, -1, "second out of range")
	}
	return nil
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
