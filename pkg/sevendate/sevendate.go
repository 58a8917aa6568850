// Package sevendate implements a base-7 day-of-year date notation.
//
// A date is expressed as a (year, day-of-year) pair where day-of-year is
// 0-indexed: January 1 is day 0, December 31 is day 364 (365 in a leap
// year). The day count is written in base 7, which gives short strings
// and a pleasant weekly rhythm to the digits.
//
// Two surface encodings exist:
//
//   - Dotted:  "<base7-day>.<year>"    e.g. "132.2024" for day 72 of 2024
//   - Digital: "<year>-<base7-day>"    e.g. "2024-0132", day padded to 4
//
// Round-tripping a date through either encoding reproduces the same
// calendar date. Dates are calendar dates only; there is no time-of-day
// or timezone component.
package sevendate

import (
	"fmt"
	"strings"
	"time"

	"github.com/tylerneylon/rss/pkg/errors"
)

const (
	// dayBase is the numeral base for the day-of-year field.
	dayBase = 7

	// yearWidth is the fixed decimal width of the year in digital form.
	yearWidth = 4

	// dayWidth is the zero-padded width of the day field in digital form.
	// The largest day-of-year, 366, is "1332" in base 7, so four digits
	// always suffice.
	dayWidth = 4

	// digitalSep separates year from day in digital form.
	digitalSep = '-'

	// dottedSep separates day from year in dotted form.
	dottedSep = '.'

	// minDigitalLen is yearWidth + 1 separator + at least one day digit.
	minDigitalLen = yearWidth + 2
)

// Date is a calendar date as a (year, 0-indexed day-of-year) pair.
type Date struct {
	Year      int
	DayOfYear int
}

// FromTime converts a time.Time to a Date, discarding any time of day.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), DayOfYear: t.YearDay() - 1}
}

// Time returns the date as a moment at local midnight.
func (d Date) Time() time.Time {
	jan1 := time.Date(d.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	return jan1.AddDate(0, 0, d.DayOfYear)
}

// Format returns the textual encoding of the date: dotted by default, or
// the zero-padded digital form when digital is true.
func (d Date) Format(digital bool) string {
	day := ToBase(d.DayOfYear, dayBase)
	if digital {
		if pad := dayWidth - len(day); pad > 0 {
			day = strings.Repeat("0", pad) + day
		}
		return fmt.Sprintf("%0*d%c%s", yearWidth, d.Year, digitalSep, day)
	}
	return fmt.Sprintf("%s%c%d", day, dottedSep, d.Year)
}

// String returns the dotted encoding.
func (d Date) String() string {
	return d.Format(false)
}

// ToBase returns the positional-numeral representation of n in the given
// base, using decimal digit characters. Zero encodes as "0". The caller
// guarantees n >= 0 and 1 < base <= 10; only bases up to 10 have an
// inverse via FromBase.
func ToBase(n, base int) string {
	if n == 0 {
		return "0"
	}
	var digits [32]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%base)
		n /= base
	}
	return string(digits[i:])
}

// FromBase parses a string of decimal digit characters as a positional
// numeral in the given base. It returns an INVALID_BASE error if base is
// outside (1, 10], and an INVALID_DIGIT error if s is empty or contains a
// character whose digit value is >= base or is not a decimal digit.
func FromBase(s string, base int) (int, error) {
	if base <= 1 || base > 10 {
		return 0, errors.New(errors.ErrCodeInvalidBase, "base %d outside supported range (1, 10]", base)
	}
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidDigit, "empty numeral")
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, errors.New(errors.ErrCodeInvalidDigit, "character %q is not a digit", c)
		}
		d := int(c - '0')
		if d >= base {
			return 0, errors.New(errors.ErrCodeInvalidDigit, "digit %q out of range for base %d", c, base)
		}
		n = n*base + d
	}
	return n, nil
}

// Parse decodes a textual date in either surface form.
//
// Leading and trailing whitespace is stripped first. If the input contains
// a '.', it is treated as dotted form and split on the first '.': the part
// before is the base-7 day, the part after the decimal year. Otherwise the
// input is digital form: a 4-digit decimal year, a '-' separator, and the
// base-7 day. The separator is validated strictly; anything other than
// '-' at that position is rejected.
//
// Parse returns a MALFORMED_DATE error for inputs matching neither
// grammar, wrapping the underlying INVALID_DIGIT error when a numeral
// field is at fault. A day count past the end of the year is also
// rejected rather than rolled over into the next year.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)

	var dayStr, yearStr string
	if i := strings.IndexByte(s, dottedSep); i >= 0 {
		dayStr, yearStr = s[:i], s[i+1:]
		if dayStr == "" || yearStr == "" {
			return Date{}, errors.New(errors.ErrCodeMalformedDate,
				"dotted date %q needs a day and a year around the %q", s, dottedSep)
		}
	} else {
		if len(s) < minDigitalLen {
			return Date{}, errors.New(errors.ErrCodeMalformedDate,
				"digital date %q too short (want at least %d characters)", s, minDigitalLen)
		}
		if s[yearWidth] != digitalSep {
			return Date{}, errors.New(errors.ErrCodeMalformedDate,
				"digital date %q has %q where %q was expected", s, s[yearWidth], digitalSep)
		}
		yearStr, dayStr = s[:yearWidth], s[yearWidth+1:]
	}

	year, err := FromBase(yearStr, 10)
	if err != nil {
		return Date{}, errors.Wrap(errors.ErrCodeMalformedDate, err, "bad year in %q", s)
	}
	day, err := FromBase(dayStr, dayBase)
	if err != nil {
		return Date{}, errors.Wrap(errors.ErrCodeMalformedDate, err, "bad day in %q", s)
	}
	if day >= daysInYear(year) {
		return Date{}, errors.New(errors.ErrCodeMalformedDate,
			"day %d out of range for year %d", day, year)
	}

	return Date{Year: year, DayOfYear: day}, nil
}

// daysInYear returns 366 for leap years, 365 otherwise.
func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}
