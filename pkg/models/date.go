package models

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a local calendar date in YYYY-MM-DD form. The zero value is the
// empty string. ISO dates compare correctly as strings, so ordering uses
// plain string comparison.
type Date string

// Today returns the current local date, midnight-normalized.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its local calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// AddDays returns the date n days after d. An unparseable date is treated
// as today.
func (d Date) AddDays(n int) Date {
	t, err := time.ParseInLocation(DateLayout, string(d), time.Local)
	if err != nil {
		t = time.Now()
	}
	return DateOf(t.AddDate(0, 0, n))
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return string(d) > string(other)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}
