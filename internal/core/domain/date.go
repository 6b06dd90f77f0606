package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the canonical rendering of a parsed Date.
const DateLayout = "2006-01-02"

// Date is a calendar date parsed from a locale-specific string.
// When the source string cannot be parsed, Valid is false and Raw keeps the
// original text so that nothing is silently dropped.
type Date struct {
	// Time is the parsed date at midnight UTC. Zero when Valid is false.
	Time time.Time

	// Raw is the trimmed source string.
	Raw string

	// Valid is true when Time holds a parsed value.
	Valid bool
}

// NewDate creates a valid Date from a time, truncated to the calendar day.
func NewDate(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{Time: day, Raw: day.Format(DateLayout), Valid: true}
}

// String returns the ISO form for parsed dates and the verbatim text otherwise.
func (d Date) String() string {
	if d.Valid {
		return d.Time.Format(DateLayout)
	}
	return d.Raw
}

// IsZero reports whether the date carries neither a value nor source text.
func (d Date) IsZero() bool {
	return !d.Valid && d.Raw == ""
}

// MarshalJSON renders the date as its String form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
