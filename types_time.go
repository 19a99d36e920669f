package costbasis

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the canonical representation of a transaction timestamp.
const TimeFormat = time.RFC3339

// readTimeFormats are the permissive layouts accepted on input. Exchange
// exports rarely agree on one layout, CLI users type even less.
var readTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-1-2",
}

// Time represents the timestamp of a transaction or a lot acquisition,
// normalized to UTC with second granularity.
type Time struct {
	t time.Time
}

// NewTime returns a normalized Time for the given instant.
func NewTime(t time.Time) Time {
	return Time{t: t.UTC().Truncate(time.Second)}
}

// Now returns the current instant as a Time.
func Now() Time { return NewTime(time.Now()) }

// ParseTime parses a Time from a string. It is lenient and accepts a date
// without a clock part, like "2025-7-1".
func ParseTime(str string) (Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range readTimeFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return NewTime(t), nil
		}
	}
	return Time{}, fmt.Errorf("invalid time %q, want format %q", str, TimeFormat)
}

// MustParseTime is like ParseTime but panics on error.
func MustParseTime(str string) Time {
	t, err := ParseTime(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// String formats the time in RFC3339.
func (d Time) String() string { return d.t.Format(TimeFormat) }

// IsZero returns true if the time is the zero value.
func (d Time) IsZero() bool { return d.t.IsZero() }

// Before reports whether the instant d is before x.
func (d Time) Before(x Time) bool { return d.t.Before(x.t) }

// After reports whether the instant d is after x.
func (d Time) After(x Time) bool { return d.t.After(x.t) }

// Equal reports whether d and x denote the same instant.
func (d Time) Equal(x Time) bool { return d.t.Equal(x.t) }

// Time returns the underlying time.Time.
func (d Time) Time() time.Time { return d.t }

// Format returns a textual representation of the time value formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Time) Format(layout string) string { return d.t.Format(layout) }

// UnmarshalJSON implements the json specific way to unmarshal a time from a json string.
func (d *Time) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	t, err := ParseTime(str)
	if err != nil {
		return fmt.Errorf("invalid time %q in data file: %w", str, err)
	}
	*d = t
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Time.
func (d Time) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Time pointer is a valid json marshal/unmarshaller type.
var _ json.Marshaler = (*Time)(nil)
var _ json.Unmarshaler = (*Time)(nil)
