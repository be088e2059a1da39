package dates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Year acceptance bounds for the decoding heuristics. Two-digit years
// are only accepted in [Y2KLow, Y2KHigh] so that a value which could be
// a day of month is never read as a year.
const (
	YearLow = 1900
	Y2KLow  = 32
	Y2KHigh = 99

	monthHigh = 12
	dayHigh   = 31
)

func init() {
	if Y2KLow <= dayHigh {
		panic("dates: two-digit year window overlaps the day-of-month range")
	}
}

// IsYear reports whether v is an acceptable four-digit year. upper is
// the inclusive cap, normally the year the process started in.
func IsYear(v, upper int) bool { return v >= YearLow && v <= upper }

// IsY2K reports whether v is accepted as a two-digit year.
func IsY2K(v int) bool { return v >= Y2KLow && v <= Y2KHigh }

// IsMonth reports whether v is a calendar month number.
func IsMonth(v int) bool { return v >= 1 && v <= monthHigh }

// IsDay reports whether v is a plausible day of month. There is no
// per-month check; 31 passes for every month.
func IsDay(v int) bool { return v >= 1 && v <= dayHigh }

// FromY2K maps a two-digit year into the 1900 century.
func FromY2K(v int) int { return YearLow + v }

// ThisYear returns the current calendar year.
func ThisYear() int { return time.Now().Year() }

// Date is a possibly partial calendar date. Zero fields are unset; a
// zero Year means no date at all. Day is never present without Month,
// so a value renders as YYYY, YYYY-MM or YYYY-MM-DD.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no date is present.
func (d Date) IsZero() bool { return d.Year == 0 }

// String renders the date at its available precision, zero padded.
// The zero Date renders as the empty string.
func (d Date) String() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Precision states how much of a Date is filled in.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

var precisionNames = [...]string{"none", "year", "month", "day"}

var precisionFromName = map[string]Precision{
	"none":  PrecisionNone,
	"year":  PrecisionYear,
	"month": PrecisionMonth,
	"day":   PrecisionDay,
}

func (p Precision) String() string {
	if p < PrecisionNone || p > PrecisionDay {
		return "unknown"
	}
	return precisionNames[p]
}

// MarshalJSON encodes the precision as its lowercase name.
func (p Precision) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

// UnmarshalJSON decodes a precision from its lowercase name.
func (p *Precision) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, ok := precisionFromName[s]
	if !ok {
		return fmt.Errorf("unknown precision: %q", s)
	}
	*p = v
	return nil
}

// MarshalYAML encodes the precision as its lowercase name.
func (p Precision) MarshalYAML() (any, error) { return p.String(), nil }

// UnmarshalYAML decodes a precision from its lowercase name.
func (p *Precision) UnmarshalYAML(value *yaml.Node) error {
	if value == nil || value.Kind != yaml.ScalarNode {
		return fmt.Errorf("precision must be a scalar")
	}
	v, ok := precisionFromName[strings.TrimSpace(value.Value)]
	if !ok {
		return fmt.Errorf("unknown precision: %q", value.Value)
	}
	*p = v
	return nil
}

// Precision reports the granularity of the date.
func (d Date) Precision() Precision {
	switch {
	case d.Year == 0:
		return PrecisionNone
	case d.Month == 0:
		return PrecisionYear
	case d.Day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

var isoDate = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// ParseISO parses a strict YYYY, YYYY-MM or YYYY-MM-DD string. Month
// and day are bound checked; the year is not (year acceptance policy
// belongs to the caller).
func ParseISO(s string) (Date, error) {
	m := isoDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Date{}, fmt.Errorf("not a YYYY[-MM[-DD]] date: %q", s)
	}
	var d Date
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		if !IsMonth(d.Month) {
			return Date{}, fmt.Errorf("month out of range: %q", s)
		}
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		if !IsDay(d.Day) {
			return Date{}, fmt.Errorf("day out of range: %q", s)
		}
	}
	return d, nil
}

// MarshalJSON encodes the date as its ISO-style string, null when zero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, the empty string, or an ISO-style string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	v, err := ParseISO(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML encodes the date as its ISO-style string, null when zero.
func (d Date) MarshalYAML() (any, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// UnmarshalYAML accepts a null or scalar node; anything else is left
// zero rather than erroring.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value == nil || value.Kind != yaml.ScalarNode {
		*d = Date{}
		return nil
	}
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "null" || s == "~" {
		*d = Date{}
		return nil
	}
	v, err := ParseISO(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
