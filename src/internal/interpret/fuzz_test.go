package interpret

import (
	"errors"
	"regexp"
	"testing"

	"datum/src/internal/dates"
)

var outputShape = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

func FuzzDateAsOf(f *testing.F) {
	seeds := []string{
		"1983 31 12",
		"aug 1923 12",
		"20230415",
		"15042023",
		"990101",
		"12.11.1983",
		"5-6-dec-1983",
		"December 24, 1983",
		"den 3. maj 1999",
		"00000000",
		"99999999",
		"hello world",
		" ",
		"\xff\xfe",
		"\x00jan\x0045",
		"١٩٨٣",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		d, err := DateAsOf(s, asOf)
		again, errAgain := DateAsOf(s, asOf)
		if d != again || (err == nil) != (errAgain == nil) {
			t.Fatalf("not deterministic for %q: %v/%v vs %v/%v", s, d, err, again, errAgain)
		}
		if err != nil {
			if !errors.Is(err, ErrNoYear) && !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("unexpected error for %q: %v", s, err)
			}
			return
		}
		if d.Year < dates.YearLow || d.Year > asOf {
			t.Fatalf("year out of range for %q: %+v", s, d)
		}
		if d.Month != 0 && !dates.IsMonth(d.Month) {
			t.Fatalf("month out of range for %q: %+v", s, d)
		}
		if d.Day != 0 && !dates.IsDay(d.Day) {
			t.Fatalf("day out of range for %q: %+v", s, d)
		}
		if d.Day != 0 && d.Month == 0 {
			t.Fatalf("day without month for %q: %+v", s, d)
		}
		if !outputShape.MatchString(d.String()) {
			t.Fatalf("malformed rendering for %q: %q", s, d)
		}
	})
}
