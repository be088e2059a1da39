// Package interpret decodes a calendar date from a fragment of
// free-form text: Danish or English month names, two or four digit
// years, compact numeric blocks, loosely separated day and month
// numbers. It commits to the most specific reading the evidence
// supports and degrades to a bare year rather than guess between
// ambiguous day/month orderings.
package interpret

import (
	"errors"
	"strings"

	"datum/src/internal/dates"
	"datum/src/internal/months"
	"datum/src/internal/scan"
)

var (
	// ErrEmptyInput is returned for the empty string, which carries no
	// evidence at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoYear is returned when no year can be established; without a
	// year there is no date to report.
	ErrNoYear = errors.New("no year found")
)

// thisYear caps four digit years. Captured once at startup; tests pin
// their own cap through DateAsOf.
var thisYear = dates.ThisYear()

// Date decodes a calendar date from s, accepting years from 1900 up to
// the year the process started in. The result carries as much
// precision as the text supports: year, year-month or year-month-day.
func Date(s string) (dates.Date, error) { return DateAsOf(s, thisYear) }

// DateAsOf decodes like Date but accepts years only up to upper,
// making results reproducible regardless of the wall clock.
func DateAsOf(s string, upper int) (dates.Date, error) {
	if s == "" {
		return dates.Date{}, ErrEmptyInput
	}
	st := &state{upper: upper, toks: scan.Split(s)}
	st.classify()
	st.matchMonth()
	return st.resolve()
}

// state is the per-call working set: the token sequence, the partial
// date and the uncommitted candidate numbers.
type state struct {
	upper int
	toks  []scan.Token
	year  int
	month int
	day   int
	nbrs  []int
}

// classify walks the digit runs left to right through the rule table.
// A stop rule ends the walk with the date fixed wholesale.
func (st *state) classify() {
runs:
	for i := range st.toks {
		if !st.toks[i].Digits {
			continue
		}
		for _, r := range rules {
			if !r.apply(st, i) {
				continue
			}
			if r.stop {
				break runs
			}
			break
		}
	}
}

// matchMonth looks for the leftmost month name and splices the token
// sequence around it: prefix and suffix survive as separate tokens, a
// month token replaces exactly the matched span. At most one name is
// ever taken.
func (st *state) matchMonth() {
	if st.month != 0 {
		return
	}
	for i, tok := range st.toks {
		if tok.Digits {
			// digit runs cannot contain a name
			continue
		}
		m, ok := months.Find(tok.Text)
		if !ok {
			continue
		}
		out := make([]scan.Token, 0, len(st.toks)+2)
		out = append(out, st.toks[:i]...)
		if m.Start > 0 {
			out = append(out, scan.Token{Text: tok.Text[:m.Start]})
		}
		out = append(out, scan.Token{Text: tok.Text[m.Start:m.End], Role: scan.RoleMonth})
		if m.End < len(tok.Text) {
			out = append(out, scan.Token{Text: tok.Text[m.End:]})
		}
		out = append(out, st.toks[i+1:]...)
		st.toks = out
		st.month = m.Month
		return
	}
}

// resolve turns the collected evidence into the most specific date it
// supports. The first applicable rule wins and the order is load
// bearing.
func (st *state) resolve() (dates.Date, error) {
	if st.year == 0 {
		return dates.Date{}, ErrNoYear
	}
	y, m, d := st.year, st.month, st.day
	switch {
	case m != 0 && d != 0:
		return dates.Date{Year: y, Month: m, Day: d}, nil
	case m != 0 && len(st.nbrs) == 0:
		return dates.Date{Year: y, Month: m}, nil
	case m != 0 && len(st.nbrs) == 1 && dates.IsDay(st.nbrs[0]):
		return dates.Date{Year: y, Month: m, Day: st.nbrs[0]}, nil
	case d != 0 && m == 0 && len(st.nbrs) == 1 && dates.IsMonth(st.nbrs[0]):
		return dates.Date{Year: y, Month: st.nbrs[0], Day: d}, nil
	case m == 0 && d == 0 && len(st.nbrs) == 1 && dates.IsMonth(st.nbrs[0]):
		return dates.Date{Year: y, Month: st.nbrs[0]}, nil
	}
	if len(st.nbrs) == 2 {
		x := st.joined()
		if st.toks[len(st.toks)-1].Role == scan.RoleYear &&
			dates.IsDay(st.nbrs[0]) && dates.IsMonth(st.nbrs[1]) && twoSeps(x) {
			return dates.Date{Year: y, Month: st.nbrs[1], Day: st.nbrs[0]}, nil
		}
		if st.toks[0].Role == scan.RoleYear &&
			dates.IsDay(st.nbrs[1]) && dates.IsMonth(st.nbrs[0]) && twoSeps(x) {
			return dates.Date{Year: y, Month: st.nbrs[0], Day: st.nbrs[1]}, nil
		}
	}
	if m != 0 {
		return dates.Date{Year: y, Month: m}, nil
	}
	return dates.Date{Year: y}, nil
}

// joined reassembles the token texts with any matched month name
// excised. This is the text the separator heuristic counts over.
func (st *state) joined() string {
	var b strings.Builder
	for _, t := range st.toks {
		if t.Role == scan.RoleMonth {
			continue
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// twoSeps reports whether the text carries exactly two dashes or
// exactly two dots, the separator shape of a dashed or dotted date.
// The count runs over the whole text, so any stray separator defeats
// it and the result falls back to lower precision.
func twoSeps(x string) bool {
	return strings.Count(x, "-") == 2 || strings.Count(x, ".") == 2
}
