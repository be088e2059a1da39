package interpret

import (
	"datum/src/internal/dates"
	"datum/src/internal/scan"
)

// rule is one classifier heuristic. apply reports whether it claimed
// the digit run at toks[i]; stop ends classification for the whole
// input once the rule has fired.
type rule struct {
	apply func(st *state, i int) bool
	stop  bool
}

// rules run in priority order against each digit run; the first rule
// that applies wins the run. Reordering them changes which of several
// plausible readings wins on ambiguous input, so the order is fixed.
var rules = []rule{
	{yearMonthDay8, true},
	{dayMonthYear8, true},
	{yearMonth6, true},
	{y2kMonthDay6, true},
	{dayMonthY2K6, true},
	{y2kMonth4, true},
	{tagYear4, false},
	{tagYearY2K, false},
	{tagDay, false},
	{tagNumber, false},
}

// yearMonthDay8 reads an 8 digit run as YYYYMMDD.
func yearMonthDay8(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) != 8 {
		return false
	}
	y, m, d := num(x[:4]), num(x[4:6]), num(x[6:])
	if !dates.IsYear(y, st.upper) || !dates.IsMonth(m) || !dates.IsDay(d) {
		return false
	}
	st.year, st.month, st.day = y, m, d
	return true
}

// dayMonthYear8 reads an 8 digit run as DDMMYYYY.
func dayMonthYear8(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) != 8 {
		return false
	}
	d, m, y := num(x[:2]), num(x[2:4]), num(x[4:])
	if !dates.IsDay(d) || !dates.IsMonth(m) || !dates.IsYear(y, st.upper) {
		return false
	}
	st.year, st.month, st.day = y, m, d
	return true
}

// yearMonth6 reads a 6 digit run as YYYYMM. The run is decisive for
// the whole input, so any day claimed earlier is discarded.
func yearMonth6(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) != 6 {
		return false
	}
	y, m := num(x[:4]), num(x[4:])
	if !dates.IsYear(y, st.upper) || !dates.IsMonth(m) {
		return false
	}
	st.year, st.month, st.day = y, m, 0
	return true
}

// y2kMonthDay6 reads a 6 digit run as YYMMDD with a two-digit year.
func y2kMonthDay6(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) != 6 {
		return false
	}
	y, m, d := num(x[:2]), num(x[2:4]), num(x[4:])
	if !dates.IsY2K(y) || !dates.IsMonth(m) || !dates.IsDay(d) {
		return false
	}
	st.year, st.month, st.day = dates.FromY2K(y), m, d
	return true
}

// dayMonthY2K6 reads a 6 digit run as DDMMYY with a two-digit year.
func dayMonthY2K6(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) != 6 {
		return false
	}
	d, m, y := num(x[:2]), num(x[2:4]), num(x[4:])
	if !dates.IsDay(d) || !dates.IsMonth(m) || !dates.IsY2K(y) {
		return false
	}
	st.year, st.month, st.day = dates.FromY2K(y), m, d
	return true
}

// y2kMonth4 reads a 4 digit run as YYMM with a two-digit year. Only
// tried while no year is known.
func y2kMonth4(st *state, i int) bool {
	if st.year != 0 {
		return false
	}
	x := st.toks[i].Text
	if len(x) != 4 {
		return false
	}
	y, m := num(x[:2]), num(x[2:])
	if !dates.IsY2K(y) || !dates.IsMonth(m) {
		return false
	}
	st.year, st.month, st.day = dates.FromY2K(y), m, 0
	return true
}

// tagYear4 claims a 4 digit run as the year. The first acceptable
// year wins; later ones stay untagged.
func tagYear4(st *state, i int) bool {
	if st.year != 0 {
		return false
	}
	x := st.toks[i].Text
	if len(x) != 4 {
		return false
	}
	v := num(x)
	if !dates.IsYear(v, st.upper) {
		return false
	}
	st.toks[i].Role = scan.RoleYear
	st.year = v
	return true
}

// tagYearY2K claims a 2 digit run in the y2k window as the year.
func tagYearY2K(st *state, i int) bool {
	if st.year != 0 {
		return false
	}
	x := st.toks[i].Text
	if len(x) != 2 {
		return false
	}
	v := num(x)
	if !dates.IsY2K(v) {
		return false
	}
	st.toks[i].Role = scan.RoleYear
	st.year = dates.FromY2K(v)
	return true
}

// tagDay claims a 2 digit run above 12 as the day: such a value cannot
// be a month. Values up to 12 are left for the candidate list so day
// and month can be told apart later.
func tagDay(st *state, i int) bool {
	if st.day != 0 {
		return false
	}
	x := st.toks[i].Text
	if len(x) != 2 {
		return false
	}
	v := num(x)
	if v <= 12 || !dates.IsDay(v) {
		return false
	}
	st.toks[i].Role = scan.RoleDay
	st.day = v
	return true
}

// tagNumber records any other nonzero one or two digit value as an
// uncommitted candidate, in order of appearance.
func tagNumber(st *state, i int) bool {
	x := st.toks[i].Text
	if len(x) > 2 {
		return false
	}
	v := num(x)
	if v == 0 {
		return false
	}
	st.toks[i].Role = scan.RoleNumber
	st.nbrs = append(st.nbrs, v)
	return true
}

// num converts a short all-digit string to an int. Callers have length
// checked s already, so overflow is impossible.
func num(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v = v*10 + int(s[i]-'0')
	}
	return v
}
