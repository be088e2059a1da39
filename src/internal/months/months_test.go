package months

import (
	"strings"
	"testing"
)

func TestCatalogueShape(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("catalogue: want 12 entries, got %d", len(all))
	}
	for i, e := range all {
		if e.Month != i+1 {
			t.Fatalf("catalogue[%d]: want month %d, got %d", i, i+1, e.Month)
		}
		if len(e.Names) == 0 {
			t.Fatalf("catalogue[%d]: no names", i)
		}
		// a name that prefixes a longer sibling must come after it, or
		// the short form would steal the span
		for j, long := range e.Names {
			for k, short := range e.Names {
				if len(short) < len(long) && strings.HasPrefix(long, short) && k < j {
					t.Fatalf("catalogue[%d]: %q listed before longer %q", i, short, long)
				}
			}
		}
	}
}

func TestFindEveryName(t *testing.T) {
	for _, e := range All() {
		for _, name := range e.Names {
			m, ok := Find(name)
			if !ok {
				t.Fatalf("Find(%q): no match", name)
			}
			if m.Month != e.Month || m.Start != 0 || m.End != len(name) {
				t.Fatalf("Find(%q): want month %d span [0:%d], got %+v", name, e.Month, len(name), m)
			}
		}
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	cases := []struct {
		in    string
		month int
	}{
		{"AUGUST", 8},
		{"Maj", 5},
		{"DeCeMbEr", 12},
		{"OKT", 10},
	}
	for _, c := range cases {
		m, ok := Find(c.in)
		if !ok || m.Month != c.month {
			t.Fatalf("Find(%q): want month %d, got %+v ok=%v", c.in, c.month, m, ok)
		}
	}
}

func TestFindLeftmostWins(t *testing.T) {
	m, ok := Find("december or january")
	if !ok || m.Month != 12 || m.Start != 0 {
		t.Fatalf("leftmost: want december at 0, got %+v ok=%v", m, ok)
	}
}

func TestFindLongestAtSameOffset(t *testing.T) {
	// "september" starts with both "sept" and "sep"; the longest listed
	// form must claim the span.
	m, ok := Find("september")
	if !ok || m.Month != 9 || m.End != len("september") {
		t.Fatalf("longest: want full september span, got %+v ok=%v", m, ok)
	}
	m, ok = Find("xsepty")
	if !ok || m.Start != 1 || m.End != 5 {
		t.Fatalf("longest inner: want sept span [1:5], got %+v ok=%v", m, ok)
	}
}

func TestFindOffsets(t *testing.T) {
	m, ok := Find("in march 1983")
	if !ok || m.Month != 3 || m.Start != 3 || m.End != 8 {
		t.Fatalf("offsets: want march at [3:8], got %+v ok=%v", m, ok)
	}
}

func TestFindInsideWord(t *testing.T) {
	// Substring semantics are deliberate: any occurrence counts.
	m, ok := Find("fjantet")
	if !ok || m.Month != 1 || m.Start != 1 {
		t.Fatalf("substring: want jan at 1, got %+v ok=%v", m, ok)
	}
}

func TestFindNoMatch(t *testing.T) {
	for _, in := range []string{"", "xyz", "1983", "m0nth", "\xc3"} {
		if m, ok := Find(in); ok {
			t.Fatalf("Find(%q): unexpected match %+v", in, m)
		}
	}
}
