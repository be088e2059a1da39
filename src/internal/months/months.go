package months

import "strings"

// Entry is one month with every name form the matcher recognizes.
// When one form is a prefix of another, the longer form is listed
// first so it wins when both match at the same offset.
type Entry struct {
	Month int
	Names []string
}

// catalogue covers Danish and English month names and their common
// abbreviations. Order matters: it breaks ties between entries that
// match at the same offset.
var catalogue = []Entry{
	{1, []string{"january", "januar", "jan"}},
	{2, []string{"february", "februar", "feb"}},
	{3, []string{"march", "marts", "mar"}},
	{4, []string{"april", "apr"}},
	{5, []string{"maj", "may"}},
	{6, []string{"june", "juni", "jun"}},
	{7, []string{"july", "juli", "jul"}},
	{8, []string{"august", "aug"}},
	{9, []string{"september", "sept", "sep"}},
	{10, []string{"october", "oct", "oktober", "okt"}},
	{11, []string{"november", "nov"}},
	{12, []string{"december", "dec"}},
}

// All returns the catalogue in match-priority order. The slice is
// shared; callers must not modify it.
func All() []Entry { return catalogue }

// Match is a located month name inside a piece of text.
type Match struct {
	Start int // byte offset of the name
	End   int // byte offset just past the name
	Month int // 1..12
}

// Find returns the best month-name match in text, case insensitively.
// The earliest match start wins; at equal starts the first catalogue
// entry and then its first listed alternative wins. Plain substring
// semantics: a name buried inside a longer word still matches.
func Find(text string) (Match, bool) {
	lower := foldASCII(text)
	var best Match
	found := false
	for _, e := range catalogue {
		for _, name := range e.Names {
			i := strings.Index(lower, name)
			if i < 0 {
				continue
			}
			if !found || i < best.Start {
				best = Match{Start: i, End: i + len(name), Month: e.Month}
				found = true
			}
		}
	}
	return best, found
}

// foldASCII lowercases ASCII letters byte by byte, preserving length so
// match offsets stay valid in the original text. The catalogue names
// are plain ASCII; other bytes can never match them.
func foldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
