package scan

import "fmt"

// Role is the classification a token acquires while a date is being
// decoded. Tokens start out as RoleNone and carry at most one role.
type Role int

const (
	RoleNone Role = iota
	RoleYear
	RoleDay
	RoleNumber
	RoleMonth
)

var roleNames = [...]string{"none", "year", "day", "number", "month"}

func (r Role) String() string {
	if r < RoleNone || r > RoleMonth {
		return "invalid"
	}
	return roleNames[r]
}

// Token is one maximal run of the input, either all decimal digits or
// entirely digit free.
type Token struct {
	Text   string
	Digits bool
	Role   Role
}

// String renders the token for debugging, e.g. digit("1983")=year.
func (t Token) String() string {
	kind := "text"
	if t.Digits {
		kind = "digit"
	}
	if t.Role == RoleNone {
		return fmt.Sprintf("%s(%q)", kind, t.Text)
	}
	return fmt.Sprintf("%s(%q)=%s", kind, t.Text, t.Role)
}

// Split breaks s into its maximal digit and non-digit runs, in order.
// Concatenating the returned token texts reproduces s exactly. The
// empty string yields no tokens; callers that require non-empty input
// guard it themselves.
func Split(s string) []Token {
	if s == "" {
		return nil
	}
	var toks []Token
	start := 0
	digits := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		d := isDigit(s[i])
		if d == digits {
			continue
		}
		toks = append(toks, Token{Text: s[start:i], Digits: digits})
		start, digits = i, d
	}
	return append(toks, Token{Text: s[start:], Digits: digits})
}

// isDigit reports whether c is an ASCII decimal digit. Only ASCII
// digits form numeric runs; any other byte belongs to a text run.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
