package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DatePattern is a pattern in the yyyy-MM-dd HH:mm:ss.SSS style compiled
// to a Go reference layout.
type DatePattern struct {
	pattern string
	layout  string
}

func Compile(pattern string) (DatePattern, error) {
	layout, err := toLayout(pattern)
	if err != nil {
		return DatePattern{}, err
	}
	return DatePattern{pattern: pattern, layout: layout}, nil
}

func MustCompile(pattern string) DatePattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func (p DatePattern) Format(t time.Time) string {
	return t.Format(p.layout)
}

func (p DatePattern) Parse(s string) (time.Time, error) {
	return p.ParseInLocation(s, time.UTC)
}

func (p DatePattern) ParseInLocation(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(p.layout, s, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %q with %q", s, p.pattern)
	}
	return t, nil
}

func (p DatePattern) Layout() string {
	return p.layout
}

func (p DatePattern) String() string {
	return p.pattern
}

func (p DatePattern) MarshalText() ([]byte, error) {
	return []byte(p.pattern), nil
}

func (p *DatePattern) UnmarshalText(text []byte) error {
	compiled, err := Compile(string(text))
	if err != nil {
		return err
	}
	*p = compiled
	return nil
}

// fields maps a run of one pattern letter to its layout. Entries are
// ordered longest first.
var fields = map[byte][]struct {
	min    int
	layout string
}{
	'y': {{4, "2006"}, {3, "2006"}, {2, "06"}, {1, "2006"}},
	'M': {{4, "January"}, {3, "Jan"}, {2, "01"}, {1, "1"}},
	'd': {{2, "02"}, {1, "2"}},
	'H': {{1, "15"}},
	'h': {{2, "03"}, {1, "3"}},
	'm': {{2, "04"}, {1, "4"}},
	's': {{2, "05"}, {1, "5"}},
	'a': {{1, "PM"}},
	'E': {{4, "Monday"}, {1, "Mon"}},
	'z': {{1, "MST"}},
	'Z': {{1, "-0700"}},
	'X': {{3, "Z07:00"}, {2, "Z0700"}, {1, "Z07"}},
}

// reserved are literal sequences Go would read as layout elements.
var reserved = []string{"Jan", "Mon", "MST", "PM", "pm", "_2", "Z07"}

type pieceKind int

const (
	literalPiece pieceKind = iota
	fieldPiece
	fractionPiece
)

type piece struct {
	kind pieceKind
	text string
}

func toLayout(pattern string) (string, error) {
	var pieces []piece
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			lit, next, err := quoted(pattern, i)
			if err != nil {
				return "", err
			}
			if err := checkLiteral(pattern, lit); err != nil {
				return "", err
			}
			pieces = append(pieces, piece{literalPiece, lit})
			i = next
		case isLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			n := j - i
			if c == 'S' {
				prev := pattern[max(i-1, 0)]
				if i == 0 || (prev != '.' && prev != ',') || n > 9 {
					return "", errors.Wrapf(ErrBadPattern, "%q: fraction must follow . or , and have at most 9 digits", pattern)
				}
				pieces = append(pieces, piece{fractionPiece, strings.Repeat("0", n)})
				i = j
				continue
			}
			layout, ok := lookup(c, n)
			if !ok {
				return "", errors.Wrapf(ErrBadPattern, "%q: unknown letter %q", pattern, c)
			}
			pieces = append(pieces, piece{fieldPiece, layout})
			i = j
		default:
			j := i
			for j < len(pattern) && pattern[j] != '\'' && !isLetter(pattern[j]) {
				j++
			}
			if err := checkLiteral(pattern, pattern[i:j]); err != nil {
				return "", err
			}
			pieces = append(pieces, piece{literalPiece, pattern[i:j]})
			i = j
		}
	}

	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.text)
	}
	layout := b.String()
	if err := checkJoined(pattern, layout, pieces); err != nil {
		return "", err
	}
	return layout, nil
}

// referenceTimes differ in every field, so two layout elements that run
// together into a different element format differently.
var referenceTimes = []time.Time{
	time.Date(2026, time.November, 23, 19, 47, 38, 123456789, time.FixedZone("XYZ", -(3*3600+30*60))),
	time.Date(2003, time.February, 5, 4, 6, 7, 1, time.FixedZone("QRS", 5*3600+45*60)),
}

// checkJoined rejects layouts where adjacent pieces read as another
// element, e.g. minute "4" next to second "5" reading as hour "15".
func checkJoined(pattern, layout string, pieces []piece) error {
	for _, t := range referenceTimes {
		var want strings.Builder
		for _, p := range pieces {
			switch p.kind {
			case literalPiece:
				want.WriteString(p.text)
			case fieldPiece:
				want.WriteString(t.Format(p.text))
			case fractionPiece:
				want.WriteString(fmt.Sprintf("%09d", t.Nanosecond())[:len(p.text)])
			}
		}
		if got := t.Format(layout); got != want.String() {
			return errors.Wrapf(ErrBadPattern, "%q: adjacent fields are ambiguous as layout %q", pattern, layout)
		}
	}
	return nil
}

func lookup(c byte, n int) (string, bool) {
	for _, f := range fields[c] {
		if n >= f.min {
			return f.layout, true
		}
	}
	return "", false
}

// quoted reads a 'literal' starting at i. Two quotes stand for one.
func quoted(pattern string, i int) (string, int, error) {
	if i+1 < len(pattern) && pattern[i+1] == '\'' {
		return "'", i + 2, nil
	}
	var b strings.Builder
	for j := i + 1; j < len(pattern); j++ {
		if pattern[j] != '\'' {
			b.WriteByte(pattern[j])
			continue
		}
		if j+1 < len(pattern) && pattern[j+1] == '\'' {
			b.WriteByte('\'')
			j++
			continue
		}
		return b.String(), j + 1, nil
	}
	return "", 0, errors.Wrapf(ErrBadPattern, "%q: unterminated quote", pattern)
}

func checkLiteral(pattern, lit string) error {
	if strings.ContainsAny(lit, "0123456789") {
		return errors.Wrapf(ErrBadPattern, "%q: digits cannot be literal", pattern)
	}
	for _, r := range reserved {
		if strings.Contains(lit, r) {
			return errors.Wrapf(ErrBadPattern, "%q: literal %q clashes with the layout", pattern, r)
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
