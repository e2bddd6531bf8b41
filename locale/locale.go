// Package locale parses and matches locales and looks up localized
// messages with parent fallback.
package locale

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var ErrInvalid = errors.New("invalid locale")

// Parse accepts en_US, en-US and plain language codes. The empty string
// is the root locale.
func Parse(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, errors.Wrapf(ErrInvalid, "%q: %v", s, err)
	}
	return tag, nil
}

func MustParse(s string) language.Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tag
}

// Match returns the supported tag that best serves the requested locales.
// Unparseable requests are ignored; with no usable request the first
// supported tag wins.
func Match(supported []language.Tag, requested ...string) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	var want []language.Tag
	for _, r := range requested {
		if tag, err := Parse(r); err == nil {
			want = append(want, tag)
		}
	}
	_, idx, _ := language.NewMatcher(supported).Match(want...)
	return supported[idx]
}

// MatchAccept matches an Accept-Language header value.
func MatchAccept(supported []language.Tag, header string) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	want, _, _ := language.ParseAcceptLanguage(header)
	_, idx, _ := language.NewMatcher(supported).Match(want...)
	return supported[idx]
}

// Underscore formats tag in the en_US form.
func Underscore(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}

// DisplayName names tag in the language of in, e.g. "Deutsch" for de in de.
func DisplayName(tag, in language.Tag) string {
	return display.Tags(in).Name(tag)
}
