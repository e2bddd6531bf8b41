// Package tostring builds readable one-line or multi-line descriptions of
// values, by hand through Builder or by reflection through Reflect.
package tostring

// Style holds the punctuation and verbosity of a rendering.
type Style struct {
	UseTypeName   bool
	ShortTypeName bool
	UseFieldNames bool

	ContentStart string
	ContentEnd   string
	// FieldSeparatorAtStart also emits FieldSeparator before the first field.
	FieldSeparatorAtStart bool
	FieldSeparator        string
	NameValueSeparator    string
	// FieldNameQuote wraps field names and map keys.
	FieldNameQuote string
	// QuoteStrings renders strings as Go quoted literals.
	QuoteStrings bool

	ArrayStart     string
	ArrayEnd       string
	ArraySeparator string

	MapStart        string
	MapEnd          string
	MapKeySeparator string

	NullText string
}

var (
	// DefaultStyle renders pkg.Type[a=1,b=<null>].
	DefaultStyle = Style{
		UseTypeName:        true,
		UseFieldNames:      true,
		ContentStart:       "[",
		ContentEnd:         "]",
		FieldSeparator:     ",",
		NameValueSeparator: "=",
		ArrayStart:         "{",
		ArrayEnd:           "}",
		ArraySeparator:     ",",
		MapStart:           "{",
		MapEnd:             "}",
		MapKeySeparator:    "=",
		NullText:           "<null>",
	}

	// MultiLineStyle puts every field on its own indented line.
	MultiLineStyle = with(DefaultStyle, func(s *Style) {
		s.ContentStart = "["
		s.FieldSeparatorAtStart = true
		s.FieldSeparator = "\n  "
		s.ContentEnd = "\n]"
	})

	NoFieldNamesStyle = with(DefaultStyle, func(s *Style) {
		s.UseFieldNames = false
	})

	// ShortPrefixStyle drops the package from the type name.
	ShortPrefixStyle = with(DefaultStyle, func(s *Style) {
		s.ShortTypeName = true
	})

	// SimpleStyle prints only the values: 1,2.
	SimpleStyle = with(DefaultStyle, func(s *Style) {
		s.UseTypeName = false
		s.UseFieldNames = false
		s.ContentStart = ""
		s.ContentEnd = ""
	})

	JSONStyle = Style{
		UseFieldNames:      true,
		ContentStart:       "{",
		ContentEnd:         "}",
		FieldSeparator:     ",",
		NameValueSeparator: ":",
		FieldNameQuote:     `"`,
		QuoteStrings:       true,
		ArrayStart:         "[",
		ArrayEnd:           "]",
		ArraySeparator:     ",",
		MapStart:           "{",
		MapEnd:             "}",
		MapKeySeparator:    ":",
		NullText:           "null",
	}
)

func with(base Style, edit func(*Style)) Style {
	edit(&base)
	return base
}
