package tostring

import (
	"reflect"
	"strings"
)

// Builder collects fields and renders them with a Style.
//
//	tostring.New(p, tostring.DefaultStyle).
//		Append("name", p.Name).
//		Append("age", p.Age).
//		String()
type Builder struct {
	style   Style
	prefix  string
	fields  []string
	visited visited
}

func New(obj any, style Style) *Builder {
	b := &Builder{style: style, visited: make(visited)}
	if style.UseTypeName && obj != nil {
		b.prefix = typeName(reflect.TypeOf(obj), style.ShortTypeName)
	}
	return b
}

// Append adds one field. Values are formatted like Reflect formats fields.
func (b *Builder) Append(name string, value any) *Builder {
	f := formatter{style: b.style, visited: b.visited}
	var sb strings.Builder
	f.value(&sb, reflect.ValueOf(value), false)
	b.add(name, sb.String())
	return b
}

// AppendSuper inlines the fields of another rendering in the same style,
// typically an embedded type's String output.
func (b *Builder) AppendSuper(s string) *Builder {
	return b.AppendToString(s)
}

// AppendToString inlines the content between the outer ContentStart and
// ContentEnd of s. An empty s adds nothing.
func (b *Builder) AppendToString(s string) *Builder {
	inner := s
	if st := b.style.ContentStart; st != "" {
		if i := strings.Index(inner, st); i >= 0 {
			inner = inner[i+len(st):]
		}
	}
	if end := b.style.ContentEnd; end != "" {
		if i := strings.LastIndex(inner, end); i >= 0 {
			inner = inner[:i]
		}
	}
	if b.style.FieldSeparatorAtStart {
		inner = strings.TrimPrefix(inner, b.style.FieldSeparator)
	}
	if inner != "" {
		b.fields = append(b.fields, inner)
	}
	return b
}

func (b *Builder) add(name, value string) {
	if b.style.UseFieldNames && name != "" {
		q := b.style.FieldNameQuote
		value = q + name + q + b.style.NameValueSeparator + value
	}
	b.fields = append(b.fields, value)
}

func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.prefix)
	sb.WriteString(b.style.ContentStart)
	if b.style.FieldSeparatorAtStart && len(b.fields) > 0 {
		sb.WriteString(b.style.FieldSeparator)
	}
	sb.WriteString(strings.Join(b.fields, b.style.FieldSeparator))
	sb.WriteString(b.style.ContentEnd)
	return sb.String()
}

func typeName(t reflect.Type, short bool) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if short && t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
