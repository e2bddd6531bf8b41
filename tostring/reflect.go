package tostring

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

type options struct {
	unexported bool
	excluded   map[string]bool
}

type Option func(*options)

// WithUnexported also lists unexported fields. Their values are read by
// kind only; their String methods are never called.
func WithUnexported() Option {
	return func(o *options) { o.unexported = true }
}

// Excluding skips fields by name.
func Excluding(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.excluded[n] = true
		}
	}
}

// Reflect renders the exported fields of obj. Fields of embedded structs
// are listed inline.
func Reflect(obj any, style Style) string {
	return ReflectWith(obj, style)
}

func ReflectWith(obj any, style Style, opts ...Option) string {
	o := options{excluded: make(map[string]bool)}
	for _, opt := range opts {
		opt(&o)
	}
	f := formatter{style: style, opts: o, visited: make(visited)}
	var sb strings.Builder
	f.value(&sb, reflect.ValueOf(obj), true)
	return sb.String()
}

// visited holds the references currently being rendered.
type visited map[visitKey]bool

type visitKey struct {
	ptr uintptr
	typ reflect.Type
}

type formatter struct {
	style   Style
	opts    options
	visited visited
}

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

// value writes v. root disables String methods so a String method that
// calls Reflect on its own receiver does not recurse.
func (f formatter) value(sb *strings.Builder, v reflect.Value, root bool) {
	if !v.IsValid() {
		sb.WriteString(f.style.NullText)
		return
	}
	if !root && v.Kind() != reflect.Pointer && v.CanInterface() {
		if v.Type().Implements(errorType) || v.Type().Implements(stringerType) {
			if isNil(v) {
				sb.WriteString(f.style.NullText)
				return
			}
			var s string
			if err, ok := v.Interface().(error); ok {
				s = err.Error()
			} else {
				s = v.Interface().(fmt.Stringer).String()
			}
			f.text(sb, s)
			return
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		sb.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.String:
		f.text(sb, v.String())
	case reflect.Interface:
		f.value(sb, v.Elem(), false)
	case reflect.Pointer:
		if v.IsNil() {
			sb.WriteString(f.style.NullText)
			return
		}
		f.enter(sb, v, func() { f.pointee(sb, v.Elem()) })
	case reflect.Slice:
		if v.IsNil() {
			sb.WriteString(f.style.NullText)
			return
		}
		f.enter(sb, v, func() { f.array(sb, v) })
	case reflect.Array:
		f.array(sb, v)
	case reflect.Map:
		if v.IsNil() {
			sb.WriteString(f.style.NullText)
			return
		}
		f.enter(sb, v, func() { f.mapping(sb, v) })
	case reflect.Struct:
		f.structure(sb, v)
	default:
		f.identity(sb, v)
	}
}

// pointee renders the target of a pointer. Structs are always rendered
// field by field there, which keeps pointer cycles under the visited check.
func (f formatter) pointee(sb *strings.Builder, v reflect.Value) {
	if v.Kind() == reflect.Struct {
		f.structure(sb, v)
		return
	}
	f.value(sb, v, false)
}

// enter renders a reference once per path; a reference met again while it
// is still being rendered prints as Type@address.
func (f formatter) enter(sb *strings.Builder, v reflect.Value, render func()) {
	key := visitKey{ptr: v.Pointer(), typ: v.Type()}
	if f.visited[key] {
		f.identity(sb, v)
		return
	}
	f.visited[key] = true
	defer delete(f.visited, key)
	render()
}

func (f formatter) identity(sb *strings.Builder, v reflect.Value) {
	sb.WriteString(typeName(v.Type(), f.style.ShortTypeName))
	sb.WriteByte('@')
	sb.WriteString(strconv.FormatUint(uint64(v.Pointer()), 16))
}

func (f formatter) text(sb *strings.Builder, s string) {
	if f.style.QuoteStrings {
		sb.WriteString(strconv.Quote(s))
		return
	}
	sb.WriteString(s)
}

func (f formatter) array(sb *strings.Builder, v reflect.Value) {
	sb.WriteString(f.style.ArrayStart)
	for i := range v.Len() {
		if i > 0 {
			sb.WriteString(f.style.ArraySeparator)
		}
		f.value(sb, v.Index(i), false)
	}
	sb.WriteString(f.style.ArrayEnd)
}

func (f formatter) mapping(sb *strings.Builder, v reflect.Value) {
	type entry struct{ key, value string }
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var k, val strings.Builder
		keyFmt := f
		keyFmt.style.QuoteStrings = false
		keyFmt.value(&k, iter.Key(), false)
		f.value(&val, iter.Value(), false)
		entries = append(entries, entry{k.String(), val.String()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.key, b.key) })

	q := f.style.FieldNameQuote
	sb.WriteString(f.style.MapStart)
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(f.style.ArraySeparator)
		}
		sb.WriteString(q + e.key + q)
		sb.WriteString(f.style.MapKeySeparator)
		sb.WriteString(e.value)
	}
	sb.WriteString(f.style.MapEnd)
}

func (f formatter) structure(sb *strings.Builder, v reflect.Value) {
	b := &Builder{style: f.style, visited: f.visited}
	if f.style.UseTypeName {
		b.prefix = typeName(v.Type(), f.style.ShortTypeName)
	}
	f.fields(b, v)
	sb.WriteString(b.String())
}

func (f formatter) fields(b *Builder, v reflect.Value) {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			f.fields(b, v.Field(i))
			continue
		}
		if (!field.IsExported() && !f.opts.unexported) || f.opts.excluded[field.Name] {
			continue
		}
		var sb strings.Builder
		f.value(&sb, v.Field(i), false)
		b.add(field.Name, sb.String())
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
