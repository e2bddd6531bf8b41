package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// TypedProperty reads one name through a converter, falling back to
// Default when the name is absent.
type TypedProperty[T any] struct {
	Name    string
	Default T
	Convert func(string) (T, error)
}

func NewTypedProperty[T any](name string, def T, convert func(string) (T, error)) TypedProperty[T] {
	return TypedProperty[T]{Name: name, Default: def, Convert: convert}
}

// Get returns Default for a missing name and ErrType when conversion fails.
func (tp TypedProperty[T]) Get(s *Store) (T, error) {
	p, ok := s.Lookup(tp.Name)
	if !ok || len(p.Values) == 0 {
		return tp.Default, nil
	}
	v, err := tp.Convert(p.Value())
	if err != nil {
		return tp.Default, errors.Wrapf(ErrType, "%q: %v", tp.Name, err)
	}
	return v, nil
}

// Value is Get without the error.
func (tp TypedProperty[T]) Value(s *Store) T {
	v, _ := tp.Get(s)
	return v
}

func castString(s string) (string, error) { return s, nil }

func castInt(s string) (int, error) { return cast.ToIntE(decimal(s)) }

func castInt64(s string) (int64, error) { return cast.ToInt64E(decimal(s)) }

// decimal drops leading zeros so that "010" is ten, not octal eight.
// Prefixed literals such as 0x1f and 0b101 are left alone.
func decimal(s string) string {
	s = strings.TrimSpace(s)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	i := 0
	for i+1 < len(s) && s[i] == '0' && s[i+1] >= '0' && s[i+1] <= '9' {
		i++
	}
	return sign + s[i:]
}

func castFloat(s string) (float64, error) { return cast.ToFloat64E(s) }

func castBool(s string) (bool, error) { return cast.ToBoolE(s) }

func castDuration(s string) (time.Duration, error) { return cast.ToDurationE(s) }

// StringProperty and friends build TypedProperty values for the common types.
func StringProperty(name, def string) TypedProperty[string] {
	return NewTypedProperty(name, def, castString)
}

func IntProperty(name string, def int) TypedProperty[int] {
	return NewTypedProperty(name, def, castInt)
}

func Int64Property(name string, def int64) TypedProperty[int64] {
	return NewTypedProperty(name, def, castInt64)
}

func FloatProperty(name string, def float64) TypedProperty[float64] {
	return NewTypedProperty(name, def, castFloat)
}

func BoolProperty(name string, def bool) TypedProperty[bool] {
	return NewTypedProperty(name, def, castBool)
}

func DurationProperty(name string, def time.Duration) TypedProperty[time.Duration] {
	return NewTypedProperty(name, def, castDuration)
}

func (s *Store) String(name, def string) string {
	return StringProperty(name, def).Value(s)
}

func (s *Store) Int(name string, def int) int {
	return IntProperty(name, def).Value(s)
}

func (s *Store) Int64(name string, def int64) int64 {
	return Int64Property(name, def).Value(s)
}

func (s *Store) Float(name string, def float64) float64 {
	return FloatProperty(name, def).Value(s)
}

func (s *Store) Bool(name string, def bool) bool {
	return BoolProperty(name, def).Value(s)
}

func (s *Store) Duration(name string, def time.Duration) time.Duration {
	return DurationProperty(name, def).Value(s)
}

// Strings returns every value of name, or def when it is absent.
func (s *Store) Strings(name string, def []string) []string {
	if p, ok := s.Lookup(name); ok {
		return p.Values
	}
	return def
}
