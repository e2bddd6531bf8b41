package lists

import (
	"cmp"
	"math"
	"reflect"
	"strconv"
)

// scalar is a kind-tagged widening of a primitive value.
// Exactly one of i, u, f is meaningful, selected by kind; booleans use u.
type scalar struct {
	kind reflect.Kind
	i    int64
	u    uint64
	f    float64
}

func scalarOf[T Primitive](v T) scalar {
	switch x := any(v).(type) {
	case bool:
		if x {
			return scalar{kind: reflect.Bool, u: 1}
		}
		return scalar{kind: reflect.Bool}
	case int:
		return scalar{kind: reflect.Int, i: int64(x)}
	case int8:
		return scalar{kind: reflect.Int8, i: int64(x)}
	case int16:
		return scalar{kind: reflect.Int16, i: int64(x)}
	case int32:
		return scalar{kind: reflect.Int32, i: int64(x)}
	case int64:
		return scalar{kind: reflect.Int64, i: x}
	case uint:
		return scalar{kind: reflect.Uint, u: uint64(x)}
	case uint8:
		return scalar{kind: reflect.Uint8, u: uint64(x)}
	case uint16:
		return scalar{kind: reflect.Uint16, u: uint64(x)}
	case uint32:
		return scalar{kind: reflect.Uint32, u: uint64(x)}
	case uint64:
		return scalar{kind: reflect.Uint64, u: x}
	case float32:
		return scalar{kind: reflect.Float32, f: float64(x)}
	case float64:
		return scalar{kind: reflect.Float64, f: x}
	}

	// named types
	rv := reflect.ValueOf(v)
	switch k := rv.Kind(); k {
	case reflect.Bool:
		if rv.Bool() {
			return scalar{kind: k, u: 1}
		}
		return scalar{kind: k}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar{kind: k, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return scalar{kind: k, u: rv.Uint()}
	default:
		return scalar{kind: k, f: rv.Float()}
	}
}

func (s scalar) isFloat() bool {
	return s.kind == reflect.Float32 || s.kind == reflect.Float64
}

func (s scalar) isSigned() bool {
	return s.kind >= reflect.Int && s.kind <= reflect.Int64
}

// floatBits returns the bit pattern with every NaN collapsed to one value.
func (s scalar) floatBits() int64 {
	if s.kind == reflect.Float32 {
		f := float32(s.f)
		if f != f {
			return 0x7fc00000
		}
		return int64(int32(math.Float32bits(f)))
	}
	if math.IsNaN(s.f) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(s.f))
}

func (s scalar) equal(o scalar) bool {
	if s.isFloat() {
		return s.floatBits() == o.floatBits()
	}
	return s.i == o.i && s.u == o.u
}

func (s scalar) compare(o scalar) int {
	switch {
	case s.isFloat():
		if s.f < o.f {
			return -1
		}
		if s.f > o.f {
			return 1
		}
		// orders -0 before +0 and NaN after everything
		return cmp.Compare(s.floatBits(), o.floatBits())
	case s.isSigned():
		return cmp.Compare(s.i, o.i)
	default:
		return cmp.Compare(s.u, o.u)
	}
}

func (s scalar) hash() int32 {
	switch s.kind {
	case reflect.Bool:
		if s.u == 1 {
			return 1231
		}
		return 1237
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(s.i)
	case reflect.Uint8, reflect.Uint16:
		return int32(s.u)
	case reflect.Int, reflect.Int64:
		return int32(uint64(s.i) ^ uint64(s.i)>>32)
	case reflect.Float32:
		return int32(s.floatBits())
	case reflect.Float64:
		bits := uint64(s.floatBits())
		return int32(bits ^ bits>>32)
	default:
		return int32(s.u ^ s.u>>32)
	}
}

func (s scalar) format() string {
	switch {
	case s.kind == reflect.Bool:
		return strconv.FormatBool(s.u == 1)
	case s.kind == reflect.Float32:
		return strconv.FormatFloat(s.f, 'g', -1, 32)
	case s.kind == reflect.Float64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case s.isSigned():
		return strconv.FormatInt(s.i, 10)
	default:
		return strconv.FormatUint(s.u, 10)
	}
}

// ElementEqual compares two elements. Floats compare by canonical bit
// pattern: NaN equals NaN, and +0 differs from -0.
func ElementEqual[T Primitive](a, b T) bool {
	return scalarOf(a).equal(scalarOf(b))
}

// ElementCompare orders two elements. Booleans order false before true;
// floats follow -Inf < ... < -0 < +0 < ... < +Inf < NaN.
func ElementCompare[T Primitive](a, b T) int {
	return scalarOf(a).compare(scalarOf(b))
}

// ElementHash returns a 32-bit hash: 1231/1237 for booleans, the folded
// canonical bits for floats and the folded value for integers.
func ElementHash[T Primitive](v T) int32 {
	return scalarOf(v).hash()
}

// FormatElement renders v as a literal.
func FormatElement[T Primitive](v T) string {
	return scalarOf(v).format()
}
