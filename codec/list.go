package codec

import (
	"math"
	"reflect"

	"github.com/pkg/errors"

	"primkit/lists"
)

// WriteList writes l as a count followed by its elements. Elements have
// no markers of their own. A nil list is written as null.
func WriteList[T lists.Primitive](w *Writer, l lists.List[T]) {
	if l == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.uvarint(uint64(l.Size()))
	kind := reflect.TypeFor[T]().Kind()
	for v := range l.Values() {
		writeElement(w, kind, reflect.ValueOf(v))
	}
}

// WriteSlice uses the list layout for a plain slice.
func WriteSlice[T lists.Primitive](w *Writer, s []T) {
	if s == nil {
		w.WriteNull()
		return
	}
	w.present()
	w.uvarint(uint64(len(s)))
	kind := reflect.TypeFor[T]().Kind()
	for _, v := range s {
		writeElement(w, kind, reflect.ValueOf(v))
	}
}

func writeElement(w *Writer, kind reflect.Kind, v reflect.Value) {
	switch kind {
	case reflect.Bool:
		if v.Bool() {
			w.byte(1)
		} else {
			w.byte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.varint(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.uvarint(v.Uint())
	case reflect.Float32:
		w.fixed32(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		w.fixed64(math.Float64bits(v.Float()))
	}
}

// ReadList returns nil for a null list.
func ReadList[T lists.Primitive](r *Reader) (*lists.ArrayList[T], error) {
	s, err := ReadSlice[T](r)
	if err != nil || s == nil {
		return nil, err
	}
	return lists.ArrayListOf(s...), nil
}

// ReadSlice returns nil for a null list.
func ReadSlice[T lists.Primitive](r *Reader) ([]T, error) {
	ok, err := r.ReadPresent()
	if err != nil {
		return nil, corrupt(err, "list")
	}
	if !ok {
		return nil, nil
	}
	n, err := r.length("list count")
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(n, maxPrealloc))
	kind := reflect.TypeFor[T]().Kind()
	for i := range n {
		var v T
		if err := readElement(r, kind, reflect.ValueOf(&v).Elem()); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func readElement(r *Reader, kind reflect.Kind, v reflect.Value) error {
	switch kind {
	case reflect.Bool:
		b, err := r.boolValue("bool element")
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := r.varint("int element")
		if err != nil {
			return err
		}
		if v.OverflowInt(n) {
			return errors.Wrapf(ErrCorrupt, "%d overflows %s", n, v.Type())
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := r.uvarint("uint element")
		if err != nil {
			return err
		}
		if v.OverflowUint(n) {
			return errors.Wrapf(ErrCorrupt, "%d overflows %s", n, v.Type())
		}
		v.SetUint(n)
	case reflect.Float32:
		bits, err := r.fixed32("float32 element")
		if err != nil {
			return err
		}
		v.SetFloat(float64(math.Float32frombits(bits)))
	case reflect.Float64:
		bits, err := r.fixed64("float64 element")
		if err != nil {
			return err
		}
		v.SetFloat(math.Float64frombits(bits))
	}
	return nil
}
