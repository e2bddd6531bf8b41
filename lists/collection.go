package lists

import (
	"reflect"
)

const (
	collectionHashSeed       = 11
	collectionHashMultiplier = 131
)

// AddAll adds every element of src to dst.
// Returns true if at least one Add changed dst.
func AddAll[T Primitive](dst, src Collection[T]) (bool, error) {
	changed := false
	it := src.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return changed, err
		}
		ok, err := dst.Add(v)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// Clear removes every element through the iterator.
func Clear[T Primitive](c Collection[T]) error {
	it := c.Iterator()
	for it.HasNext() {
		if _, err := it.Next(); err != nil {
			return err
		}
		if err := it.Remove(); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether c holds an element equal to value.
func Contains[T Primitive](c Collection[T], value T) bool {
	want := scalarOf(value)
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return false
		}
		if scalarOf(v).equal(want) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element of other is in c.
func ContainsAll[T Primitive](c, other Collection[T]) bool {
	it := other.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return false
		}
		if !Contains(c, v) {
			return false
		}
	}
	return true
}

// RemoveElement removes the first element equal to value.
func RemoveElement[T Primitive](c Collection[T], value T) (bool, error) {
	want := scalarOf(value)
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return false, err
		}
		if scalarOf(v).equal(want) {
			if err := it.Remove(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// RemoveAll removes every element of c that is contained in other.
func RemoveAll[T Primitive](c, other Collection[T]) (bool, error) {
	return removeWhere(c, func(v T) bool { return Contains(other, v) })
}

// RetainAll removes every element of c that is not contained in other.
func RetainAll[T Primitive](c, other Collection[T]) (bool, error) {
	return removeWhere(c, func(v T) bool { return !Contains(other, v) })
}

func removeWhere[T Primitive](c Collection[T], drop func(T) bool) (bool, error) {
	changed := false
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return changed, err
		}
		if drop(v) {
			if err := it.Remove(); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

// ToArray materializes c. buf is reused when its capacity suffices.
func ToArray[T Primitive](c Collection[T], buf []T) []T {
	n := c.Size()
	if cap(buf) >= n {
		buf = buf[:n]
	} else {
		buf = make([]T, n)
	}
	i := 0
	it := c.Iterator()
	for it.HasNext() && i < n {
		v, err := it.Next()
		if err != nil {
			break
		}
		buf[i] = v
		i++
	}
	return buf[:i]
}

// Compare orders a and b lexicographically. A strict prefix sorts first and
// a nil b sorts before a.
func Compare[T Primitive](a, b Collection[T]) int {
	if b == nil {
		return 1
	}
	ia, ib := a.Iterator(), b.Iterator()
	for ia.HasNext() && ib.HasNext() {
		va, errA := ia.Next()
		vb, errB := ib.Next()
		if errA != nil || errB != nil {
			break
		}
		if c := ElementCompare(va, vb); c != 0 {
			return c
		}
	}
	switch {
	case ia.HasNext():
		return 1
	case ib.HasNext():
		return -1
	default:
		return 0
	}
}

// Hash is the order-sensitive collection hash (seed 11, multiplier 131).
func Hash[T Primitive](c Collection[T]) int32 {
	h := int32(collectionHashSeed)
	it := c.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		h = collectionHashMultiplier*h + ElementHash(v)
	}
	return h
}

// Equal reports whether a and b have the same dynamic type, the same size
// and pairwise equal elements in iteration order.
func Equal[T Primitive](a, b Collection[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || a.Size() != b.Size() {
		return false
	}
	return sameElements(a.Iterator(), b.Iterator())
}

func sameElements[T Primitive](ia, ib Iterator[T]) bool {
	for ia.HasNext() && ib.HasNext() {
		va, errA := ia.Next()
		vb, errB := ib.Next()
		if errA != nil || errB != nil || !ElementEqual(va, vb) {
			return false
		}
	}
	return !ia.HasNext() && !ib.HasNext()
}
