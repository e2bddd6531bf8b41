package lists

import (
	"iter"
	"slices"
)

// ArrayList is a slice-backed random-access list.
// The zero value is an empty list ready to use.
type ArrayList[T Primitive] struct {
	data     []T
	modCount int
}

func NewArrayList[T Primitive](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// ArrayListOf returns a list holding a copy of values.
func ArrayListOf[T Primitive](values ...T) *ArrayList[T] {
	al := NewArrayList[T](len(values))
	al.data = append(al.data, values...)
	return al
}

func (al *ArrayList[T]) ModCount() int {
	return al.modCount
}

// checkForComodification is a no-op: a root list owns its storage.
func (al *ArrayList[T]) checkForComodification() error {
	return nil
}

func (al *ArrayList[T]) Add(value T) (bool, error) {
	al.data = append(al.data, value)
	al.modCount++
	return true, nil
}

// AddValues appends one or more elements to the end of the list.
func (al *ArrayList[T]) AddValues(values ...T) {
	if len(values) == 0 {
		return
	}
	al.data = append(al.data, values...)
	al.modCount++
}

func (al *ArrayList[T]) AddAll(src Collection[T]) (bool, error) {
	return al.InsertAll(len(al.data), src)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return outOfBounds(index, len(al.data))
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	al.modCount++
	return nil
}

// InsertAll inserts the elements of src at index, in iteration order.
// src may be the list itself.
func (al *ArrayList[T]) InsertAll(index int, src Collection[T]) (bool, error) {
	if index < 0 || index > len(al.data) {
		return false, outOfBounds(index, len(al.data))
	}
	values := ToArray(src, nil)
	if err := al.InsertValues(index, values...); err != nil {
		return false, err
	}
	return len(values) > 0, nil
}

// InsertValues inserts multiple elements at the specified index.
// Optimization: Performs exactly ONE allocation (if needed) and ONE memory shift.
func (al *ArrayList[T]) InsertValues(index int, values ...T) error {
	if index < 0 || index > len(al.data) {
		return outOfBounds(index, len(al.data))
	}

	n := len(values)
	if n == 0 {
		return nil
	}

	oldLen := len(al.data)
	newLen := oldLen + n

	if newLen > cap(al.data) {
		newCap := max(newLen, 2*oldLen)

		newItems := make([]T, newLen, newCap)

		// [0...index] -> [0...index]
		copy(newItems, al.data[:index])
		// [index...] -> [index+n...] (leave a gap in the middle)
		copy(newItems[index+n:], al.data[index:])

		copy(newItems[index:], values)
		al.data = newItems
	} else {
		// enough capacity, in-place shift
		al.data = al.data[:newLen]

		// copy treats overlapping regions correctly
		copy(al.data[index+n:], al.data[index:])
		copy(al.data[index:], values)
	}

	al.modCount++
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds(index, len(al.data))
	}
	return al.data[index], nil
}

// Set does not count as a structural modification.
func (al *ArrayList[T]) Set(index int, value T) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds(index, len(al.data))
	}
	old := al.data[index]
	al.data[index] = value
	return old, nil
}

func (al *ArrayList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds(index, len(al.data))
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	al.data = al.data[:len(al.data)-1]
	al.modCount++
	return removed, nil
}

// RemoveRange removes elements from index 'start' (inclusive) to 'end' (exclusive).
func (al *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > len(al.data) || start > end {
		return rangeOutOfBounds(start, end, len(al.data))
	}
	if start == end {
		return nil
	}

	copy(al.data[start:], al.data[end:])
	al.data = al.data[:len(al.data)-(end-start)]
	al.modCount++
	return nil
}

func (al *ArrayList[T]) RemoveElement(value T) (bool, error) {
	i := al.IndexOf(value)
	if i < 0 {
		return false, nil
	}
	_, err := al.RemoveAt(i)
	return err == nil, err
}

// RemoveAll snapshots other first: it may be a view over this list, which
// removeIf compacts in place.
func (al *ArrayList[T]) RemoveAll(other Collection[T]) (bool, error) {
	drop := ToArray(other, nil)
	return al.removeIf(func(v T) bool { return containsElement(drop, v) }) > 0, nil
}

func (al *ArrayList[T]) RetainAll(other Collection[T]) (bool, error) {
	keep := ToArray(other, nil)
	return al.removeIf(func(v T) bool { return !containsElement(keep, v) }) > 0, nil
}

// RemoveIf removes every element matching predicate and returns how many were removed.
func (al *ArrayList[T]) RemoveIf(predicate func(T) bool) int {
	return al.removeIf(predicate)
}

func (al *ArrayList[T]) removeIf(predicate func(T) bool) int {
	before := len(al.data)
	al.data = slices.DeleteFunc(al.data, predicate)
	removed := before - len(al.data)
	if removed > 0 {
		al.modCount++
	}
	return removed
}

// Swap exchanges two elements; invalid indices are ignored.
func (al *ArrayList[T]) Swap(i, j int) {
	if i < 0 || i >= len(al.data) || j < 0 || j >= len(al.data) {
		return
	}
	al.data[i], al.data[j] = al.data[j], al.data[i]
}

func (al *ArrayList[T]) AddFirst(value T) {
	_ = al.Insert(0, value)
}

func (al *ArrayList[T]) RemoveFirst() (T, error) {
	return al.RemoveAt(0)
}

func (al *ArrayList[T]) RemoveLast() (T, error) {
	return al.RemoveAt(len(al.data) - 1)
}

func (al *ArrayList[T]) First() (T, error) {
	return al.Get(0)
}

func (al *ArrayList[T]) Last() (T, error) {
	return al.Get(len(al.data) - 1)
}

// Sort orders the list with compare, or with ElementCompare when compare is nil.
// Sorting counts as a structural modification.
func (al *ArrayList[T]) Sort(compare func(a, b T) int) {
	if compare == nil {
		compare = ElementCompare[T]
	}
	slices.SortFunc(al.data, compare)
	al.modCount++
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() error {
	al.data = al.data[:0]
	al.modCount++
	return nil
}

// ResizeToFit reduces the capacity of the underlying array to match the current size.
// Use this to release memory when the list will no longer grow.
func (al *ArrayList[T]) ResizeToFit() {
	al.data = slices.Clip(al.data)
}

// Clone returns an independent copy of the list.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	newItems := make([]T, len(al.data))
	copy(newItems, al.data)
	return &ArrayList[T]{
		data: newItems,
	}
}

// ToSlice returns a copy of the elements.
// This is an "escape hatch" method for users to fall back to standard library operations
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

func (al *ArrayList[T]) ToArray(buf []T) []T {
	if cap(buf) < len(al.data) {
		buf = make([]T, len(al.data))
	}
	buf = buf[:len(al.data)]
	copy(buf, al.data)
	return buf
}

func (al *ArrayList[T]) Contains(value T) bool {
	return al.IndexOf(value) >= 0
}

func (al *ArrayList[T]) ContainsAll(other Collection[T]) bool {
	return ContainsAll[T](al, other)
}

func (al *ArrayList[T]) ContainsFunc(predicate func(T) bool) bool {
	return slices.ContainsFunc(al.data, predicate)
}

func (al *ArrayList[T]) IndexOf(value T) int {
	want := scalarOf(value)
	return slices.IndexFunc(al.data, func(v T) bool { return scalarOf(v).equal(want) })
}

func (al *ArrayList[T]) LastIndexOf(value T) int {
	return lastIndexOf[T](al, value)
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

func (al *ArrayList[T]) Iterator() Iterator[T] {
	it, _ := newListIterator[T](al, 0)
	return it
}

func (al *ArrayList[T]) ListIterator(index int) (ListIterator[T], error) {
	it, err := newListIterator[T](al, index)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (al *ArrayList[T]) SubList(from, to int) (List[T], error) {
	sub, err := subListOf[T](al, from, to)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}

func (al *ArrayList[T]) Equal(other List[T]) bool {
	return ListEqual[T](al, other)
}

func (al *ArrayList[T]) Hash() int32 {
	return ListHash[T](al)
}

func (al *ArrayList[T]) Compare(other Collection[T]) int {
	return Compare[T](al, other)
}

// String implements fmt.Stringer: "[]" or "[v1,v2,...]".
func (al *ArrayList[T]) String() string {
	return format(al.Values())
}

func containsElement[T Primitive](s []T, value T) bool {
	want := scalarOf(value)
	return slices.ContainsFunc(s, func(v T) bool { return scalarOf(v).equal(want) })
}
