package lists

import (
	"iter"
)

// Unmodifiable returns a read-only view of l. Reads pass through; every
// mutator, including those on its iterators and sub-lists, returns
// ErrUnsupported.
func Unmodifiable[T Primitive](l List[T]) List[T] {
	if u, ok := l.(*readOnlyList[T]); ok {
		return u
	}
	return &readOnlyList[T]{list: l}
}

type readOnlyList[T Primitive] struct {
	list List[T]
}

func (r *readOnlyList[T]) Size() int { return r.list.Size() }
func (r *readOnlyList[T]) IsEmpty() bool { return r.list.IsEmpty() }
func (r *readOnlyList[T]) ModCount() int { return r.list.ModCount() }
func (r *readOnlyList[T]) Get(index int) (T, error) { return r.list.Get(index) }
func (r *readOnlyList[T]) Contains(value T) bool { return r.list.Contains(value) }
func (r *readOnlyList[T]) IndexOf(value T) int { return r.list.IndexOf(value) }
func (r *readOnlyList[T]) LastIndexOf(value T) int { return r.list.LastIndexOf(value) }
func (r *readOnlyList[T]) ToArray(buf []T) []T { return r.list.ToArray(buf) }
func (r *readOnlyList[T]) Values() iter.Seq[T] { return r.list.Values() }
func (r *readOnlyList[T]) All() iter.Seq2[int, T] { return r.list.All() }
func (r *readOnlyList[T]) Backward() iter.Seq2[int, T] { return r.list.Backward() }
func (r *readOnlyList[T]) Hash() int32 { return r.list.Hash() }
func (r *readOnlyList[T]) String() string { return r.list.String() }

func (r *readOnlyList[T]) ContainsAll(other Collection[T]) bool {
	return r.list.ContainsAll(other)
}

func (r *readOnlyList[T]) Equal(other List[T]) bool {
	return ListEqual[T](r, other)
}

func (r *readOnlyList[T]) Compare(other Collection[T]) int {
	return Compare[T](r, other)
}

func (r *readOnlyList[T]) Set(int, T) (old T, err error) {
	return old, unsupported("set")
}

func (r *readOnlyList[T]) Insert(int, T) error {
	return unsupported("insert")
}

func (r *readOnlyList[T]) RemoveAt(int) (val T, err error) {
	return val, unsupported("remove")
}

func (r *readOnlyList[T]) Add(T) (bool, error) {
	return false, unsupported("add")
}

func (r *readOnlyList[T]) AddAll(Collection[T]) (bool, error) {
	return false, unsupported("add all")
}

func (r *readOnlyList[T]) InsertAll(int, Collection[T]) (bool, error) {
	return false, unsupported("insert all")
}

// The bulk removals go through the read-only iterator, so they fail on the
// first element they would drop and succeed as no-ops otherwise.

func (r *readOnlyList[T]) RemoveElement(value T) (bool, error) {
	return RemoveElement[T](r, value)
}

func (r *readOnlyList[T]) RemoveAll(other Collection[T]) (bool, error) {
	return RemoveAll[T](r, other)
}

func (r *readOnlyList[T]) RetainAll(other Collection[T]) (bool, error) {
	return RetainAll[T](r, other)
}

func (r *readOnlyList[T]) Clear() error {
	return Clear[T](r)
}

func (r *readOnlyList[T]) Iterator() Iterator[T] {
	it, _ := r.ListIterator(0)
	return it
}

func (r *readOnlyList[T]) ListIterator(index int) (ListIterator[T], error) {
	it, err := r.list.ListIterator(index)
	if err != nil {
		return nil, err
	}
	return readOnlyIterator[T]{it}, nil
}

func (r *readOnlyList[T]) SubList(from, to int) (List[T], error) {
	sub, err := r.list.SubList(from, to)
	if err != nil {
		return nil, err
	}
	return &readOnlyList[T]{list: sub}, nil
}

type readOnlyIterator[T Primitive] struct {
	ListIterator[T]
}

func (readOnlyIterator[T]) Remove() error {
	return unsupported("iterator remove")
}

func (readOnlyIterator[T]) Set(T) error {
	return unsupported("iterator set")
}

func (readOnlyIterator[T]) Add(T) error {
	return unsupported("iterator add")
}
