package lists

import (
	"iter"
	"strings"
)

const (
	listHashSeed       = 1
	listHashMultiplier = 31
)

// accessor is the primitive operation set a random-access list supplies.
// The helpers below derive the rest of List from it, so ArrayList and the
// sub-list view share one implementation of every non-storage operation.
type accessor[T Primitive] interface {
	Size() int
	Get(index int) (T, error)
	Set(index int, value T) (T, error)
	Insert(index int, value T) error
	RemoveAt(index int) (T, error)
	ModCount() int
	// checkForComodification reports edits made behind the accessor's back.
	checkForComodification() error
}

func newListIterator[T Primitive](l accessor[T], index int) (*listIterator[T], error) {
	if index < 0 || index > l.Size() {
		return nil, outOfBounds(index, l.Size())
	}
	return &listIterator[T]{
		list:             l,
		cursor:           index,
		lastRet:          -1,
		expectedModCount: l.ModCount(),
	}, nil
}

func subListOf[T Primitive](l accessor[T], from, to int) (*subList[T], error) {
	if from < 0 || to > l.Size() || from > to {
		return nil, rangeOutOfBounds(from, to, l.Size())
	}
	return &subList[T]{
		parent:           l,
		offset:           from,
		size:             to - from,
		expectedModCount: l.ModCount(),
	}, nil
}

// insertAll snapshots src first so that inserting a list into itself works.
func insertAll[T Primitive](l accessor[T], index int, src Collection[T]) (bool, error) {
	if index < 0 || index > l.Size() {
		return false, outOfBounds(index, l.Size())
	}
	values := ToArray(src, nil)
	for i, v := range values {
		if err := l.Insert(index+i, v); err != nil {
			return i > 0, err
		}
	}
	return len(values) > 0, nil
}

func indexOf[T Primitive](l accessor[T], value T) int {
	it, _ := newListIterator(l, 0)
	want := scalarOf(value)
	for it.HasNext() {
		i := it.NextIndex()
		v, err := it.Next()
		if err != nil {
			return -1
		}
		if scalarOf(v).equal(want) {
			return i
		}
	}
	return -1
}

func lastIndexOf[T Primitive](l accessor[T], value T) int {
	it, _ := newListIterator(l, l.Size())
	want := scalarOf(value)
	for it.HasPrevious() {
		i := it.PreviousIndex()
		v, err := it.Previous()
		if err != nil {
			return -1
		}
		if scalarOf(v).equal(want) {
			return i
		}
	}
	return -1
}

// values stops as soon as Get fails, which for a stale sub-list is the
// first element.
func values[T Primitive](l accessor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.Size(); i++ {
			v, err := l.Get(i)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

func all[T Primitive](l accessor[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.Size(); i++ {
			v, err := l.Get(i)
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}

func backward[T Primitive](l accessor[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := l.Size() - 1; i >= 0; i-- {
			v, err := l.Get(i)
			if err != nil || !yield(i, v) {
				return
			}
		}
	}
}

// ListEqual reports whether a and b hold pairwise equal elements in the same
// order. Unlike Equal it does not require the same implementation.
func ListEqual[T Primitive](a, b List[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}
	return sameElements(a.Iterator(), b.Iterator())
}

// ListHash is the conventional sequence hash (seed 1, multiplier 31).
func ListHash[T Primitive](l List[T]) int32 {
	h := int32(listHashSeed)
	for v := range l.Values() {
		h = listHashMultiplier*h + ElementHash(v)
	}
	return h
}

func format[T Primitive](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(FormatElement(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
