package lists

import (
	"iter"
)

// subList is a live window [offset, offset+size) onto a parent list.
// It owns no storage. Its own modCount lets iterators and nested views built
// on it detect edits made through it; expectedModCount tracks the parent so
// edits made anywhere else are detected too.
type subList[T Primitive] struct {
	parent           accessor[T]
	offset           int
	size             int
	modCount         int
	expectedModCount int
}

// checkForComodification validates the whole chain of views up to the root,
// so an edit to any ancestor is caught before bounds checks.
func (s *subList[T]) checkForComodification() error {
	if err := s.parent.checkForComodification(); err != nil {
		return err
	}
	if actual := s.parent.ModCount(); actual != s.expectedModCount {
		return concurrentModification(s.expectedModCount, actual)
	}
	return nil
}

func (s *subList[T]) Size() int {
	return s.size
}

func (s *subList[T]) IsEmpty() bool {
	return s.size == 0
}

func (s *subList[T]) ModCount() int {
	return s.modCount
}

func (s *subList[T]) Get(index int) (val T, err error) {
	if err = s.checkForComodification(); err != nil {
		return val, err
	}
	if index < 0 || index >= s.size {
		return val, outOfBounds(index, s.size)
	}
	return s.parent.Get(index + s.offset)
}

func (s *subList[T]) Set(index int, value T) (old T, err error) {
	if err = s.checkForComodification(); err != nil {
		return old, err
	}
	if index < 0 || index >= s.size {
		return old, outOfBounds(index, s.size)
	}
	return s.parent.Set(index+s.offset, value)
}

func (s *subList[T]) Insert(index int, value T) error {
	if err := s.checkForComodification(); err != nil {
		return err
	}
	if index < 0 || index > s.size {
		return outOfBounds(index, s.size)
	}
	if err := s.parent.Insert(index+s.offset, value); err != nil {
		return err
	}
	s.expectedModCount = s.parent.ModCount()
	s.size++
	s.modCount++
	return nil
}

func (s *subList[T]) RemoveAt(index int) (val T, err error) {
	if err = s.checkForComodification(); err != nil {
		return val, err
	}
	if index < 0 || index >= s.size {
		return val, outOfBounds(index, s.size)
	}
	if val, err = s.parent.RemoveAt(index + s.offset); err != nil {
		return val, err
	}
	s.expectedModCount = s.parent.ModCount()
	s.size--
	s.modCount++
	return val, nil
}

func (s *subList[T]) Add(value T) (bool, error) {
	if err := s.Insert(s.size, value); err != nil {
		return false, err
	}
	return true, nil
}

func (s *subList[T]) AddAll(src Collection[T]) (bool, error) {
	return insertAll[T](s, s.size, src)
}

func (s *subList[T]) InsertAll(index int, src Collection[T]) (bool, error) {
	if err := s.checkForComodification(); err != nil {
		return false, err
	}
	return insertAll[T](s, index, src)
}

func (s *subList[T]) RemoveElement(value T) (bool, error) {
	return RemoveElement[T](s, value)
}

func (s *subList[T]) RemoveAll(other Collection[T]) (bool, error) {
	return RemoveAll[T](s, other)
}

func (s *subList[T]) RetainAll(other Collection[T]) (bool, error) {
	return RetainAll[T](s, other)
}

func (s *subList[T]) Clear() error {
	return Clear[T](s)
}

func (s *subList[T]) Contains(value T) bool {
	return indexOf[T](s, value) >= 0
}

func (s *subList[T]) ContainsAll(other Collection[T]) bool {
	return ContainsAll[T](s, other)
}

func (s *subList[T]) IndexOf(value T) int {
	return indexOf[T](s, value)
}

func (s *subList[T]) LastIndexOf(value T) int {
	return lastIndexOf[T](s, value)
}

func (s *subList[T]) ToArray(buf []T) []T {
	return ToArray[T](s, buf)
}

func (s *subList[T]) Iterator() Iterator[T] {
	it, _ := newListIterator[T](s, 0)
	return it
}

func (s *subList[T]) ListIterator(index int) (ListIterator[T], error) {
	if err := s.checkForComodification(); err != nil {
		return nil, err
	}
	it, err := newListIterator[T](s, index)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *subList[T]) SubList(from, to int) (List[T], error) {
	if err := s.checkForComodification(); err != nil {
		return nil, err
	}
	sub, err := subListOf[T](s, from, to)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subList[T]) Values() iter.Seq[T] {
	return values[T](s)
}

func (s *subList[T]) All() iter.Seq2[int, T] {
	return all[T](s)
}

func (s *subList[T]) Backward() iter.Seq2[int, T] {
	return backward[T](s)
}

func (s *subList[T]) Equal(other List[T]) bool {
	return ListEqual[T](s, other)
}

func (s *subList[T]) Hash() int32 {
	return ListHash[T](s)
}

func (s *subList[T]) Compare(other Collection[T]) int {
	return Compare[T](s, other)
}

func (s *subList[T]) String() string {
	return format(s.Values())
}
