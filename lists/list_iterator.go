package lists

import (
	"github.com/pkg/errors"
)

/*
listIterator is the fail-fast cursor shared by every random-access list.

	cursor           index of the element Next would return
	lastRet          index of the element last returned by Next/Previous, -1 if none
	expectedModCount snapshot of list.ModCount(), refreshed only by this iterator's own edits
*/
type listIterator[T Primitive] struct {
	list             accessor[T]
	cursor           int
	lastRet          int
	expectedModCount int
}

func (it *listIterator[T]) checkForComodification() error {
	if err := it.list.checkForComodification(); err != nil {
		return err
	}
	if actual := it.list.ModCount(); actual != it.expectedModCount {
		return concurrentModification(it.expectedModCount, actual)
	}
	return nil
}

func (it *listIterator[T]) HasNext() bool {
	return it.cursor < it.list.Size()
}

func (it *listIterator[T]) Next() (val T, err error) {
	if err = it.checkForComodification(); err != nil {
		return val, err
	}
	if !it.HasNext() {
		return val, errors.Wrapf(ErrNoSuchElement, "next at index %d", it.cursor)
	}
	if val, err = it.list.Get(it.cursor); err != nil {
		return val, err
	}
	it.lastRet = it.cursor
	it.cursor++
	return val, nil
}

func (it *listIterator[T]) HasPrevious() bool {
	return it.cursor > 0
}

func (it *listIterator[T]) Previous() (val T, err error) {
	if err = it.checkForComodification(); err != nil {
		return val, err
	}
	if !it.HasPrevious() {
		return val, errors.Wrap(ErrNoSuchElement, "previous at index 0")
	}
	i := it.cursor - 1
	if val, err = it.list.Get(i); err != nil {
		return val, err
	}
	it.lastRet = i
	it.cursor = i
	return val, nil
}

func (it *listIterator[T]) NextIndex() int {
	return it.cursor
}

func (it *listIterator[T]) PreviousIndex() int {
	return it.cursor - 1
}

// Remove removes the element last returned by Next or Previous.
// After Next the cursor moves back by one so it stays on the same successor;
// after Previous it is already in place.
func (it *listIterator[T]) Remove() error {
	if err := it.checkForComodification(); err != nil {
		return err
	}
	if it.lastRet < 0 {
		return errors.Wrap(ErrIllegalState, "remove without next or previous")
	}
	if _, err := it.list.RemoveAt(it.lastRet); err != nil {
		return err
	}
	if it.lastRet < it.cursor {
		it.cursor--
	}
	it.lastRet = -1
	it.expectedModCount = it.list.ModCount()
	return nil
}

func (it *listIterator[T]) Set(value T) error {
	if err := it.checkForComodification(); err != nil {
		return err
	}
	if it.lastRet < 0 {
		return errors.Wrap(ErrIllegalState, "set without next or previous")
	}
	if _, err := it.list.Set(it.lastRet, value); err != nil {
		return err
	}
	it.expectedModCount = it.list.ModCount()
	return nil
}

func (it *listIterator[T]) Add(value T) error {
	if err := it.checkForComodification(); err != nil {
		return err
	}
	if err := it.list.Insert(it.cursor, value); err != nil {
		return err
	}
	it.cursor++
	it.lastRet = -1
	it.expectedModCount = it.list.ModCount()
	return nil
}
