package lists_test

import (
	"errors"
	"slices"
	"testing"

	"primkit/lists"
)

func TestListIterator_Traversal(t *testing.T) {
	l := lists.ArrayListOf[int64](1, 2, 3, 4)

	t.Run("Forward", func(t *testing.T) {
		it, err := l.ListIterator(0)
		if err != nil {
			t.Fatalf("ListIterator(0) failed: %v", err)
		}
		var got []int64
		for it.HasNext() {
			if it.NextIndex() != len(got) {
				t.Errorf("NextIndex() = %d, want %d", it.NextIndex(), len(got))
			}
			v, err := it.Next()
			if err != nil {
				t.Fatalf("Next() failed: %v", err)
			}
			got = append(got, v)
		}
		if !slices.Equal(got, l.ToSlice()) {
			t.Errorf("forward traversal = %v, want %v", got, l.ToSlice())
		}
		if _, err := it.Next(); !errors.Is(err, lists.ErrNoSuchElement) {
			t.Errorf("Next() past end error = %v, want ErrNoSuchElement", err)
		}
	})

	t.Run("Backward", func(t *testing.T) {
		it, _ := l.ListIterator(l.Size())
		var got []int64
		for it.HasPrevious() {
			if it.PreviousIndex() != l.Size()-1-len(got) {
				t.Errorf("PreviousIndex() = %d", it.PreviousIndex())
			}
			v, err := it.Previous()
			if err != nil {
				t.Fatalf("Previous() failed: %v", err)
			}
			got = append(got, v)
		}
		want := l.ToSlice()
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Errorf("backward traversal = %v, want %v", got, want)
		}
		if it.PreviousIndex() != -1 {
			t.Errorf("PreviousIndex() at start = %d, want -1", it.PreviousIndex())
		}
		if _, err := it.Previous(); !errors.Is(err, lists.ErrNoSuchElement) {
			t.Errorf("Previous() before start error = %v, want ErrNoSuchElement", err)
		}
	})

	t.Run("Zigzag", func(t *testing.T) {
		it, _ := l.ListIterator(1)
		a, _ := it.Next()
		b, _ := it.Previous()
		if a != 2 || b != 2 {
			t.Errorf("Next then Previous = %d, %d; want 2, 2", a, b)
		}
	})
}

func TestListIterator_Remove(t *testing.T) {
	t.Run("AfterNext", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2, 3, 4)
		it, _ := l.ListIterator(0)
		for it.HasNext() {
			v, _ := it.Next()
			if v%2 == 0 {
				if err := it.Remove(); err != nil {
					t.Fatalf("Remove() failed: %v", err)
				}
			}
		}
		if got := l.ToSlice(); !slices.Equal(got, []int{1, 3}) {
			t.Errorf("after removing evens: %v", got)
		}
	})

	t.Run("AfterPrevious", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2, 3)
		it, _ := l.ListIterator(2)
		it.Previous() // 2 at index 1
		if err := it.Remove(); err != nil {
			t.Fatalf("Remove() failed: %v", err)
		}
		if it.NextIndex() != 1 {
			t.Errorf("NextIndex() after Remove = %d, want 1", it.NextIndex())
		}
		if v, _ := it.Next(); v != 3 {
			t.Errorf("Next() after Remove = %d, want 3", v)
		}
		if got := l.ToSlice(); !slices.Equal(got, []int{1, 3}) {
			t.Errorf("after Remove: %v", got)
		}
	})

	t.Run("IllegalState", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2)
		it, _ := l.ListIterator(0)
		if err := it.Remove(); !errors.Is(err, lists.ErrIllegalState) {
			t.Errorf("Remove() before Next error = %v, want ErrIllegalState", err)
		}
		it.Next()
		if err := it.Remove(); err != nil {
			t.Fatalf("Remove() failed: %v", err)
		}
		if err := it.Remove(); !errors.Is(err, lists.ErrIllegalState) {
			t.Errorf("second Remove() error = %v, want ErrIllegalState", err)
		}
		if err := it.Set(5); !errors.Is(err, lists.ErrIllegalState) {
			t.Errorf("Set() after Remove error = %v, want ErrIllegalState", err)
		}
	})
}

func TestListIterator_AddSet(t *testing.T) {
	l := lists.ArrayListOf(1, 3)
	it, _ := l.ListIterator(1)
	if err := it.Add(2); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if it.NextIndex() != 2 {
		t.Errorf("NextIndex() after Add = %d, want 2", it.NextIndex())
	}
	if v, _ := it.Previous(); v != 2 {
		t.Errorf("Previous() after Add = %d, want 2", v)
	}
	if err := it.Set(20); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got := l.ToSlice(); !slices.Equal(got, []int{1, 20, 3}) {
		t.Errorf("after Add and Set: %v", got)
	}
	// Add resets the last returned element
	it.Add(15)
	if err := it.Set(0); !errors.Is(err, lists.ErrIllegalState) {
		t.Errorf("Set() after Add error = %v, want ErrIllegalState", err)
	}
	if err := it.Remove(); !errors.Is(err, lists.ErrIllegalState) {
		t.Errorf("Remove() after Add error = %v, want ErrIllegalState", err)
	}
}

func TestListIterator_FailFast(t *testing.T) {
	t.Run("DetectsForeignEdit", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2, 3)
		it, _ := l.ListIterator(0)
		it.Next()
		l.Add(4)

		if _, err := it.Next(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Next() error = %v, want ErrConcurrentModification", err)
		}
		if _, err := it.Previous(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Previous() error = %v, want ErrConcurrentModification", err)
		}
		if err := it.Remove(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Remove() error = %v, want ErrConcurrentModification", err)
		}
		if err := it.Set(9); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Set() error = %v, want ErrConcurrentModification", err)
		}
		if err := it.Add(9); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Add() error = %v, want ErrConcurrentModification", err)
		}
		if l.Size() != 4 {
			t.Errorf("failed iterator calls modified the list: %v", l)
		}
	})

	t.Run("CheckedBeforeOtherValidation", func(t *testing.T) {
		l := lists.ArrayListOf(1)
		it, _ := l.ListIterator(1) // at the end, nothing returned yet
		l.RemoveAt(0)

		// each of these would otherwise fail with a different error
		if _, err := it.Next(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Next() at end error = %v, want ErrConcurrentModification", err)
		}
		if err := it.Remove(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Remove() without Next error = %v, want ErrConcurrentModification", err)
		}
		if err := it.Set(1); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("Set() without Next error = %v, want ErrConcurrentModification", err)
		}
	})

	t.Run("SetIsNotStructural", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2)
		it, _ := l.ListIterator(0)
		l.Set(1, 5)
		if v, err := it.Next(); err != nil || v != 1 {
			t.Errorf("Next() after foreign Set = %d, %v; want 1, nil", v, err)
		}
	})

	t.Run("OwnEditsResync", func(t *testing.T) {
		l := lists.ArrayListOf(1, 2, 3)
		it, _ := l.ListIterator(0)
		it.Next()
		it.Remove()
		it.Add(7)
		if v, err := it.Next(); err != nil || v != 2 {
			t.Errorf("Next() after own edits = %d, %v; want 2, nil", v, err)
		}
		// a second iterator is invalidated by the first one's edits
		other := l.Iterator()
		it.Remove()
		if _, err := other.Next(); !errors.Is(err, lists.ErrConcurrentModification) {
			t.Errorf("other iterator error = %v, want ErrConcurrentModification", err)
		}
	})
}

// End-to-end: build, insert, search, walk backwards, print.
func TestListIterator_Scenario(t *testing.T) {
	l := lists.NewArrayList[int32](0)
	l.Add(10)
	l.Add(20)
	if err := l.Insert(1, 15); err != nil {
		t.Fatalf("Insert(1, 15) failed: %v", err)
	}
	if got := l.ToSlice(); !slices.Equal(got, []int32{10, 15, 20}) {
		t.Fatalf("list = %v, want [10 15 20]", got)
	}
	if i := l.IndexOf(15); i != 1 {
		t.Errorf("IndexOf(15) = %d, want 1", i)
	}

	it, err := l.ListIterator(3)
	if err != nil {
		t.Fatalf("ListIterator(3) failed: %v", err)
	}
	for _, want := range []int32{20, 15, 10} {
		if v, err := it.Previous(); err != nil || v != want {
			t.Errorf("Previous() = %d, %v; want %d", v, err, want)
		}
	}
	if it.HasPrevious() {
		t.Error("HasPrevious() should be false at the start")
	}
	if s := l.String(); s != "[10,15,20]" {
		t.Errorf("String() = %q, want \"[10,15,20]\"", s)
	}
}
