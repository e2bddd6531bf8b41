package lists

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Primitive is the set of element types a list can hold: booleans, every
// integer kind and both float widths, including named types built on them.
type Primitive interface {
	~bool | constraints.Integer | constraints.Float
}

// Iterator is a forward, non-restartable cursor over a collection.
type Iterator[T Primitive] interface {
	// HasNext reports whether Next would return an element
	HasNext() bool

	// Next returns the next element and advances the cursor
	// Returns ErrNoSuchElement when exhausted
	Next() (T, error)

	// Remove removes the element last returned by Next
	// Returns ErrIllegalState if Next has not been called since the last Remove
	Remove() error
}

// ListIterator is a bidirectional, fail-fast cursor over a List.
// Every moving or mutating method returns ErrConcurrentModification as soon
// as the backing list was structurally changed by anything other than this
// iterator, before any other validation takes place.
type ListIterator[T Primitive] interface {
	Iterator[T]

	// HasPrevious reports whether Previous would return an element
	HasPrevious() bool

	// Previous returns the previous element and moves the cursor back
	Previous() (T, error)

	// NextIndex returns the index of the element Next would return
	NextIndex() int

	// PreviousIndex returns the index of the element Previous would return, -1 at the start
	PreviousIndex() int

	// Set replaces the element last returned by Next or Previous
	Set(value T) error

	// Add inserts value immediately before the cursor
	// A following Previous returns value
	Add(value T) error
}

// Collection is the minimal contract every container satisfies.
// The package level functions (AddAll, Clear, Contains, RemoveAll, ...) are
// derived purely from these three methods.
type Collection[T Primitive] interface {
	// Iterator returns a fresh forward cursor
	Iterator() Iterator[T]

	// Size returns the current number of elements
	Size() int

	// Add inserts value, reporting whether the collection changed
	Add(value T) (bool, error)
}

// List defines an ordered, index-addressable sequence of primitive values.
type List[T Primitive] interface {
	Collection[T]

	// -------------------------------------------------------
	// Indexed Access
	// -------------------------------------------------------

	// Get retrieves the element at index
	// Returns ErrIndexOutOfBounds if index < 0 or index >= Size()
	Get(index int) (T, error)

	// Set replaces the element at index and returns the previous value
	// Set is not a structural modification
	Set(index int, value T) (T, error)

	// Insert inserts value before index, shifting the tail right
	// Returns ErrIndexOutOfBounds if index < 0 or index > Size()
	Insert(index int, value T) error

	// RemoveAt removes and returns the element at index, shifting the tail left
	RemoveAt(index int) (T, error)

	// ModCount returns the structural modification counter
	ModCount() int

	// -------------------------------------------------------
	// Bulk Operations
	// -------------------------------------------------------

	AddAll(src Collection[T]) (bool, error)
	InsertAll(index int, src Collection[T]) (bool, error)
	RemoveElement(value T) (bool, error)
	RemoveAll(other Collection[T]) (bool, error)
	RetainAll(other Collection[T]) (bool, error)
	Clear() error

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	IsEmpty() bool
	Contains(value T) bool
	ContainsAll(other Collection[T]) bool

	// IndexOf finds the first occurrence of value, -1 if absent
	IndexOf(value T) int

	// LastIndexOf finds the last occurrence of value, -1 if absent
	LastIndexOf(value T) int

	// ToArray copies the elements into buf when it is large enough,
	// otherwise into a freshly allocated slice
	ToArray(buf []T) []T

	// -------------------------------------------------------
	// Views & Iteration
	// -------------------------------------------------------

	// ListIterator returns a fail-fast iterator positioned before index
	// Returns ErrIndexOutOfBounds if index < 0 or index > Size()
	ListIterator(index int) (ListIterator[T], error)

	// SubList returns a live view of [from, to)
	SubList(from, to int) (List[T], error)

	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Backward() iter.Seq2[int, T]

	// -------------------------------------------------------
	// Identity
	// -------------------------------------------------------

	Equal(other List[T]) bool
	Hash() int32
	Compare(other Collection[T]) int
	String() string
}
