// Package buffers provides auto-expanding primitive buffers whose growth is
// driven by a pluggable Policy.
package buffers

import (
	"iter"
	"slices"

	"github.com/pkg/errors"

	"primkit/lists"
)

type options struct {
	policy Policy
}

type Option func(*options)

// WithPolicy selects the expansion policy. The default is Doubling.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{policy: Doubling}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Buffer is an append-oriented primitive buffer.
type Buffer[T lists.Primitive] struct {
	data       []T
	policy     Policy
	expansions int
}

func New[T lists.Primitive](initialCapacity int, opts ...Option) *Buffer[T] {
	o := buildOptions(opts)
	return &Buffer[T]{
		data:   make([]T, 0, max(initialCapacity, 0)),
		policy: o.policy,
	}
}

// Ensure guarantees room for n more elements without reallocation.
func (b *Buffer[T]) Ensure(n int) {
	required := len(b.data) + n
	if required <= cap(b.data) {
		return
	}
	newCap := b.policy.Grow(cap(b.data), required)
	if newCap < required {
		newCap = required
	}
	grown := make([]T, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
	b.expansions++
}

func (b *Buffer[T]) Append(values ...T) {
	b.Ensure(len(values))
	b.data = append(b.data, values...)
}

func (b *Buffer[T]) At(index int) (T, error) {
	if index < 0 || index >= len(b.data) {
		var zero T
		return zero, errors.Wrapf(lists.ErrIndexOutOfBounds, "index %d, length %d", index, len(b.data))
	}
	return b.data[index], nil
}

func (b *Buffer[T]) SetAt(index int, value T) error {
	if index < 0 || index >= len(b.data) {
		return errors.Wrapf(lists.ErrIndexOutOfBounds, "index %d, length %d", index, len(b.data))
	}
	b.data[index] = value
	return nil
}

// Truncate drops everything from n onwards, keeping the capacity.
func (b *Buffer[T]) Truncate(n int) error {
	if n < 0 || n > len(b.data) {
		return errors.Wrapf(lists.ErrIndexOutOfBounds, "truncate to %d, length %d", n, len(b.data))
	}
	b.data = b.data[:n]
	return nil
}

func (b *Buffer[T]) Reset() {
	b.data = b.data[:0]
}

func (b *Buffer[T]) Len() int {
	return len(b.data)
}

func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Expansions counts the reallocations performed so far.
func (b *Buffer[T]) Expansions() int {
	return b.expansions
}

// Slice returns the live contents. It is invalidated by the next expansion.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Copy returns an independent copy of the contents.
func (b *Buffer[T]) Copy() []T {
	return slices.Clone(b.data)
}

func (b *Buffer[T]) Values() iter.Seq[T] {
	return slices.Values(b.data)
}

// ToList copies the contents into a new ArrayList.
func (b *Buffer[T]) ToList() *lists.ArrayList[T] {
	return lists.ArrayListOf(b.data...)
}
