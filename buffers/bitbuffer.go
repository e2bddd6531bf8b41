package buffers

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"primkit/lists"
)

// BitBuffer packs booleans one per bit. It grows with the same policies
// as Buffer, measured in bits.
type BitBuffer struct {
	bits       *bitset.BitSet
	n          int
	policy     Policy
	expansions int
}

func NewBitBuffer(initialCapacity int, opts ...Option) *BitBuffer {
	o := buildOptions(opts)
	return &BitBuffer{
		bits:   bitset.New(uint(max(initialCapacity, 0))),
		policy: o.policy,
	}
}

func (b *BitBuffer) Ensure(n int) {
	required := b.n + n
	c := int(b.bits.Len())
	if required <= c {
		return
	}
	newCap := max(b.policy.Grow(c, required), required)
	grown := bitset.New(uint(newCap))
	b.bits.Copy(grown)
	b.bits = grown
	b.expansions++
}

func (b *BitBuffer) Append(values ...bool) {
	b.Ensure(len(values))
	for _, v := range values {
		b.bits.SetTo(uint(b.n), v)
		b.n++
	}
}

func (b *BitBuffer) At(index int) (bool, error) {
	if index < 0 || index >= b.n {
		return false, errors.Wrapf(lists.ErrIndexOutOfBounds, "index %d, length %d", index, b.n)
	}
	return b.bits.Test(uint(index)), nil
}

func (b *BitBuffer) SetAt(index int, value bool) error {
	if index < 0 || index >= b.n {
		return errors.Wrapf(lists.ErrIndexOutOfBounds, "index %d, length %d", index, b.n)
	}
	b.bits.SetTo(uint(index), value)
	return nil
}

// Count returns the number of true values.
func (b *BitBuffer) Count() int {
	return int(b.bits.Count())
}

func (b *BitBuffer) Reset() {
	b.bits.ClearAll()
	b.n = 0
}

func (b *BitBuffer) Len() int {
	return b.n
}

func (b *BitBuffer) Cap() int {
	return int(b.bits.Len())
}

func (b *BitBuffer) Expansions() int {
	return b.expansions
}

func (b *BitBuffer) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(b.bits.Test(uint(i))) {
				return
			}
		}
	}
}

func (b *BitBuffer) Bools() []bool {
	out := make([]bool, b.n)
	for i, ok := b.bits.NextSet(0); ok && int(i) < b.n; i, ok = b.bits.NextSet(i + 1) {
		out[i] = true
	}
	return out
}

func (b *BitBuffer) ToList() *lists.ArrayList[bool] {
	return lists.ArrayListOf(b.Bools()...)
}
