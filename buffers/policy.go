package buffers

import (
	"math/bits"
)

// Policy decides the new capacity when a buffer of capacity c must hold
// at least required elements. The result must be >= required.
type Policy interface {
	Grow(c, required int) int
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(c, required int) int

func (f PolicyFunc) Grow(c, required int) int {
	return f(c, required)
}

var (
	// Doubling rounds up to the next power of two.
	Doubling Policy = PolicyFunc(func(_, required int) int {
		if required <= 1 {
			return 1
		}
		return 1 << uint(bits.Len(uint(required-1)))
	})

	// Exact allocates precisely what is required.
	Exact Policy = PolicyFunc(func(_, required int) int {
		return required
	})
)

// Linear grows in fixed increments of step elements.
func Linear(step int) Policy {
	if step <= 0 {
		step = 1
	}
	return PolicyFunc(func(c, required int) int {
		if c >= required {
			return c
		}
		n := (required - c + step - 1) / step
		return c + n*step
	})
}

// Factor multiplies the capacity by f (at least 1.1) until it fits.
func Factor(f float64) Policy {
	f = max(f, 1.1)
	return PolicyFunc(func(c, required int) int {
		next := max(c, 1)
		for next < required {
			next = max(int(float64(next)*f), next+1)
		}
		return next
	})
}
