// Package cartesian: core types for extents and iteration bounds.

package cartesian

import (
	"fmt"
	"math"
	"math/bits"
)

// Extent is the per-axis size vector of a row-major N-dimensional array.
// Axis 0 is the slowest-varying, axis N-1 the fastest-varying. A valid
// Extent has at least one axis and only positive sizes; a zero-size axis
// describes an empty coordinate space (no valid index exists under it).
type Extent []int

// Bounds is a per-axis list of [lower, upper) pairs defining an offset
// coordinate box for CartesianIndicesFromBounds. Each pair must satisfy
// lower < upper.
type Bounds [][2]int

// Validate reports whether e is a well-formed extent: at least one axis,
// every axis strictly positive. Returns ErrEmptyExtent or a wrapped
// ErrNonPositiveAxis naming the offending axis.
// Complexity: O(N).
func (e Extent) Validate() error {
	if len(e) == 0 {
		return ErrEmptyExtent
	}
	for i, d := range e {
		if d <= 0 {
			return fmt.Errorf("axis %d has size %d: %w", i, d, ErrNonPositiveAxis)
		}
	}

	return nil
}

// Count returns the total number of elements addressed by e, i.e. the
// product of its sizes. A zero-size axis yields 0. Returns ErrOverflow
// if the product exceeds the int range and a wrapped ErrNonPositiveAxis
// for negative sizes.
// Complexity: O(N).
func (e Extent) Count() (int, error) {
	n := 1
	for i, d := range e {
		if d < 0 {
			return 0, fmt.Errorf("axis %d has size %d: %w", i, d, ErrNonPositiveAxis)
		}
		hi, lo := bits.Mul64(uint64(n), uint64(d))
		if hi != 0 || lo > math.MaxInt {
			return 0, ErrOverflow
		}
		n = int(lo)
	}

	return n, nil
}

// Strides derives the row-major stride vector of e:
// stride[N-1] = 1, stride[i] = stride[i+1] * e[i+1]. The stride of an
// axis is how many linear positions one step along that axis advances.
// No validation is performed beyond what Extent guarantees; callers who
// need overflow safety should consult Count first.
// Complexity: O(N) time and memory.
func (e Extent) Strides() []int {
	out := make([]int, len(e))
	_ = e.StridesInto(out) // length always matches here

	return out
}

// StridesInto writes the row-major stride vector of e into out, for
// callers reusing a buffer across extents. Returns a wrapped
// ErrLengthMismatch if len(out) != len(e).
// Complexity: O(N).
func (e Extent) StridesInto(out []int) error {
	if len(out) != len(e) {
		return fmt.Errorf("stride buffer has %d axes, extent has %d: %w", len(out), len(e), ErrLengthMismatch)
	}
	if len(e) == 0 {
		return nil
	}
	out[len(e)-1] = 1
	for i := len(e) - 2; i >= 0; i-- {
		out[i] = out[i+1] * e[i+1]
	}

	return nil
}
