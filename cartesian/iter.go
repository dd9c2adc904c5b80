// Package cartesian: row-major coordinate enumeration.

package cartesian

import "fmt"

// CartesianIndices enumerates every coordinate of an extent — or of an
// offset box given by per-axis [lower, upper) bounds — in row-major
// order: the last axis varies fastest, so feeding each produced
// coordinate to CartToLin yields 0, 1, 2, … in strictly increasing
// order.
//
// The cursor advances in place; once the space is exhausted the
// iterator stays exhausted (there is no rewind — construct a new one).
// A single CartesianIndices is not safe for concurrent advancement.
type CartesianIndices struct {
	lower []int
	upper []int
	cur   []int
	done  bool
}

// NewCartesianIndices returns an iterator over all coordinates of the
// extent dims, starting at the all-zero coordinate. If any axis has
// size zero (or less) the coordinate space is empty and the iterator
// starts exhausted.
// Complexity: O(N) construction, O(N) per advance.
func NewCartesianIndices(dims []int) *CartesianIndices {
	lower := make([]int, len(dims))
	upper := make([]int, len(dims))
	copy(upper, dims)

	return newIndices(lower, upper)
}

// CartesianIndicesFromBounds returns an iterator over the box whose
// axis i ranges over [bounds[i][0], bounds[i][1]). Every pair must be
// strictly increasing; a violating axis is reported with a wrapped
// ErrInvalidBounds.
// Complexity: O(N) construction, O(N) per advance.
func CartesianIndicesFromBounds(bounds Bounds) (*CartesianIndices, error) {
	lower := make([]int, len(bounds))
	upper := make([]int, len(bounds))
	for i, p := range bounds {
		if p[0] >= p[1] {
			return nil, fmt.Errorf("axis %d: [%d,%d): %w", i, p[0], p[1], ErrInvalidBounds)
		}
		lower[i], upper[i] = p[0], p[1]
	}

	return newIndices(lower, upper), nil
}

// newIndices takes ownership of lower and upper. The iterator starts
// exhausted when any axis spans nothing.
func newIndices(lower, upper []int) *CartesianIndices {
	it := &CartesianIndices{
		lower: lower,
		upper: upper,
		cur:   make([]int, len(lower)),
	}
	copy(it.cur, lower)
	for i := range lower {
		if lower[i] >= upper[i] {
			it.done = true
			break
		}
	}

	return it
}

// Next returns a copy of the current coordinate and advances the
// cursor. The second result is false — and the coordinate nil — once
// the space is exhausted, and stays false forever after.
// Complexity: O(N), allocates the returned coordinate; use NextInto on
// hot paths.
func (it *CartesianIndices) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	out := make([]int, len(it.cur))
	copy(out, it.cur)
	it.advance()

	return out, true
}

// NextInto writes the current coordinate into out and advances the
// cursor, allocating nothing. Returns false — leaving out untouched —
// once exhausted or if len(out) differs from the axis count.
// Complexity: O(N).
func (it *CartesianIndices) NextInto(out []int) bool {
	if it.done || len(out) != len(it.cur) {
		return false
	}
	copy(out, it.cur)
	it.advance()

	return true
}

// advance increments the last axis and propagates the carry leftward:
// an axis reaching its upper bound resets to its lower bound and bumps
// the axis before it. A carry past axis 0 is the terminal transition.
func (it *CartesianIndices) advance() {
	for i := len(it.cur) - 1; i >= 0; i-- {
		it.cur[i]++
		if it.cur[i] < it.upper[i] {
			return
		}
		it.cur[i] = it.lower[i]
	}
	it.done = true
}

// Exhausted reports whether the iterator has produced every coordinate
// of its space. Once true it never becomes false again.
func (it *CartesianIndices) Exhausted() bool {
	return it.done
}

// Len returns the number of axes the iterator walks.
func (it *CartesianIndices) Len() int {
	return len(it.cur)
}
