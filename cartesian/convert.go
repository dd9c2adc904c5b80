// Package cartesian: linear ↔ cartesian index conversion.
//
// Each direction has one unchecked arithmetic core; the checked public
// functions validate and then delegate to it, so both flavors compute
// byte-for-byte the same result on valid inputs.

package cartesian

import "fmt"

// cartToLin accumulates Σ index[i]·stride[i] right to left, folding the
// stride recurrence into the walk so no stride vector is materialized.
func cartToLin(index, dims []int) int {
	lin, stride := 0, 1
	for i := len(dims) - 1; i >= 0; i-- {
		lin += index[i] * stride
		stride *= dims[i]
	}

	return lin
}

// linToCart peels axes right to left: out[i] = lin mod dims[i], then
// divides the axis out — equivalent to (lin / stride[i]) mod dims[i].
// Axis 0 takes the remaining quotient without reduction, so an
// out-of-range lin surfaces as an out-of-range first component instead
// of wrapping around to a plausible-looking coordinate.
func linToCart(lin int, dims, out []int) {
	for i := len(dims) - 1; i > 0; i-- {
		out[i] = lin % dims[i]
		lin /= dims[i]
	}
	if len(dims) > 0 {
		out[0] = lin
	}
}

// CartToLin converts the cartesian coordinate index under the extent
// dims to its row-major linear position.
// Returns a wrapped ErrLengthMismatch when len(index) != len(dims), a
// wrapped ErrAxisOutOfRange naming the first axis whose component falls
// outside [0, dims[i]), or ErrOverflow when the extent product is not
// representable. A zero-size axis admits no valid coordinate, so any
// index against it fails with ErrAxisOutOfRange.
// Complexity: O(N).
func CartToLin(index, dims []int) (int, error) {
	if len(index) != len(dims) {
		return 0, fmt.Errorf("index has %d axes, extent has %d: %w", len(index), len(dims), ErrLengthMismatch)
	}
	if _, err := Extent(dims).Count(); err != nil {
		return 0, err
	}
	for i, v := range index {
		if v < 0 || v >= dims[i] {
			return 0, fmt.Errorf("axis %d: coordinate %d outside [0,%d): %w", i, v, dims[i], ErrAxisOutOfRange)
		}
	}

	return cartToLin(index, dims), nil
}

// CartToLinUnchecked is CartToLin without any validation, for callers
// who have already validated or who accept the consequences: if index
// is out of range for dims, the result is defined by the stride
// arithmetic alone and does not correspond to a valid position. The
// lengths of index and dims must still match; this is the caller's
// obligation, not checked here.
// Complexity: O(N).
func CartToLinUnchecked(index, dims []int) int {
	return cartToLin(index, dims)
}

// LinToCart converts the row-major linear position lin under the extent
// dims to a freshly allocated cartesian coordinate.
// Returns a wrapped ErrLinearOutOfRange when lin falls outside
// [0, product(dims)) — in particular, always, when some axis has size
// zero — or ErrOverflow when the product is not representable.
// Complexity: O(N) time and memory.
func LinToCart(lin int, dims []int) ([]int, error) {
	out := make([]int, len(dims))
	if err := LinToCartInto(lin, dims, out); err != nil {
		return nil, err
	}

	return out, nil
}

// LinToCartUnchecked is LinToCart without the range check: an
// out-of-range lin yields a coordinate that does not satisfy the
// validity invariant, by design. dims must be a valid extent (all axes
// positive), otherwise the division underneath is undefined.
// Complexity: O(N) time and memory.
func LinToCartUnchecked(lin int, dims []int) []int {
	out := make([]int, len(dims))
	linToCart(lin, dims, out)

	return out
}

// LinToCartInto is LinToCart writing element-by-element into the
// caller-provided buffer out, for use when the axis count is only known
// at runtime or when allocation must be avoided. In addition to the
// LinToCart checks it returns a wrapped ErrLengthMismatch when
// len(out) != len(dims). On error, out is left untouched.
// Complexity: O(N).
func LinToCartInto(lin int, dims, out []int) error {
	if len(out) != len(dims) {
		return fmt.Errorf("output buffer has %d axes, extent has %d: %w", len(out), len(dims), ErrLengthMismatch)
	}
	total, err := Extent(dims).Count()
	if err != nil {
		return err
	}
	if lin < 0 || lin >= total {
		return fmt.Errorf("linear index %d outside [0,%d): %w", lin, total, ErrLinearOutOfRange)
	}
	linToCart(lin, dims, out)

	return nil
}

// LinToCartIntoUnchecked is LinToCartInto without any validation; the
// caller guarantees len(out) == len(dims) and a valid extent.
// Complexity: O(N).
func LinToCartIntoUnchecked(lin int, dims, out []int) {
	linToCart(lin, dims, out)
}
