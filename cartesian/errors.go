// Package cartesian: sentinel error set.
// This file defines ONLY package-level sentinel errors. All checked
// functions return these sentinels (wrapped with axis/value context via
// fmt.Errorf("...: %w", ...)) and tests match them with errors.Is.
// Unchecked functions never validate and never fail, by contract.

package cartesian

import "errors"

var (
	// ErrEmptyExtent indicates an extent with no axes where at least one
	// is required.
	ErrEmptyExtent = errors.New("cartesian: extent must have at least one axis")

	// ErrNonPositiveAxis indicates an extent axis of size zero or less.
	ErrNonPositiveAxis = errors.New("cartesian: extent axes must be positive")

	// ErrLengthMismatch indicates a cartesian index or output buffer whose
	// length differs from the extent's axis count.
	ErrLengthMismatch = errors.New("cartesian: length does not match axis count")

	// ErrAxisOutOfRange indicates a cartesian coordinate component outside
	// [0, size) for its axis. Wrapping adds the axis, value, and size.
	ErrAxisOutOfRange = errors.New("cartesian: coordinate outside axis range")

	// ErrLinearOutOfRange indicates a linear index outside
	// [0, product(sizes)). Wrapping adds the value and the limit.
	ErrLinearOutOfRange = errors.New("cartesian: linear index outside extent")

	// ErrInvalidBounds indicates a per-axis [lower, upper) pair with
	// lower >= upper. Wrapping adds the offending axis.
	ErrInvalidBounds = errors.New("cartesian: bounds must be increasing")

	// ErrOverflow indicates the product of extent sizes (and therefore a
	// stride) exceeds the representable int range.
	ErrOverflow = errors.New("cartesian: extent product overflows int")
)
