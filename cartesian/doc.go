// Package cartesian converts between linear and cartesian indices of a
// row-major N-dimensional extent and enumerates all coordinates of such
// an extent.
//
// What:
//
//   - Extent describes the per-axis sizes of a conceptual N-dimensional
//     array stored row-major (last axis varies fastest); it derives the
//     stride vector and the total element count.
//   - CartToLin / LinToCart map between a per-axis coordinate and its
//     position in flat storage, validating lengths, axis ranges, and
//     arithmetic overflow. LinToCartInto writes into a caller buffer.
//   - ...Unchecked twins skip all validation for callers on a hot path
//     who already guarantee valid inputs. They are pure arithmetic:
//     garbage in produces a well-defined but meaningless number out,
//     never a memory fault.
//   - CartesianIndices walks every coordinate of an extent — or of an
//     offset box given as per-axis [lower, upper) bounds — in row-major
//     order, via an explicit carry cursor with a terminal exhausted
//     state.
//
// Why:
//
//   - Flat buffers: address element (i,j,k) of a tensor stored in one
//     slice without materializing nested slices.
//   - Chunked stores: enumerate chunk coordinates of an N-d array in
//     the exact order of their linear keys.
//   - Windowed scans: iterate a sub-box of a larger grid via bounds.
//
// The defining property tying the pieces together: iterating
// NewCartesianIndices(dims) and feeding each coordinate to CartToLin
// yields exactly 0, 1, …, product(dims)-1 in order.
//
// Complexity:
//
//   - Every conversion and every iterator advance is O(N) time, with N
//     the number of axes; the only allocations are the result slices of
//     the non-Into variants.
//
// Errors:
//
//   - ErrEmptyExtent: extent has no axes.
//   - ErrNonPositiveAxis: extent has an axis of size ≤ 0.
//   - ErrLengthMismatch: index or output buffer length ≠ axis count.
//   - ErrAxisOutOfRange: a coordinate component falls outside its axis.
//   - ErrLinearOutOfRange: a linear index ≥ product of sizes.
//   - ErrInvalidBounds: a [lower, upper) pair is not increasing.
//   - ErrOverflow: product of sizes exceeds the int range.
package cartesian
