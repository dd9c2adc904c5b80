// Package ndindex bundles two small, unrelated utility libraries:
// coordinate arithmetic for N-dimensional arrays, and human-readable
// comparison errors.
//
// 🚀 What is ndindex?
//
//	A pure-Go toolbox with two independent subpackages:
//		• cartesian/ — convert between linear (flat) and cartesian
//		  (per-axis) indices of a row-major N-dimensional extent, in
//		  checked and unchecked flavors, and enumerate every coordinate
//		  of an extent (optionally offset by per-axis bounds) with
//		  CartesianIndices.
//		• compare/   — turn a failed chained ordering comparison
//		  (a < b <= c) into a readable error message carrying the
//		  values and, optionally, the variable names involved.
//
// ✨ Why choose ndindex?
//
//   - Predictable – every checked function returns a sentinel error,
//     every unchecked function is pure arithmetic, nothing panics on
//     user input
//   - Allocation-aware – ...Into variants write into caller buffers
//     for hot loops
//   - Pure Go – no cgo, no hidden deps
//
// The two subpackages share nothing; import whichever you need:
//
//	go get github.com/katalvlaran/ndindex/cartesian
//	go get github.com/katalvlaran/ndindex/compare
//
// Quick taste (cartesian):
//
//	dims := []int{2, 3}
//	lin, _ := cartesian.CartToLin([]int{1, 2}, dims) // 5
//	idx, _ := cartesian.LinToCart(3, dims)           // [1 0]
//
// Dive into each subpackage's doc.go for the full contract.
package ndindex
