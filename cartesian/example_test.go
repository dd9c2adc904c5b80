// File: cartesian/example_test.go
package cartesian_test

import (
	"fmt"

	"github.com/katalvlaran/ndindex/cartesian"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CartToLin / LinToCart
////////////////////////////////////////////////////////////////////////////////

// ExampleCartToLin demonstrates addressing a flat buffer holding a 2×3
// grid: coordinate (1,2) lands at position 1*3 + 2 = 5.
//
// Complexity: O(N) per conversion.
func ExampleCartToLin() {
	dims := []int{2, 3}

	lin, err := cartesian.CartToLin([]int{1, 2}, dims)
	fmt.Println(lin, err)

	// Out-of-range coordinates are rejected, not wrapped:
	_, err = cartesian.CartToLin([]int{0, 3}, dims)
	fmt.Println(err)

	// Output:
	// 5 <nil>
	// axis 1: coordinate 3 outside [0,3): cartesian: coordinate outside axis range
}

// ExampleLinToCart recovers the per-axis coordinate of a flat position.
func ExampleLinToCart() {
	dims := []int{2, 3}

	idx, err := cartesian.LinToCart(3, dims)
	fmt.Println(idx, err)

	// Output:
	// [1 0] <nil>
}

////////////////////////////////////////////////////////////////////////////////
// Example: CartesianIndices
////////////////////////////////////////////////////////////////////////////////

// ExampleCartesianIndices walks every coordinate of a 2×3 extent in
// row-major order — the same order their linear positions increase.
func ExampleCartesianIndices() {
	it := cartesian.NewCartesianIndices([]int{2, 3})
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(idx)
	}

	// Output:
	// [0 0]
	// [0 1]
	// [0 2]
	// [1 0]
	// [1 1]
	// [1 2]
}

// ExampleCartesianIndicesFromBounds scans an offset window: axis 0 over
// [1,3), axis 1 over [2,5).
func ExampleCartesianIndicesFromBounds() {
	it, err := cartesian.CartesianIndicesFromBounds(cartesian.Bounds{{1, 3}, {2, 5}})
	if err != nil {
		fmt.Println(err)
		return
	}
	for {
		idx, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(idx)
	}

	// Output:
	// [1 2]
	// [1 3]
	// [1 4]
	// [2 2]
	// [2 3]
	// [2 4]
}

// ExampleExtent_Strides shows the stride vector of a 2×3×4 extent: one
// step along axis 0 skips a whole 3×4 plane.
func ExampleExtent_Strides() {
	fmt.Println(cartesian.Extent{2, 3, 4}.Strides())

	// Output:
	// [12 4 1]
}
