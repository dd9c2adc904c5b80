// File: compare/example_test.go
package compare_test

import (
	"fmt"

	"github.com/katalvlaran/ndindex/compare"
)

// ExampleCheck2 guards a subtraction that must not underflow: the error
// message names the failed comparison.
func ExampleCheck2() {
	checkedSub := func(first, second int) (int, error) {
		if err := compare.Check2(compare.Val(first), compare.GreaterOrEqual, compare.Val(second)); err != nil {
			return 0, err
		}
		return first - second, nil
	}

	diff, _ := checkedSub(2, 1)
	fmt.Println(diff)

	_, err := checkedSub(1, 2)
	fmt.Println(err)

	// Output:
	// 1
	// `1 >= 2` is false
}

// ExampleCheck3 expresses a half-open range check 0 < arg <= 1 in one
// call, with the argument named in the message.
func ExampleCheck3() {
	arg := 2.0
	err := compare.Check3(
		compare.Val(0.0), compare.Lesser,
		compare.Named("arg", arg), compare.LesserOrEqual,
		compare.Val(1.0),
	)
	fmt.Println(err)

	// Output:
	// `0 < arg (value: 2) <= 1` is false
}
