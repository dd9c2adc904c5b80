package compare

import (
	"cmp"
	"fmt"
)

// Operator names one ordering relation between two values.
type Operator int

const (
	// Lesser is the strict < relation.
	Lesser Operator = iota
	// LesserOrEqual is the <= relation.
	LesserOrEqual
	// Equal is the == relation.
	Equal
	// GreaterOrEqual is the >= relation.
	GreaterOrEqual
	// Greater is the strict > relation.
	Greater
)

// String renders the operator the way it appears in source code.
func (op Operator) String() string {
	switch op {
	case Lesser:
		return "<"
	case LesserOrEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Holds reports whether `a op b` is true. An unknown operator holds for
// nothing.
func Holds[T cmp.Ordered](op Operator, a, b T) bool {
	switch op {
	case Lesser:
		return a < b
	case LesserOrEqual:
		return a <= b
	case Equal:
		return a == b
	case GreaterOrEqual:
		return a >= b
	case Greater:
		return a > b
	default:
		return false
	}
}

// Value is one operand of a comparison, optionally tagged with the name
// of the variable it came from. Named operands render as
// "name (value: v)", anonymous ones as the bare value.
type Value[T cmp.Ordered] struct {
	Value T
	Name  string
}

// Val wraps an anonymous operand.
func Val[T cmp.Ordered](v T) Value[T] {
	return Value[T]{Value: v}
}

// Named wraps an operand together with its variable name.
func Named[T cmp.Ordered](name string, v T) Value[T] {
	return Value[T]{Value: v, Name: name}
}

// String renders the operand for use inside an Error message.
func (v Value[T]) String() string {
	if v.Name != "" {
		return fmt.Sprintf("%s (value: %v)", v.Name, v.Value)
	}

	return fmt.Sprintf("%v", v.Value)
}

// Error records a comparison chain that evaluated to false. The first
// and second operands and the operator between them are always present;
// Third is non-nil only for three-value chains, joined by SecondOp.
//
// The rendered message quotes the whole chain even when only its second
// comparison failed, since the chain is what the caller asserted.
type Error[T cmp.Ordered] struct {
	First    Value[T]
	FirstOp  Operator
	Second   Value[T]
	SecondOp Operator
	Third    *Value[T]
}

// Error renders the failed chain, e.g. "`x (value: 1) > 2` is false".
func (e *Error[T]) Error() string {
	if e.Third != nil {
		return fmt.Sprintf("`%s %s %s %s %s` is false", e.First, e.FirstOp, e.Second, e.SecondOp, *e.Third)
	}

	return fmt.Sprintf("`%s %s %s` is false", e.First, e.FirstOp, e.Second)
}

// Check2 evaluates `first op second` and returns nil when it holds,
// otherwise an *Error capturing both operands. Designed for early
// returns:
//
//	if err := compare.Check2(compare.Named("n", n), compare.Greater, compare.Val(0)); err != nil {
//		return err
//	}
func Check2[T cmp.Ordered](first Value[T], op Operator, second Value[T]) error {
	if Holds(op, first.Value, second.Value) {
		return nil
	}

	return &Error[T]{First: first, FirstOp: op, Second: second}
}

// Check3 evaluates the chain `first opFS second opST third` (both links
// must hold, as in 0 < x <= limit) and returns nil on success,
// otherwise an *Error capturing the whole chain.
func Check3[T cmp.Ordered](first Value[T], opFS Operator, second Value[T], opST Operator, third Value[T]) error {
	if Holds(opFS, first.Value, second.Value) && Holds(opST, second.Value, third.Value) {
		return nil
	}

	return &Error[T]{First: first, FirstOp: opFS, Second: second, SecondOp: opST, Third: &third}
}
