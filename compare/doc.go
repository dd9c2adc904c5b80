// Package compare formats failed chained ordering comparisons into
// human-readable error messages.
//
// What:
//
//   - Check2 / Check3 evaluate a two- or three-value comparison chain
//     (a < b, or a < b <= c) and return nil when it holds, otherwise an
//     *Error carrying every operand and operator involved.
//   - Value wraps an operand with an optional variable name; named
//     operands render as "x (value: 1)" inside the message.
//   - Operator covers <, <=, ==, >= and >; Holds evaluates a single
//     comparison for any ordered type.
//
// Why:
//
//   - Guard clauses: "`lower (value: 3) < upper (value: 1)` is false"
//     tells the caller what went wrong without hand-written messages.
//   - Range checks: Check3 expresses 0 < x <= limit in one call.
//
// The resulting message always has the shape
//
//	`<first> <op> <second>` is false
//	`<first> <op> <second> <op> <third>` is false
//
// with each operand rendered either as its bare value or as
// "name (value: v)" when a name was attached.
//
// This package is self-contained: it neither imports nor is imported by
// any other package in this module.
package compare
