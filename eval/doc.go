// Package eval evaluates fully parenthesized infix arithmetic expressions
// using two stacks, one for operators and one for operand values.
//
// Grammar (tokens separated by whitespace):
//
//	expr   := "(" expr op expr ")" | number
//	op     := "+" | "-" | "*" | "/"
//	number := any token strconv.ParseFloat accepts
//
// Algorithm, per token:
//
//  1. "(" — structural only, ignored.
//  2. operator — pushed onto the operator stack; its left operand already
//     rests on the value stack.
//  3. number — parsed and pushed onto the value stack.
//  4. ")" — pops one operator and two values (right first, then left),
//     applies the operator, and pushes the result back.
//
// After the last token exactly one value may remain and no operators;
// the value is the result.
//
// Complexity: Θ(n) in token count; both stacks live only for one Evaluate
// call.
//
// Errors:
//
//   - ErrMalformedExpression: empty input, unrecognized tokens, a ")" with
//     missing operator or operands, leftover operators, or anything but a
//     single final value. All failures wrap this sentinel with context.
//
// Division by zero is not an error; it follows IEEE-754 semantics and
// yields ±Inf (or NaN for 0 / 0).
package eval
