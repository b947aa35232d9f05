package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/algokit/algokit/stack"
)

// ErrMalformedExpression indicates the input does not conform to the
// fully parenthesized grammar. Every failure wraps it, so callers match
// with errors.Is and read the specific shape from the message.
var ErrMalformedExpression = errors.New("eval: malformed expression")

// Tokens splits expr on runs of whitespace into the token stream Evaluate
// consumes. Exposed so callers can inspect or pre-validate the stream.
func Tokens(expr string) []string {
	return strings.Fields(expr)
}

// Evaluate computes the value of a fully parenthesized infix arithmetic
// expression such as "( ( 2 * ( 3 + 5 ) ) / 4 )".
//
// Returns ErrMalformedExpression (wrapped with context) on any input that
// does not reduce to exactly one value.
// Complexity: Θ(n) in token count
func Evaluate(expr string) (float64, error) {
	tokens := Tokens(expr)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("eval: empty expression: %w", ErrMalformedExpression)
	}

	ops := stack.NewLinked[string]()
	vals := stack.NewLinked[float64]()

	for _, tok := range tokens {
		switch tok {
		case "(":
			// structural only; never pushed

		case "+", "-", "*", "/":
			ops.Push(tok)

		case ")":
			if err := reduce(ops, vals); err != nil {
				return 0, err
			}

		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, fmt.Errorf("eval: unrecognized token %q: %w", tok, ErrMalformedExpression)
			}
			vals.Push(v)
		}
	}

	result, err := vals.Pop()
	if err != nil {
		return 0, fmt.Errorf("eval: expression produced no value: %w", ErrMalformedExpression)
	}
	if !vals.IsEmpty() {
		return 0, fmt.Errorf("eval: %d unconsumed values remain: %w", vals.Len()+1, ErrMalformedExpression)
	}
	if !ops.IsEmpty() {
		op, _ := ops.Peek()
		return 0, fmt.Errorf("eval: operator %q never applied: %w", op, ErrMalformedExpression)
	}

	return result, nil
}

// reduce handles one ")": pop an operator, its right then left operands,
// apply, and push the result back onto the value stack.
func reduce(ops *stack.LinkedStack[string], vals *stack.LinkedStack[float64]) error {
	op, err := ops.Pop()
	if err != nil {
		return fmt.Errorf(`eval: ")" with no pending operator: %w`, ErrMalformedExpression)
	}
	right, err := vals.Pop()
	if err != nil {
		return fmt.Errorf("eval: operator %q missing its right operand: %w", op, ErrMalformedExpression)
	}
	left, err := vals.Pop()
	if err != nil {
		return fmt.Errorf("eval: operator %q missing its left operand: %w", op, ErrMalformedExpression)
	}

	switch op {
	case "+":
		vals.Push(left + right)
	case "-":
		vals.Push(left - right)
	case "*":
		vals.Push(left * right)
	case "/":
		// division by zero follows IEEE-754: ±Inf, or NaN for 0/0
		vals.Push(left / right)
	}

	return nil
}
