package regex

import "errors"

// Sentinel error kinds, per spec.md §7. Wrap these with fmt.Errorf("%w: ...")
// to attach positional context; callers branch on kind with errors.Is.
var (
	// ErrUnmatchedParen is returned by ToPostfix when an open or close
	// parenthesis has no matching partner.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")

	// ErrMalformedPostfix is returned by FromPostfix when the operand stack
	// underflows on an operator, and by FromPostfix or BuildNFA when the
	// stack does not hold exactly one element after the last character is
	// consumed. BuildNFA reports an underflow as ErrDanglingOperator.
	ErrMalformedPostfix = errors.New("malformed postfix expression")

	// ErrDanglingOperator is returned by BuildNFA when a unary operator
	// starts the input, or a binary operator has no right operand. This
	// subsumes cases a stricter encoder would reject earlier (spec.md §7).
	ErrDanglingOperator = errors.New("dangling operator")
)
