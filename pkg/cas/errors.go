package cas

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when an expression cannot be parsed.
	ErrSyntax = errors.New("invalid expression")

	// ErrDivision is returned when dividing by zero or by a sum of terms.
	ErrDivision = errors.New("unsupported division")

	// ErrUnbound is returned when evaluating an expression with a free symbol
	// that has no binding.
	ErrUnbound = errors.New("unbound symbol")

	// ErrTooLarge is returned when an expression would exceed MaxExponent
	// or MaxTerms.
	ErrTooLarge = errors.New("expression too large")
)

// Size limits on expressions built from untrusted input.
const (
	MaxExponent = 64
	MaxTerms    = 256
)

// SyntaxError locates a parse failure in the input.
type SyntaxError struct {
	Input  string
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// DivisionError reports a divisor that is not a monomial.
type DivisionError struct {
	Divisor string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("cannot divide by %q: divisor must be a single term", e.Divisor)
}

func (e *DivisionError) Unwrap() error { return ErrDivision }

// LimitError reports an expression that exceeds a size limit.
type LimitError struct {
	Limit string
	Value int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s %d exceeds limit %d", e.Limit, e.Value, e.Max)
}

func (e *LimitError) Unwrap() error { return ErrTooLarge }
