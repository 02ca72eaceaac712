package calculator

import (
	"errors"
	"fmt"
)

// Arithmetic failures. These are surfaced to the user with exit code 1.
var (
	// ErrDivisionByZero indicates a zero divisor, or a zero base raised to a
	// negative power.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperand indicates an operand combination whose result is not
	// a real number, e.g. a negative base with a non-integer exponent.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrOutOfRange indicates finite operands whose result overflows float64.
	ErrOutOfRange = errors.New("result out of range")
)

// Input failures. These are usage errors rather than arithmetic errors.
var (
	// ErrUnknownOperation indicates an operation name outside the five
	// recognised ones.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidNumber indicates an operand string that is not a real number.
	ErrInvalidNumber = errors.New("invalid number")
)

// Error describes a failed arithmetic operation.
type Error struct {
	Op   Operation
	A, B float64
	Msg  string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap returns the sentinel the failure belongs to.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op Operation, a, b float64, sentinel error, format string, args ...any) *Error {
	return &Error{
		Op:  op,
		A:   a,
		B:   b,
		Msg: fmt.Sprintf(format, args...),
		Err: sentinel,
	}
}

// IsArithmetic reports whether err came from evaluating an operation, as
// opposed to a malformed command line.
func IsArithmetic(err error) bool {
	return errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrInvalidOperand) ||
		errors.Is(err, ErrOutOfRange)
}

// outcomeLabel maps an evaluation result to a stable metrics label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	default:
		return "error"
	}
}
