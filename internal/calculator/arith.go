package calculator

import "math"

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b. It fails with ErrDivisionByZero when b is zero,
// including negative zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, newError(OpDivide, a, b, ErrDivisionByZero, "cannot divide by zero")
	}
	return a / b, nil
}

// Power returns a raised to b over the real numbers.
//
// It fails with ErrInvalidOperand for a finite negative base with a finite
// non-integer exponent, with ErrDivisionByZero for a zero base and negative
// finite exponent, and with ErrOutOfRange when finite operands overflow. NaN
// and infinite operands follow math.Pow, so Power(0, -Inf) is +Inf.
func Power(a, b float64) (float64, error) {
	if a == 0 && b < 0 && !math.IsInf(b, -1) {
		return 0, newError(OpPower, a, b, ErrDivisionByZero, "zero cannot be raised to a negative power")
	}
	if a < 0 && isFinite(a) && isFinite(b) && b != math.Trunc(b) {
		return 0, newError(OpPower, a, b, ErrInvalidOperand,
			"negative base %s cannot be raised to non-integer power %s", FormatResult(a), FormatResult(b))
	}

	result := math.Pow(a, b)
	if math.IsInf(result, 0) && isFinite(a) && isFinite(b) {
		return 0, newError(OpPower, a, b, ErrOutOfRange, "result out of range")
	}
	return result, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
