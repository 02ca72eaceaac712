package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOperand converts a command-line token into an operand.
//
// Decimal and exponent notation, surrounding whitespace, and inf, infinity
// and nan in any case and with an optional sign are accepted. Underscores
// may separate digits, as in 1_000. Values too large for float64 become
// infinite. Hexadecimal literals are rejected.
func ParseOperand(s string) (float64, error) {
	t := strings.TrimSpace(s)
	lower := strings.ToLower(t)
	if t == "" || strings.Contains(lower, "0x") {
		return 0, invalidNumber(s)
	}

	switch lower {
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}

	t, ok := stripDigitSeparators(t)
	if !ok {
		return 0, invalidNumber(s)
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, invalidNumber(s)
	}
	return v, nil
}

// stripDigitSeparators removes underscores that sit between two digits and
// reports false for any other underscore.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func invalidNumber(s string) error {
	return fmt.Errorf("%w: invalid float value: %q", ErrInvalidNumber, s)
}
