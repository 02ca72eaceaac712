package calculator

import (
	"math"
	"math/big"
	"strconv"
)

// FormatResult renders v for display.
//
// Whole numbers print as integer literals with every digit and no fractional
// part. Other finite values print as their shortest round-trip decimal,
// switching to exponent form only below 1e-4. Infinities and NaN print as
// inf, -inf and nan.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		// covers -0
		return "0"
	case v == math.Trunc(v):
		return new(big.Float).SetFloat64(v).Text('f', 0)
	case math.Abs(v) < 1e-4:
		return strconv.FormatFloat(v, 'e', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}
