package calculator

import (
	"fmt"
	"strings"
)

// Operation selects one of the arithmetic functions.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
	OpPower:    "power",
}

// Operations returns every supported operation in canonical order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}
}

// Names returns the canonical operation names in canonical order.
func Names() []string {
	ops := Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}

// ParseOperation resolves a canonical, case-sensitive operation name.
func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid choice: %q (choose from %s)",
		ErrUnknownOperation, name, strings.Join(Names(), ", "))
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Formula is a short human description such as "a + b".
func (o Operation) Formula() string {
	switch o {
	case OpAdd:
		return "a + b"
	case OpSubtract:
		return "a - b"
	case OpMultiply:
		return "a * b"
	case OpDivide:
		return "a / b"
	case OpPower:
		return "a ** b"
	default:
		return ""
	}
}

// Apply invokes the function o selects.
func (o Operation) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	case OpPower:
		return Power(a, b)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, o)
	}
}
