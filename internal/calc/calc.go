// Package calc implements the arithmetic operations exposed by the API.
// All functions are pure; the only domain error is division by zero.
package calc

import "errors"

var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation names match the wire format used by calculation payloads.
const (
	OpAdd      = "Add"
	OpSubtract = "Subtract"
	OpMultiply = "Multiply"
	OpDivide   = "Divide"
)

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Compute applies the named operation to a and b.
func Compute(operation string, a, b float64) (float64, error) {
	switch operation {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, ErrUnknownOperation
	}
}

// ValidOperation reports whether name is one of the supported operation kinds.
func ValidOperation(name string) bool {
	switch name {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}
