package engine

import "fmt"

// OperatorKind identifies one of the four binary operators on the keypad
type OperatorKind int

const (
	NoOperator OperatorKind = iota
	Add
	Subtract
	Multiply
	Divide
)

// Symbol returns the keypad glyph for the operator
func (op OperatorKind) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

func (op OperatorKind) String() string {
	switch op {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

// Apply evaluates a op b. Division by zero returns ErrDivisionByZero.
func (op OperatorKind) Apply(a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("apply %s: %w", op, ErrUnknownOperator)
	}
}
