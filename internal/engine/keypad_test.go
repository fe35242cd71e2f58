package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButtonRoundTrip(t *testing.T) {
	labels := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "AC", "±", "%", "÷", "×", "-", "+", "="}

	for _, label := range labels {
		b, err := ParseButton(label)
		require.NoError(t, err, label)
		assert.Equal(t, label, b.Label())
	}
}

func TestParseButtonUnknown(t *testing.T) {
	_, err := ParseButton("M+")

	assert.ErrorIs(t, err, ErrUnknownButton)
}

func TestKeypadLayoutCoversEveryButtonOnce(t *testing.T) {
	seen := make(map[Button]int)
	for _, row := range KeypadLayout {
		for _, b := range row {
			seen[b]++
		}
	}

	assert.Len(t, seen, len(buttonLabels))
	for b, count := range seen {
		assert.Equal(t, 1, count, b.Label())
	}
}

func TestButtonClassAndOperator(t *testing.T) {
	tests := []struct {
		name     string
		button   Button
		class    ButtonClass
		operator OperatorKind
	}{
		{name: "digit", button: Button7, class: ClassDigit, operator: NoOperator},
		{name: "decimal", button: ButtonDecimal, class: ClassDigit, operator: NoOperator},
		{name: "clear", button: ButtonClear, class: ClassFunction, operator: NoOperator},
		{name: "percent", button: ButtonPercent, class: ClassFunction, operator: NoOperator},
		{name: "divide", button: ButtonDivide, class: ClassOperator, operator: Divide},
		{name: "multiply", button: ButtonMultiply, class: ClassOperator, operator: Multiply},
		{name: "subtract", button: ButtonSubtract, class: ClassOperator, operator: Subtract},
		{name: "add", button: ButtonAdd, class: ClassOperator, operator: Add},
		{name: "equals", button: ButtonEquals, class: ClassOperator, operator: NoOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, tt.button.Class())
			assert.Equal(t, tt.operator, tt.button.Operator())
		})
	}
}

func TestOperatorApply(t *testing.T) {
	tests := []struct {
		op       OperatorKind
		a, b     float64
		expected float64
	}{
		{op: Add, a: 2, b: 3, expected: 5},
		{op: Subtract, a: 2, b: 3, expected: -1},
		{op: Multiply, a: 2, b: 3, expected: 6},
		{op: Divide, a: 3, b: 2, expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Divide.Apply(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = NoOperator.Apply(1, 1)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
