package engine

import "fmt"

// Button is one logical key of the keypad
type Button int

const (
	Button0 Button = iota
	Button1
	Button2
	Button3
	Button4
	Button5
	Button6
	Button7
	Button8
	Button9
	ButtonDecimal
	ButtonClear
	ButtonToggleSign
	ButtonPercent
	ButtonDivide
	ButtonMultiply
	ButtonSubtract
	ButtonAdd
	ButtonEquals
)

// ButtonClass groups buttons that share styling and dispatch
type ButtonClass int

const (
	ClassDigit ButtonClass = iota
	ClassFunction
	ClassOperator
)

var buttonLabels = map[Button]string{
	Button0:          "0",
	Button1:          "1",
	Button2:          "2",
	Button3:          "3",
	Button4:          "4",
	Button5:          "5",
	Button6:          "6",
	Button7:          "7",
	Button8:          "8",
	Button9:          "9",
	ButtonDecimal:    ".",
	ButtonClear:      "AC",
	ButtonToggleSign: "±",
	ButtonPercent:    "%",
	ButtonDivide:     "÷",
	ButtonMultiply:   "×",
	ButtonSubtract:   "-",
	ButtonAdd:        "+",
	ButtonEquals:     "=",
}

var labelButtons = func() map[string]Button {
	m := make(map[string]Button, len(buttonLabels))
	for b, label := range buttonLabels {
		m[label] = b
	}
	return m
}()

// KeypadLayout lists the buttons row by row as they appear on screen.
// The 0 key occupies two columns of the last row.
var KeypadLayout = [][]Button{
	{ButtonClear, ButtonToggleSign, ButtonPercent, ButtonDivide},
	{Button7, Button8, Button9, ButtonMultiply},
	{Button4, Button5, Button6, ButtonSubtract},
	{Button1, Button2, Button3, ButtonAdd},
	{Button0, ButtonDecimal, ButtonEquals},
}

// ParseButton maps a keypad label to its Button
func ParseButton(label string) (Button, error) {
	b, ok := labelButtons[label]
	if !ok {
		return 0, fmt.Errorf("parse button %q: %w", label, ErrUnknownButton)
	}
	return b, nil
}

// Label returns the text printed on the key
func (b Button) Label() string {
	return buttonLabels[b]
}

func (b Button) String() string {
	if label, ok := buttonLabels[b]; ok {
		return label
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// IsDigit reports whether b is one of 0-9
func (b Button) IsDigit() bool {
	return b >= Button0 && b <= Button9
}

// Class returns the styling group of the button
func (b Button) Class() ButtonClass {
	switch b {
	case ButtonClear, ButtonToggleSign, ButtonPercent:
		return ClassFunction
	case ButtonDivide, ButtonMultiply, ButtonSubtract, ButtonAdd, ButtonEquals:
		return ClassOperator
	default:
		return ClassDigit
	}
}

// Operator returns the OperatorKind bound to an operator key
func (b Button) Operator() OperatorKind {
	switch b {
	case ButtonAdd:
		return Add
	case ButtonSubtract:
		return Subtract
	case ButtonMultiply:
		return Multiply
	case ButtonDivide:
		return Divide
	default:
		return NoOperator
	}
}
