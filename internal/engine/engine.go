// Package engine implements the calculator input state machine: keypad
// events mutate an operand/operator state which is rendered into the
// primary and secondary display text.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// State is the complete calculator state
type State struct {
	Current         string
	Previous        string
	Operator        OperatorKind
	ResultDisplayed bool
	Secondary       string
}

// InitialState returns the state the calculator starts in and returns
// to after Clear or an error.
func InitialState() State {
	return State{Current: "0"}
}

// Phase describes where the engine is in the input cycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOperandEntry
	PhaseOperatorPending
	PhaseResultShown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOperandEntry:
		return "operand_entry"
	case PhaseOperatorPending:
		return "operator_pending"
	case PhaseResultShown:
		return "result_shown"
	default:
		return "unknown"
	}
}

// Display is the text the Display Surface should show
type Display struct {
	Primary   string
	Secondary string
}

// Engine consumes keypad events. It is not safe for concurrent use and
// is expected to be driven from the UI event loop only.
type Engine struct {
	state State
}

// New creates an engine in the initial state
func New() *Engine {
	return &Engine{state: InitialState()}
}

// State returns a copy of the current state
func (e *Engine) State() State {
	return e.state
}

// Phase derives the state machine phase from the current state
func (e *Engine) Phase() Phase {
	s := e.state
	switch {
	case s == InitialState():
		return PhaseIdle
	case s.Operator != NoOperator && s.ResultDisplayed:
		return PhaseOperatorPending
	case s.ResultDisplayed:
		return PhaseResultShown
	default:
		return PhaseOperandEntry
	}
}

// Display renders the state. The primary text is fitted to DisplayWidth
// without touching the stored operand.
func (e *Engine) Display() Display {
	return Display{
		Primary:   displayText(e.state.Current),
		Secondary: e.state.Secondary,
	}
}

// Press dispatches a keypad button to the matching operation
func (e *Engine) Press(b Button) error {
	switch {
	case b.IsDigit():
		return e.Digit(rune('0' + int(b-Button0)))
	case b == ButtonDecimal:
		e.Decimal()
	case b == ButtonClear:
		e.Clear()
	case b == ButtonToggleSign:
		e.ToggleSign()
	case b == ButtonPercent:
		return e.Percent()
	case b == ButtonEquals:
		return e.Equals()
	case b.Operator() != NoOperator:
		return e.Operator(b.Operator())
	default:
		return e.fail(ParseFailure, "press", fmt.Errorf("button %d: %w", int(b), ErrUnknownButton))
	}
	return nil
}

// Digit enters one decimal digit
func (e *Engine) Digit(d rune) error {
	if d < '0' || d > '9' {
		return e.fail(ParseFailure, "digit", fmt.Errorf("digit %q: %w", d, ErrNotANumber))
	}

	s := &e.state
	if s.ResultDisplayed || s.Current == "0" {
		s.Current = string(d)
		s.ResultDisplayed = false
		return nil
	}
	if len(s.Current) < MaxInputLength {
		s.Current += string(d)
	}
	return nil
}

// Decimal appends a decimal point to the operand being entered
func (e *Engine) Decimal() {
	s := &e.state
	if s.ResultDisplayed {
		s.Current = "0."
		s.ResultDisplayed = false
		return
	}
	if !strings.ContainsRune(s.Current, '.') && len(s.Current) < MaxInputLength-1 {
		s.Current += "."
	}
}

// Operator selects the pending binary operation. A previously pending
// operation is evaluated first, so chains run strictly left to right.
// When that evaluation fails the engine is reset and op is still applied
// to the reset operand; the evaluation error is returned.
func (e *Engine) Operator(op OperatorKind) error {
	if op == NoOperator || op.Symbol() == "" {
		return e.fail(ParseFailure, "operator", fmt.Errorf("operator %d: %w", int(op), ErrUnknownOperator))
	}

	s := &e.state
	var chainErr error
	if s.Operator != NoOperator && !s.ResultDisplayed {
		chainErr = e.Equals()
	}

	s.Previous = s.Current
	s.Operator = op
	s.ResultDisplayed = true
	s.Secondary = fmt.Sprintf("%s %s", s.Previous, op.Symbol())
	return chainErr
}

// Equals evaluates the pending operation. Without one it does nothing.
func (e *Engine) Equals() error {
	s := &e.state
	if s.Operator == NoOperator || s.Previous == "" {
		return nil
	}

	left, err := parseOperand(s.Previous)
	if err != nil {
		return e.fail(ParseFailure, "equals", err)
	}
	right, err := parseOperand(s.Current)
	if err != nil {
		return e.fail(ParseFailure, "equals", err)
	}

	value, err := s.Operator.Apply(left, right)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return e.fail(DivisionByZero, "equals", err)
		}
		return e.fail(Unhandled, "equals", err)
	}

	text, err := formatResult(value)
	if err != nil {
		return e.fail(Overflow, "equals", err)
	}

	s.Current = text
	s.Previous = ""
	s.Operator = NoOperator
	s.ResultDisplayed = true
	s.Secondary = ""
	return nil
}

// Clear returns the engine to its initial state
func (e *Engine) Clear() {
	e.state = InitialState()
}

// Recover is the reset performed after any failed operation
func (e *Engine) Recover() {
	e.Clear()
}

// ToggleSign flips the sign of a non-zero operand
func (e *Engine) ToggleSign() {
	if e.state.Current != "0" {
		e.state.Current = toggleSign(e.state.Current)
	}
}

// Percent divides the operand by 100
func (e *Engine) Percent() error {
	s := &e.state
	value, err := parseOperand(s.Current)
	if err != nil {
		return e.fail(ParseFailure, "percent", err)
	}

	text, err := formatPercent(value / 100)
	if err != nil {
		return e.fail(Overflow, "percent", err)
	}

	s.Current = text
	s.ResultDisplayed = true
	return nil
}

func (e *Engine) fail(kind ErrorKind, op string, err error) error {
	e.Recover()
	return NewError(kind, op, err)
}
