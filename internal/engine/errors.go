package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures. Every kind is recovered by
// resetting the engine and flashing the display.
type ErrorKind int

const (
	DivisionByZero ErrorKind = iota + 1
	ParseFailure
	Overflow
	Unhandled
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division_by_zero"
	case ParseFailure:
		return "parse_failure"
	case Overflow:
		return "overflow"
	case Unhandled:
		return "unhandled"
	default:
		return "unknown"
	}
}

var (
	ErrDivisionByZero  = errors.New("cannot divide by zero")
	ErrNotANumber      = errors.New("not a finite number")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownButton   = errors.New("unknown button")
	ErrOverflow        = errors.New("result out of range")
)

// Error is returned by engine operations that had to fall back to the
// initial state.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

// NewError builds an Error for the named operation
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the ErrorKind from err, or Unhandled when err is not
// an engine error.
func KindOf(err error) ErrorKind {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.Kind
	}
	return Unhandled
}
