package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxInputLength caps the characters of the operand being typed
	MaxInputLength = 12
	// DisplayWidth is the number of characters the primary display shows
	DisplayWidth = 12

	snapThreshold       = 1e-10
	largeResultLimit    = 1e10
	smallResultLimit    = 1e-4
	displaySciThreshold = 1e12
	generalPrecision    = 10
)

// parseOperand converts display text back into a float. Only plain
// decimal and exponent notation is accepted, matching what the engine
// itself produces.
func parseOperand(text string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("parse %q: %w", text, ErrNotANumber)
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return 0, fmt.Errorf("parse %q: %w", text, ErrNotANumber)
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, ErrNotANumber)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("parse %q: %w", text, ErrNotANumber)
	}
	return value, nil
}

// formatResult renders the outcome of a binary operation
func formatResult(value float64) (string, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "", ErrOverflow
	}

	abs := math.Abs(value)
	if abs < snapThreshold {
		value, abs = 0, 0
	}

	if isIntegral(value) && abs < largeResultLimit {
		return formatIntegral(value), nil
	}
	if abs >= largeResultLimit || (abs != 0 && abs < smallResultLimit) {
		return fmt.Sprintf("%.6e", value), nil
	}
	return formatGeneral(value), nil
}

// formatPercent renders a percentage. Unlike formatResult it never
// switches to scientific notation on magnitude alone.
func formatPercent(value float64) (string, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "", ErrOverflow
	}
	if value == 0 {
		// normalises -0
		value = 0
	}

	if isIntegral(value) {
		return formatIntegral(value), nil
	}
	return formatGeneral(value), nil
}

// displayText fits the current operand into DisplayWidth characters
func displayText(current string) string {
	if len(current) <= DisplayWidth {
		return current
	}

	if value, err := parseOperand(current); err == nil && math.Abs(value) >= displaySciThreshold {
		return fmt.Sprintf("%.4e", value)
	}
	return current[:DisplayWidth]
}

func isIntegral(value float64) bool {
	return value == math.Trunc(value)
}

func formatIntegral(value float64) string {
	return strconv.FormatFloat(value, 'f', 0, 64)
}

func formatGeneral(value float64) string {
	return strconv.FormatFloat(value, 'g', generalPrecision, 64)
}

func toggleSign(text string) string {
	if strings.HasPrefix(text, "-") {
		return text[1:]
	}
	return "-" + text
}
