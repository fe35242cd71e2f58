package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sadeepdeshal/CALCULATOR/internal/engine"
)

// Keypad is the grid of calculator keys
type Keypad struct {
	container *fyne.Container
	buttons   map[engine.Button]*widget.Button

	pressHandler func(engine.Button)
}

func NewKeypad() *Keypad {
	kp := &Keypad{buttons: make(map[engine.Button]*widget.Button)}
	kp.createComponents()
	kp.buildLayout()
	return kp
}

func (kp *Keypad) createComponents() {
	for _, row := range engine.KeypadLayout {
		for _, b := range row {
			b := b // per-iteration copy for go < 1.22 loop semantics
			btn := widget.NewButton(b.Label(), func() { kp.press(b) })
			btn.Importance = importanceFor(b)
			kp.buttons[b] = btn
		}
	}
}

// buildLayout lays the rows out on a four column grid. The last row has
// three keys with 0 taking the first two columns.
func (kp *Keypad) buildLayout() {
	rows := make([]fyne.CanvasObject, 0, len(engine.KeypadLayout))
	for _, row := range engine.KeypadLayout {
		if len(row) == 3 {
			rest := container.NewGridWithColumns(2, kp.buttons[row[1]], kp.buttons[row[2]])
			rows = append(rows, container.NewGridWithColumns(2, kp.buttons[row[0]], rest))
			continue
		}

		cells := make([]fyne.CanvasObject, 0, len(row))
		for _, b := range row {
			cells = append(cells, kp.buttons[b])
		}
		rows = append(rows, container.NewGridWithColumns(len(row), cells...))
	}
	kp.container = container.NewGridWithRows(len(rows), rows...)
}

// SetPressHandler sets the callback for key activations
func (kp *Keypad) SetPressHandler(handler func(engine.Button)) {
	kp.pressHandler = handler
}

// Button returns the widget bound to b
func (kp *Keypad) Button(b engine.Button) *widget.Button {
	return kp.buttons[b]
}

func (kp *Keypad) GetContainer() *fyne.Container {
	return kp.container
}

func (kp *Keypad) press(b engine.Button) {
	if kp.pressHandler != nil {
		kp.pressHandler(b)
	}
}

func importanceFor(b engine.Button) widget.Importance {
	switch b.Class() {
	case engine.ClassOperator:
		return widget.HighImportance
	case engine.ClassFunction:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}
