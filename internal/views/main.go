package views

import (
	"time"

	"github.com/sadeepdeshal/CALCULATOR/internal/engine"
	"github.com/sadeepdeshal/CALCULATOR/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MainView is the calculator window content. It is both the Display
// Surface the controller writes to and the Input Surface that reports
// key activations.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	display       *components.DisplayPanel
	keypad        *components.Keypad

	buttonHandler func(engine.Button)
}

// NewMainView builds the view. window may be nil when only the content
// is needed.
func NewMainView(window fyne.Window, flashDuration time.Duration) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(flashDuration)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(flashDuration time.Duration) {
	mv.display = components.NewDisplayPanel(flashDuration)
	mv.keypad = components.NewKeypad()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewPadded(container.NewBorder(
		mv.display.GetContainer(), // top
		nil,                       // bottom
		nil,                       // left
		nil,                       // right
		mv.keypad.GetContainer(),  // center
	))

	if mv.window != nil {
		mv.window.SetContent(mv.mainContainer)
	}
}

func (mv *MainView) setupEventHandlers() {
	mv.keypad.SetPressHandler(func(b engine.Button) {
		if mv.buttonHandler != nil {
			mv.buttonHandler(b)
		}
	})
}

// SetButtonHandler sets the handler for key activations - called by controller wiring
func (mv *MainView) SetButtonHandler(handler func(engine.Button)) {
	mv.buttonHandler = handler
}

// SetPrimaryText shows text on the main display line
func (mv *MainView) SetPrimaryText(text string) {
	mv.display.SetPrimaryText(text)
}

// SetSecondaryText shows the pending operation above the main line
func (mv *MainView) SetSecondaryText(text string) {
	mv.display.SetSecondaryText(text)
}

// FlashError briefly colours the main display to signal a failure
func (mv *MainView) FlashError() {
	mv.display.FlashError()
}

// Display returns the display panel component
func (mv *MainView) Display() *components.DisplayPanel {
	return mv.display
}

// Keypad returns the keypad component
func (mv *MainView) Keypad() *components.Keypad {
	return mv.keypad
}

// Show displays the main window
func (mv *MainView) Show() {
	if mv.window != nil {
		mv.window.Show()
	}
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
