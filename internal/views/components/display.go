package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	primaryTextSize   = 40
	secondaryTextSize = 16
)

// DisplayPanel shows the primary value and the pending operation above it
type DisplayPanel struct {
	container *fyne.Container
	primary   *canvas.Text
	secondary *canvas.Text

	flashDuration time.Duration
	schedule      func(delay time.Duration, fn func())

	mu         sync.Mutex
	generation int
	flashing   bool
}

// NewDisplayPanel creates a display whose error flash lasts flashDuration
func NewDisplayPanel(flashDuration time.Duration) *DisplayPanel {
	dp := &DisplayPanel{
		flashDuration: flashDuration,
		schedule: func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, func() { fyne.Do(fn) })
		},
	}
	dp.createComponents()
	dp.buildLayout()
	return dp
}

func (dp *DisplayPanel) createComponents() {
	dp.secondary = canvas.NewText("", SecondaryTextColor)
	dp.secondary.TextSize = secondaryTextSize
	dp.secondary.Alignment = fyne.TextAlignTrailing

	dp.primary = canvas.NewText("0", PrimaryTextColor)
	dp.primary.TextSize = primaryTextSize
	dp.primary.TextStyle = fyne.TextStyle{Bold: true}
	dp.primary.Alignment = fyne.TextAlignTrailing
}

func (dp *DisplayPanel) buildLayout() {
	dp.container = container.NewPadded(container.NewVBox(dp.secondary, dp.primary))
}

// SetPrimaryText replaces the main value
func (dp *DisplayPanel) SetPrimaryText(text string) {
	dp.primary.Text = text
	dp.primary.Refresh()
}

// SetSecondaryText replaces the pending-operation line
func (dp *DisplayPanel) SetSecondaryText(text string) {
	dp.secondary.Text = text
	dp.secondary.Refresh()
}

func (dp *DisplayPanel) PrimaryText() string   { return dp.primary.Text }
func (dp *DisplayPanel) SecondaryText() string { return dp.secondary.Text }

// PrimaryColor returns the colour the main value is drawn in
func (dp *DisplayPanel) PrimaryColor() color.Color {
	return dp.primary.Color
}

// FlashError tints the main value and schedules the revert. A newer flash
// supersedes an older one, so a stale timer never cuts a flash short.
func (dp *DisplayPanel) FlashError() {
	dp.mu.Lock()
	dp.generation++
	gen := dp.generation
	dp.flashing = true
	dp.mu.Unlock()

	dp.primary.Color = ErrorTextColor
	dp.primary.Refresh()

	dp.schedule(dp.flashDuration, func() { dp.endFlash(gen) })
}

// IsFlashing reports whether the error tint is showing
func (dp *DisplayPanel) IsFlashing() bool {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	return dp.flashing
}

func (dp *DisplayPanel) endFlash(gen int) {
	dp.mu.Lock()
	if gen != dp.generation || !dp.flashing {
		dp.mu.Unlock()
		return
	}
	dp.flashing = false
	dp.mu.Unlock()

	dp.primary.Color = PrimaryTextColor
	dp.primary.Refresh()
}

func (dp *DisplayPanel) GetContainer() *fyne.Container {
	return dp.container
}
