package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadeepdeshal/CALCULATOR/internal/engine"
)

func TestKeypadHasEveryButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	kp := NewKeypad()

	for _, row := range engine.KeypadLayout {
		for _, b := range row {
			btn := kp.Button(b)
			require.NotNil(t, btn, b.Label())
			assert.Equal(t, b.Label(), btn.Text)
		}
	}
	assert.Equal(t, widget.HighImportance, kp.Button(engine.ButtonAdd).Importance)
	assert.Equal(t, widget.WarningImportance, kp.Button(engine.ButtonClear).Importance)
	assert.Equal(t, widget.MediumImportance, kp.Button(engine.Button3).Importance)
}

func TestKeypadTapDispatchesButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	kp := NewKeypad()
	var pressed []engine.Button
	kp.SetPressHandler(func(b engine.Button) { pressed = append(pressed, b) })

	test.Tap(kp.Button(engine.Button7))
	test.Tap(kp.Button(engine.ButtonMultiply))
	test.Tap(kp.Button(engine.ButtonEquals))

	assert.Equal(t, []engine.Button{engine.Button7, engine.ButtonMultiply, engine.ButtonEquals}, pressed)
}

func TestKeypadTapWithoutHandler(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	kp := NewKeypad()

	assert.NotPanics(t, func() { test.Tap(kp.Button(engine.Button1)) })
}

func TestDisplayPanelText(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	dp := NewDisplayPanel(500 * time.Millisecond)
	assert.Equal(t, "0", dp.PrimaryText())

	dp.SetPrimaryText("42")
	dp.SetSecondaryText("40 +")

	assert.Equal(t, "42", dp.PrimaryText())
	assert.Equal(t, "40 +", dp.SecondaryText())
}

func TestDisplayPanelFlashReverts(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	dp := NewDisplayPanel(500 * time.Millisecond)
	var pending []func()
	var delays []time.Duration
	dp.schedule = func(delay time.Duration, fn func()) {
		delays = append(delays, delay)
		pending = append(pending, fn)
	}

	dp.FlashError()

	assert.True(t, dp.IsFlashing())
	assert.Equal(t, ErrorTextColor, dp.PrimaryColor())
	require.Len(t, pending, 1)
	assert.Equal(t, 500*time.Millisecond, delays[0])

	pending[0]()

	assert.False(t, dp.IsFlashing())
	assert.Equal(t, PrimaryTextColor, dp.PrimaryColor())
}

func TestDisplayPanelStaleRevertIgnored(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	dp := NewDisplayPanel(time.Second)
	var pending []func()
	dp.schedule = func(_ time.Duration, fn func()) { pending = append(pending, fn) }

	dp.FlashError()
	dp.FlashError()
	pending[0]()

	assert.True(t, dp.IsFlashing())
	assert.Equal(t, ErrorTextColor, dp.PrimaryColor())

	pending[1]()
	pending[1]()

	assert.False(t, dp.IsFlashing())
	assert.Equal(t, PrimaryTextColor, dp.PrimaryColor())
}

func TestCalculatorThemeKeyColours(t *testing.T) {
	th := NewCalculatorTheme()

	assert.Equal(t, BackgroundColor, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, DigitKeyColor, th.Color(theme.ColorNameButton, theme.VariantDark))
	assert.Equal(t, FunctionKeyColor, th.Color(theme.ColorNameWarning, theme.VariantDark))
	assert.Equal(t, OperatorKeyColor, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t, float32(24), th.Size(theme.SizeNameText))
}
