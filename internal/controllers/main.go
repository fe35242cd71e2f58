package controllers

import (
	"fmt"
	"sync"

	"github.com/sadeepdeshal/CALCULATOR/internal/engine"
	"github.com/sadeepdeshal/CALCULATOR/internal/eventbus"
	"github.com/sadeepdeshal/CALCULATOR/internal/logger"
)

const component = "MainController"

// DisplaySurface receives the rendered calculator state. The controller
// writes to it after every button and never reads it back.
type DisplaySurface interface {
	SetPrimaryText(text string)
	SetSecondaryText(text string)
	FlashError()
}

// EventPublisher distributes calculator events without blocking
type EventPublisher interface {
	Publish(event eventbus.Event)
}

// MainController turns Input Surface activations into engine operations
type MainController struct {
	engine    *engine.Engine
	press     func(engine.Button) error
	surface   DisplaySurface
	logger    logger.Logger
	publisher EventPublisher

	mu         sync.Mutex
	errorCount int
	presses    int
}

// NewMainController creates a controller around a fresh engine
func NewMainController(log logger.Logger, publisher EventPublisher) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	eng := engine.New()
	return &MainController{
		engine:    eng,
		press:     eng.Press,
		logger:    log,
		publisher: publisher,
	}
}

// SetDisplaySurface attaches the surface and pushes the current display
func (mc *MainController) SetDisplaySurface(surface DisplaySurface) {
	mc.surface = surface
	mc.render()
}

// HandleButton processes one keypad activation. Any failure, including a
// panic inside the engine, resets the calculator and flashes the display.
func (mc *MainController) HandleButton(b engine.Button) {
	mc.mu.Lock()
	mc.presses++
	mc.mu.Unlock()

	mc.emit(eventbus.ButtonPressed, map[string]interface{}{
		"button": b.Label(),
	})

	if err := mc.dispatch(b); err != nil {
		mc.handleError(b, err)
	}
	mc.render()
}

// Display returns what the surface is currently showing
func (mc *MainController) Display() engine.Display {
	return mc.engine.Display()
}

// State returns a snapshot of the engine state
func (mc *MainController) State() engine.State {
	return mc.engine.State()
}

// Stats reports the number of button presses and recovered errors
func (mc *MainController) Stats() (presses, failures int) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.presses, mc.errorCount
}

// Shutdown logs the session summary
func (mc *MainController) Shutdown() {
	presses, failures := mc.Stats()
	mc.logger.Info(component, "controller stopped", map[string]interface{}{
		"presses": presses,
		"errors":  failures,
	})
}

func (mc *MainController) dispatch(b engine.Button) (err error) {
	defer func() {
		if r := recover(); r != nil {
			mc.engine.Recover()
			err = engine.NewError(engine.Unhandled, "press", fmt.Errorf("panic: %v", r))
		}
	}()
	return mc.press(b)
}

// handleError logs and flashes a failure. The engine has already reset
// itself by the time an error reaches here.
func (mc *MainController) handleError(b engine.Button, err error) {
	mc.mu.Lock()
	mc.errorCount++
	mc.mu.Unlock()

	kind := engine.KindOf(err)
	mc.logger.Error(component, err, map[string]interface{}{
		"button": b.Label(),
		"kind":   kind.String(),
	})
	mc.emit(eventbus.CalculationError, map[string]interface{}{
		"button": b.Label(),
		"kind":   kind.String(),
		"error":  err.Error(),
	})

	if mc.surface != nil {
		mc.surface.FlashError()
	}
}

func (mc *MainController) render() {
	if mc.surface == nil {
		return
	}
	display := mc.engine.Display()
	mc.surface.SetPrimaryText(display.Primary)
	mc.surface.SetSecondaryText(display.Secondary)

	mc.emit(eventbus.DisplayUpdated, map[string]interface{}{
		"primary":   display.Primary,
		"secondary": display.Secondary,
		"phase":     mc.engine.Phase().String(),
	})
}

func (mc *MainController) emit(eventType string, data map[string]interface{}) {
	if mc.publisher == nil {
		return
	}
	mc.publisher.Publish(eventbus.Event{Type: eventType, Data: data})
}
