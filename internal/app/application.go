package app

import (
	"fmt"
	"os"

	"github.com/sadeepdeshal/CALCULATOR/internal/config"
	"github.com/sadeepdeshal/CALCULATOR/internal/controllers"
	"github.com/sadeepdeshal/CALCULATOR/internal/eventbus"
	"github.com/sadeepdeshal/CALCULATOR/internal/logger"
	"github.com/sadeepdeshal/CALCULATOR/internal/shutdown"
	"github.com/sadeepdeshal/CALCULATOR/internal/views"
	"github.com/sadeepdeshal/CALCULATOR/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Calculator"
	AppID      = "com.github.sadeepdeshal.calculator"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	bus        *eventbus.Bus
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

// NewApplication creates the Fyne app and wires the MVC components
func NewApplication(cfg config.Config) (*Application, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	log := logger.New(os.Stdout, level, cfg.UseJSONLogging)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	return newApplication(fyneApp, cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	fyneApp.Settings().SetTheme(components.NewCalculatorTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"flash_ms":      cfg.FlashDuration.Milliseconds(),
	})

	bus := eventbus.NewBus(cfg.EventBufferSize)
	bus.SetPanicHandler(func(id string, recovered interface{}) {
		log.Warning("EventBus", "event handler panicked", map[string]interface{}{
			"handler": id,
			"panic":   fmt.Sprint(recovered),
		})
	})
	subscribeAudit(bus, log)

	controller := controllers.NewMainController(log, bus)
	view := views.NewMainView(window, cfg.FlashDuration)

	view.SetButtonHandler(controller.HandleButton)
	controller.SetDisplaySurface(view)

	manager := shutdown.NewManager(log)
	manager.Register("fyne", shutdown.Func(func() { fyne.Do(fyneApp.Quit) }))
	manager.Register("event bus", bus)
	manager.Register("controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		bus:        bus,
		controller: controller,
		view:       view,
		shutdown:   manager,
	}

	application.setupWindowEvents()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.Shutdown()
		a.window.Close()
	})
}

// Run shows the calculator and blocks until the Fyne event loop exits
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.Shutdown()
	return nil
}

// Shutdown stops every registered component once
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
