package app

import (
	"iq-calculator/internal/assets"
	"iq-calculator/internal/gui"
	"iq-calculator/internal/logger"
	"iq-calculator/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "IQ 計算機"
	AppID      = "com.iqcalc.iqcalculator"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	shutdownMgr *shutdown.Manager
	logger      logger.Logger
}

func NewApplication(log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), log)
}

func newApplication(fyneApp fyne.App, log logger.Logger) (*Application, error) {
	fyneApp.SetIcon(assets.Icon())

	// The shared font must be installed before any control is built so
	// every control picks it up.
	fyneApp.Settings().SetTheme(gui.NewTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(gui.BodyWidth, gui.BodyHeight))
	window.SetFixedSize(true)
	window.SetPadded(false)
	window.CenterOnScreen()
	window.SetMaster()
	window.SetIcon(assets.Icon())

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  gui.BodyWidth,
		"window_height": gui.BodyHeight,
	})

	guiManager, err := gui.NewManager(window, log)
	if err != nil {
		return nil, err
	}

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(guiManager)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		shutdownMgr: shutdownMgr,
		logger:      log,
	}

	application.setupLifecycleHooks()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupLifecycleHooks() {
	lifecycle := a.fyneApp.Lifecycle()

	lifecycle.SetOnStarted(func() {
		a.logger.Debug("Application", "event loop started", nil)
	})
	lifecycle.SetOnStopped(func() {
		a.logger.Debug("Application", "event loop stopped", nil)
	})

	a.window.SetOnClosed(func() {
		a.logger.Debug("Application", "main window closed", nil)
	})
}

// requestShutdown is the single teardown entry point. Both quit paths, the
// window close and a system signal, drain through the shutdown manager so
// component teardown runs exactly once and Done closes uniformly.
func (a *Application) requestShutdown() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.shutdownMgr.Shutdown()
	a.window.Close()
}

func (a *Application) setupCloseHandling() {
	a.window.SetCloseIntercept(a.requestShutdown)

	a.shutdownMgr.Listen()
	go func() {
		<-a.shutdownMgr.Done()
		fyne.Do(a.fyneApp.Quit)
	}()
}

func (a *Application) showMainWindow() {
	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.guiManager.FocusInput()
}

func (a *Application) Run() error {
	a.setupCloseHandling()
	a.showMainWindow()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
