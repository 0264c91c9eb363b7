package gui

import (
	"fmt"

	"iq-calculator/internal/capture"
	"iq-calculator/internal/gui/layout"
	"iq-calculator/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	// BodyWidth and BodyHeight are the fixed window body dimensions in
	// logical pixels. The window is not resizable.
	BodyWidth  = 300
	BodyHeight = 150

	dialogTitle     = "結果"
	buttonLabel     = "計算"
	instructionTop  = "あなたの IQ を計算します。"
	instructionBody = "あなたの IQ を入力してください。"
	messageTemplate = "あなたの IQ は %s です！"
)

// Control geometry, logical pixels from the body origin. Positions are fixed;
// control heights accommodate the 18pt text metrics.
const (
	instructionX     = 10
	instructionTopY  = 6
	instructionBodyY = 32

	editX, editY = 210, 28
	editW, editH = 50, 32

	buttonX, buttonY = 80, 70
	buttonW, buttonH = 120, 34
)

// Manager owns the window state: the two instruction lines, the numeric
// entry, the calculate button and the capture buffer the command handler
// reads through. Everything is created once during construction and only
// ever touched from the UI event thread.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	content    *fyne.Container
	entry      *numericEntry
	calcButton *widget.Button
	buf        *capture.Buffer

	result     dialog.Dialog
	isShutdown bool
}

func NewManager(window fyne.Window, log logger.Logger) (*Manager, error) {
	m := &Manager{
		window: window,
		logger: log,
		buf:    capture.NewBuffer(capture.DefaultUnits),
	}

	m.buildControls()

	log.Info("GUIManager", "controls initialized", map[string]interface{}{
		"body_width":  BodyWidth,
		"body_height": BodyHeight,
	})

	return m, nil
}

// buildControls materializes the instruction lines and both controls at their
// fixed rectangles. The shared-font theme must already be installed on the
// app so the widgets pick it up.
func (m *Manager) buildControls() {
	fixed := layout.NewFixedPlacement(fyne.NewSize(BodyWidth, BodyHeight))

	foreground := theme.Color(theme.ColorNameForeground)

	top := canvas.NewText(instructionTop, foreground)
	top.TextSize = sharedTextSize
	fixed.PlaceAtMinSize(top, fyne.NewPos(instructionX, instructionTopY))

	body := canvas.NewText(instructionBody, foreground)
	body.TextSize = sharedTextSize
	fixed.PlaceAtMinSize(body, fyne.NewPos(instructionX, instructionBodyY))

	m.entry = newNumericEntry()
	m.entry.OnChanged = func(text string) {
		m.dispatch("entry-changed", func() error { return m.handleEntryChanged(text) })
	}
	m.entry.OnSubmitted = func(text string) {
		m.dispatch("entry-submitted", func() error { return m.handleEntrySubmitted(text) })
	}
	fixed.Place(m.entry, fyne.NewPos(editX, editY), fyne.NewSize(editW, editH))

	m.calcButton = widget.NewButton(buttonLabel, func() {
		m.dispatch("calculate", m.handleCalculate)
	})
	m.calcButton.Importance = widget.HighImportance
	fixed.Place(m.calcButton, fyne.NewPos(buttonX, buttonY), fyne.NewSize(buttonW, buttonH))

	m.content = container.New(fixed, top, body, m.entry, m.calcButton)
}

// dispatch routes a control event to its handler and discards the error
// variant after logging it. The UI loop never stops on a handler failure.
func (m *Manager) dispatch(event string, handler func() error) {
	if err := handler(); err != nil {
		m.logger.Error("GUIManager", err, map[string]interface{}{
			"event": event,
		})
	}
}

// handleCalculate reads the entry through the capture buffer, shows the
// result dialog and arranges for focus to return to the button once the
// dialog is dismissed.
func (m *Manager) handleCalculate() error {
	captured := m.buf.Fill(m.entry.Text)
	value := m.buf.String()

	m.logger.Debug("GUIManager", "calculate requested", map[string]interface{}{
		"captured_units": captured,
		"value":          value,
	})

	m.result = dialog.NewInformation(dialogTitle, resultMessage(value), m.window)
	m.result.SetOnClosed(func() {
		m.result = nil
		m.window.Canvas().Focus(m.calcButton)
	})
	m.result.Show()

	return nil
}

// The entry shares the command channel with the button but never triggers
// the result dialog.
func (m *Manager) handleEntryChanged(text string) error {
	m.logger.Debug("GUIManager", "entry changed", map[string]interface{}{
		"length": len(text),
	})
	return nil
}

func (m *Manager) handleEntrySubmitted(text string) error {
	m.logger.Debug("GUIManager", "entry submitted", map[string]interface{}{
		"length": len(text),
	})
	return nil
}

// resultMessage builds the dialog body for the captured value. An empty
// capture keeps both template spaces.
func resultMessage(value string) string {
	return fmt.Sprintf(messageTemplate, value)
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

// FocusInput gives the entry initial keyboard focus. Call after the window
// content is set; focusing a detached widget is a no-op.
func (m *Manager) FocusInput() {
	m.window.Canvas().Focus(m.entry)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
