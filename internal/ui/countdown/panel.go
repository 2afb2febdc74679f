package countdown

import (
	"context"

	"zoneclock/internal/core/model"
	"zoneclock/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	digitsTextSize  = float32(64)
	messageTextSize = float32(28)
	headingText     = "Countdown starts at 10 seconds - Includes Sound"
)

// Controls are the countdown actions wired by the caller.
type Controls struct {
	OnStart  func()
	OnReset  func(id int64)
	OnDelete func(id int64)
}

// Panel renders the start button and the countdown card.
type Panel struct {
	controls   Controls
	content    fyne.CanvasObject
	start      *widget.Button
	card       *fyne.Container
	digits     *canvas.Text
	digitsBack *canvas.Rectangle
	message    *canvas.Text
	reset      *widget.Button
	remove     *widget.Button
	engine     *animation.Engine
	current    model.Countdown
	present    bool
}

// NewPanel creates the panel. engine may be nil to disable the pulse.
func NewPanel(controls Controls, engine *animation.Engine) *Panel {
	panel := &Panel{
		controls: controls,
		engine:   engine,
	}

	panel.start = widget.NewButton("Start Countdown", func() {
		if panel.controls.OnStart != nil {
			panel.controls.OnStart()
		}
	})

	panel.digits = canvas.NewText("", Cyan)
	panel.digits.Alignment = fyne.TextAlignCenter
	panel.digits.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	panel.digits.TextSize = digitsTextSize

	panel.digitsBack = canvas.NewRectangle(Transparent)
	panel.digitsBack.CornerRadius = 8

	panel.message = canvas.NewText("", Cyan)
	panel.message.Alignment = fyne.TextAlignCenter
	panel.message.TextSize = messageTextSize

	panel.reset = widget.NewButton("Reset", func() {
		if panel.present && panel.controls.OnReset != nil {
			panel.controls.OnReset(panel.current.ID)
		}
	})
	panel.remove = widget.NewButton("Delete", func() {
		if panel.present && panel.controls.OnDelete != nil {
			panel.controls.OnDelete(panel.current.ID)
		}
	})
	panel.remove.Importance = widget.DangerImportance

	border := canvas.NewRectangle(Transparent)
	border.StrokeColor = Cyan
	border.StrokeWidth = 4
	border.CornerRadius = 10

	panel.card = container.NewStack(
		border,
		container.NewPadded(container.NewVBox(
			container.NewStack(panel.digitsBack, panel.digits),
			panel.message,
			container.NewHBox(layout.NewSpacer(), panel.reset, panel.remove, layout.NewSpacer()),
		)),
	)
	panel.card.Hide()

	title := widget.NewLabelWithStyle("Countdown Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	heading := widget.NewLabelWithStyle(headingText, fyne.TextAlignCenter, fyne.TextStyle{})

	panel.content = container.NewVBox(
		title,
		heading,
		container.NewHBox(layout.NewSpacer(), panel.start, layout.NewSpacer()),
		container.NewHBox(layout.NewSpacer(), panel.card, layout.NewSpacer()),
	)
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// SetPulseScale scales the digits; it is the animation engine's callback.
func (panel *Panel) SetPulseScale(scale float32) {
	fyne.Do(func() {
		panel.digits.TextSize = digitsTextSize * scale
		panel.digits.Refresh()
	})
}

// Render shows the countdown state. Must run on the UI goroutine.
func (panel *Panel) Render(countdown model.Countdown, present bool) {
	panel.current = countdown
	panel.present = present

	if !present {
		panel.start.Enable()
		panel.card.Hide()
		panel.stopPulse()
		return
	}

	panel.start.Disable()
	palette := PaletteFor(countdown)
	panel.digits.Text = Digits(countdown)
	panel.digits.Color = palette.Foreground
	panel.digits.Refresh()
	panel.digitsBack.FillColor = palette.Background
	panel.digitsBack.Refresh()

	panel.message.Text = countdown.Message
	if countdown.Animate {
		panel.message.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		panel.message.TextStyle = fyne.TextStyle{}
	}
	panel.message.Refresh()
	panel.card.Show()

	if palette.Warning {
		panel.startPulse()
	} else {
		panel.stopPulse()
	}
}

func (panel *Panel) startPulse() {
	if panel.engine != nil {
		panel.engine.StartPulse(context.Background())
	}
}

func (panel *Panel) stopPulse() {
	if panel.engine != nil {
		panel.engine.Stop()
	}
}
