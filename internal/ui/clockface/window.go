package clockface

import (
	"image/color"
	"time"

	"zoneclock/internal/core/zoneclock"
	"zoneclock/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	// remTextSize converts the clock size preference into points.
	remTextSize      = float32(16)
	labelTextSize    = float32(32)
	zoneTextSize     = float32(18)
	defaultWidth     = float32(720)
	defaultHeight    = float32(860)
	clockCardPadding = float32(25)
)

var (
	darkBackground  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	darkForeground  = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	lightBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lightForeground = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	clockCardFill   = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	clockCardText   = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
)

// Sections are the sub-panels hosted by the window.
type Sections struct {
	Controls  fyne.CanvasObject
	Countdown fyne.CanvasObject
	TopAd     fyne.CanvasObject
	BottomAd  fyne.CanvasObject
}

// Window is the main clock window.
type Window struct {
	window     fyne.Window
	formatter  zoneclock.Formatter
	settings   preferences.Settings
	background *canvas.Rectangle
	label      *canvas.Text
	zone       *canvas.Text
	clock      *canvas.Text
	clockCard  *canvas.Rectangle
}

// New creates the main window.
func New(app fyne.App, title string, formatter zoneclock.Formatter, settings preferences.Settings, sections Sections) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(lightBackground)

	label := canvas.NewText(settings.Label, lightForeground)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = labelTextSize

	zone := canvas.NewText(ZoneCaption(settings.Zone), lightForeground)
	zone.Alignment = fyne.TextAlignCenter
	zone.TextSize = zoneTextSize

	clock := canvas.NewText("--:--:--", clockCardText)
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Monospace: true}
	clock.TextSize = ClockTextSize(settings.ClockSize)

	clockCard := canvas.NewRectangle(clockCardFill)
	clockCard.CornerRadius = 12
	clockCard.StrokeColor = clockCardText
	clockCard.StrokeWidth = 1

	clockBox := container.NewCenter(container.NewStack(
		clockCard,
		container.New(&paddedLayout{padding: clockCardPadding}, clock),
	))

	body := container.NewVBox(
		optional(sections.Controls),
		label,
		zone,
		clockBox,
		optional(sections.TopAd),
		optional(sections.Countdown),
		optional(sections.BottomAd),
	)

	root := container.NewStack(background, container.NewVScroll(container.NewPadded(body)))
	window.SetContent(root)
	window.Resize(fyne.NewSize(defaultWidth, defaultHeight))

	face := &Window{
		window:     window,
		formatter:  formatter,
		background: background,
		label:      label,
		zone:       zone,
		clock:      clock,
		clockCard:  clockCard,
	}
	face.ApplySettings(settings)
	return face
}

// Window returns the underlying Fyne window.
func (face *Window) Window() fyne.Window {
	return face.window
}

// Show displays the window.
func (face *Window) Show() {
	face.window.Show()
	face.window.RequestFocus()
}

// ApplySettings updates label, zone, palette and clock size.
func (face *Window) ApplySettings(settings preferences.Settings) {
	face.settings = settings

	foreground := lightForeground
	face.background.FillColor = lightBackground
	if settings.DarkMode {
		foreground = darkForeground
		face.background.FillColor = darkBackground
	}
	face.background.Refresh()

	face.label.Text = settings.Label
	face.label.Color = foreground
	face.label.Refresh()

	face.zone.Text = ZoneCaption(settings.Zone)
	face.zone.Color = foreground
	face.zone.Refresh()

	face.clock.TextSize = ClockTextSize(settings.ClockSize)
	face.clock.Refresh()
}

// Render shows now in the selected zone. A zone the host cannot load is shown
// as its error text.
func (face *Window) Render(now time.Time) {
	text, err := face.formatter.Format(now, face.settings.Zone)
	if err != nil {
		text = err.Error()
	}
	if face.clock.Text == text {
		return
	}
	face.clock.Text = text
	face.clock.Refresh()
}

// ClockText returns the last rendered clock string.
func (face *Window) ClockText() string {
	return face.clock.Text
}

// ZoneCaption is the line under the label.
func ZoneCaption(zone string) string {
	return "Timezone: " + zone
}

// ClockTextSize converts a size in rem to points.
func ClockTextSize(size float64) float32 {
	return float32(preferences.ClampSize(size)) * remTextSize
}

func optional(object fyne.CanvasObject) fyne.CanvasObject {
	if object == nil {
		return container.NewStack()
	}
	return object
}

type paddedLayout struct {
	padding float32
}

func (layout *paddedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		object.Move(fyne.NewPos(layout.padding, layout.padding))
		object.Resize(fyne.NewSize(size.Width-layout.padding*2, size.Height-layout.padding*2))
	}
}

func (layout *paddedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		if minSize.Height > height {
			height = minSize.Height
		}
	}
	return fyne.NewSize(width+layout.padding*2, height+layout.padding*2)
}
