package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

// Panel holds the preference controls shown above the clock.
type Panel struct {
	manager   *Manager
	onChange  func(Settings)
	content   fyne.CanvasObject
	mode      *widget.Button
	sizeLabel *widget.Label
	size      *widget.Slider
	label     *widget.Entry
	zone      *widget.Select
	syncing   bool
}

// NewPanel builds the controls. zones populates the timezone selector.
func NewPanel(manager *Manager, zones []string, onChange func(Settings)) *Panel {
	settings := manager.Settings()

	panel := &Panel{
		manager:   manager,
		onChange:  onChange,
		sizeLabel: widget.NewLabel(SizeCaption(settings.ClockSize)),
	}

	panel.mode = widget.NewButton(ModeCaption(settings.DarkMode), panel.handleToggle)

	panel.size = widget.NewSlider(MinClockSize, MaxClockSize)
	panel.size.Step = ClockSizeStep
	panel.size.Value = ClampSize(settings.ClockSize)
	panel.size.OnChanged = panel.handleSize

	panel.label = widget.NewEntry()
	panel.label.SetText(settings.Label)
	panel.label.OnChanged = panel.handleLabel

	panel.zone = widget.NewSelect(zones, nil)
	panel.zone.SetSelected(settings.Zone)
	panel.zone.OnChanged = panel.handleZone

	sizeRow := container.NewBorder(nil, nil, panel.sizeLabel, nil, panel.size)
	topRow := container.NewHBox(layout.NewSpacer(), panel.mode, layout.NewSpacer())

	panel.content = container.NewVBox(
		topRow,
		sizeRow,
		container.NewBorder(nil, nil, widget.NewLabel("Clock Label:"), nil, panel.label),
		container.NewBorder(nil, nil, widget.NewLabel("Timezone:"), nil, panel.zone),
	)
	return panel
}

// Content returns the panel's canvas object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// UpdateSettings replaces control values without writing them back.
func (panel *Panel) UpdateSettings(settings Settings) {
	panel.syncing = true
	defer func() { panel.syncing = false }()

	panel.mode.SetText(ModeCaption(settings.DarkMode))
	panel.sizeLabel.SetText(SizeCaption(settings.ClockSize))
	panel.size.SetValue(ClampSize(settings.ClockSize))
	if panel.label.Text != settings.Label {
		panel.label.SetText(settings.Label)
	}
	panel.zone.SetSelected(settings.Zone)
}

// ModeCaption is the text of the dark-mode toggle.
func ModeCaption(dark bool) string {
	if dark {
		return "Toggle Light Mode"
	}
	return "Toggle Dark Mode"
}

// SizeCaption is the text next to the size slider.
func SizeCaption(size float64) string {
	return fmt.Sprintf("Clock Size: %.1fx", size)
}

func (panel *Panel) handleToggle() {
	dark, err := panel.manager.ToggleDarkMode()
	if err != nil {
		log.Error().Err(err).Msg("persist dark mode")
	}
	panel.mode.SetText(ModeCaption(dark))
	panel.notify()
}

func (panel *Panel) handleSize(value float64) {
	if panel.syncing {
		return
	}
	if err := panel.manager.SetClockSize(value); err != nil {
		log.Error().Err(err).Msg("persist clock size")
	}
	panel.sizeLabel.SetText(SizeCaption(panel.manager.Settings().ClockSize))
	panel.notify()
}

func (panel *Panel) handleLabel(text string) {
	if panel.syncing {
		return
	}
	if err := panel.manager.SetLabel(text); err != nil {
		log.Error().Err(err).Msg("persist label")
	}
	panel.notify()
}

func (panel *Panel) handleZone(zone string) {
	if panel.syncing || zone == "" {
		return
	}
	if err := panel.manager.SetZone(zone); err != nil {
		log.Error().Err(err).Msg("persist timezone")
	}
	panel.notify()
}

func (panel *Panel) notify() {
	if panel.onChange != nil {
		panel.onChange(panel.manager.Settings())
	}
}
