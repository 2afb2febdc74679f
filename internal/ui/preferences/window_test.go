package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestPanelWritesThroughOnEveryControl(t *testing.T) {
	test.NewApp()

	kv := memoryKV{}
	var changes []Settings
	panel := NewPanel(NewManager(kv), []string{"UTC", "America/New_York", "Europe/Oslo"}, func(settings Settings) {
		changes = append(changes, settings)
	})

	test.Tap(panel.mode)
	assert.Equal(t, "true", kv[KeyDarkMode])
	assert.Equal(t, "Toggle Light Mode", panel.mode.Text)

	panel.size.SetValue(8.5)
	assert.Equal(t, "8.5", kv[KeyClockSize])
	assert.Equal(t, "Clock Size: 8.5x", panel.sizeLabel.Text)

	panel.label.SetText("Desk")
	assert.Equal(t, "Desk", kv[KeyLabel])

	panel.zone.SetSelected("America/New_York")
	assert.Equal(t, "America/New_York", kv[KeyZone])

	assert.Len(t, changes, 4)
	assert.Equal(t, Settings{Zone: "America/New_York", Label: "Desk", DarkMode: true, ClockSize: 8.5}, changes[3])
}

func TestPanelUpdateSettingsDoesNotPersist(t *testing.T) {
	test.NewApp()

	kv := memoryKV{}
	panel := NewPanel(NewManager(kv), []string{"UTC", "Europe/Oslo"}, nil)

	panel.UpdateSettings(Settings{Zone: "Europe/Oslo", Label: "Hall", DarkMode: true, ClockSize: 4})

	assert.Empty(t, kv)
	assert.Equal(t, "Europe/Oslo", panel.zone.Selected)
	assert.Equal(t, "Hall", panel.label.Text)
	assert.Equal(t, 4.0, panel.size.Value)
}
