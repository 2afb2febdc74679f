package clockface

import (
	"errors"
	"testing"
	"time"

	"zoneclock/internal/ads"
	"zoneclock/internal/core/zoneclock"
	"zoneclock/internal/ui/preferences"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderUsesSelectedZone(t *testing.T) {
	app := test.NewApp()
	settings := preferences.DefaultSettings()
	settings.Zone = "Asia/Tokyo"

	face := New(app, "ZoneClock", zoneclock.NewFormatter("de-DE"), settings, Sections{})
	face.Render(time.Date(2024, 7, 4, 18, 5, 9, 0, time.UTC))

	assert.Equal(t, "03:05:09", face.ClockText())
}

func TestRenderShowsZoneError(t *testing.T) {
	app := test.NewApp()
	settings := preferences.DefaultSettings()
	settings.Zone = "Nowhere/Atlantis"

	face := New(app, "ZoneClock", zoneclock.NewFormatter("en-US"), settings, Sections{})
	face.Render(time.Now())

	assert.Contains(t, face.ClockText(), "Nowhere/Atlantis")
}

func TestApplySettings(t *testing.T) {
	app := test.NewApp()
	face := New(app, "ZoneClock", zoneclock.NewFormatter("en-GB"), preferences.DefaultSettings(), Sections{})

	face.ApplySettings(preferences.Settings{Zone: "Europe/Oslo", Label: "Office", DarkMode: true, ClockSize: 8.5})

	assert.Equal(t, "Office", face.label.Text)
	assert.Equal(t, "Timezone: Europe/Oslo", face.zone.Text)
	assert.Equal(t, darkBackground, face.background.FillColor)
	assert.Equal(t, darkForeground, face.label.Color)
	assert.Equal(t, float32(136), face.clock.TextSize)

	face.ApplySettings(preferences.DefaultSettings())
	assert.Equal(t, lightBackground, face.background.FillColor)
	assert.Equal(t, float32(96), face.clock.TextSize)
}

func TestAdBoardRendersOneRequestPerStrip(t *testing.T) {
	test.NewApp()
	board := NewAdBoard(ads.DefaultSlot(), 2)
	require.Len(t, board.Slots(), 2)

	injector := ads.NewInjector(false, board)
	assert.Equal(t, 2, injector.Inject(board.Slots()))
	assert.Equal(t, 2, board.Rendered())

	err := board.Push(ads.Request{ID: uuid.New(), Slot: ads.DefaultSlot()})
	assert.True(t, errors.Is(err, ErrNoFreeSlot))
}

func TestAdBoardRejectsUnknownSlot(t *testing.T) {
	board := NewAdBoard(ads.DefaultSlot(), 1)
	err := board.Push(ads.Request{ID: uuid.New(), Slot: ads.Slot{ID: "other"}})
	assert.ErrorIs(t, err, ErrNoFreeSlot)
	assert.Zero(t, board.Rendered())
}
