package preferences

import (
	"errors"
	"path/filepath"
	"testing"

	"zoneclock/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryKV map[string]string

func (kv memoryKV) Get(key string) (string, bool) {
	value, ok := kv[key]
	return value, ok
}

func (kv memoryKV) Set(key, value string) error {
	kv[key] = value
	return nil
}

type failingKV struct{ memoryKV }

func (failingKV) Set(string, string) error { return errors.New("disk full") }

func TestLoadDefaults(t *testing.T) {
	assert.Equal(t, DefaultSettings(), Load(memoryKV{}))
	assert.Equal(t, DefaultSettings(), Load(nil))
	assert.Equal(t, Settings{Zone: "UTC", Label: "My Clock", DarkMode: false, ClockSize: 6}, DefaultSettings())
}

func TestLoadReadsStoredValues(t *testing.T) {
	kv := memoryKV{
		KeyZone:      "Europe/Oslo",
		KeyLabel:     "Office",
		KeyDarkMode:  "true",
		KeyClockSize: "3.5",
	}
	assert.Equal(t, Settings{Zone: "Europe/Oslo", Label: "Office", DarkMode: true, ClockSize: 3.5}, Load(kv))
}

func TestLoadFallsBackOnBadValues(t *testing.T) {
	kv := memoryKV{
		KeyLabel:     "",
		KeyDarkMode:  "yes",
		KeyClockSize: "huge",
	}
	settings := Load(kv)
	assert.Equal(t, "My Clock", settings.Label)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, 6.0, settings.ClockSize)
}

func TestLoadClampsStoredSize(t *testing.T) {
	assert.Equal(t, 12.0, Load(memoryKV{KeyClockSize: "40"}).ClockSize)
	assert.Equal(t, 2.0, Load(memoryKV{KeyClockSize: "0.25"}).ClockSize)
}

func TestSettersWriteThrough(t *testing.T) {
	kv := memoryKV{}
	manager := NewManager(kv)

	require.NoError(t, manager.SetZone("America/New_York"))
	assert.Equal(t, "America/New_York", kv[KeyZone])

	require.NoError(t, manager.SetLabel("Lab"))
	assert.Equal(t, "Lab", kv[KeyLabel])

	require.NoError(t, manager.SetDarkMode(true))
	assert.Equal(t, "true", kv[KeyDarkMode])

	dark, err := manager.ToggleDarkMode()
	require.NoError(t, err)
	assert.False(t, dark)
	assert.Equal(t, "false", kv[KeyDarkMode])

	require.NoError(t, manager.SetClockSize(8.5))
	assert.Equal(t, "8.5", kv[KeyClockSize])

	require.NoError(t, manager.SetClockSize(6))
	assert.Equal(t, "6", kv[KeyClockSize])
}

func TestRoundTripThroughYAMLStore(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.OpenInDir(dir, "ZoneClock")
	require.NoError(t, err)

	manager := NewManager(store)
	require.NoError(t, manager.SetZone("America/New_York"))
	require.NoError(t, manager.SetLabel("Kitchen"))
	require.NoError(t, manager.SetDarkMode(true))
	require.NoError(t, manager.SetClockSize(8.5))

	reopened, err := storage.Open(filepath.Join(dir, "ZoneClock", "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Zone:      "America/New_York",
		Label:     "Kitchen",
		DarkMode:  true,
		ClockSize: 8.5,
	}, NewManager(reopened).Settings())
}

func TestClampSize(t *testing.T) {
	cases := map[float64]float64{
		0:     2,
		2:     2,
		2.2:   2,
		2.3:   2.5,
		8.5:   8.5,
		11.9:  12,
		40:    12,
		-3.25: 2,
	}
	for input, want := range cases {
		assert.Equal(t, want, ClampSize(input), "input %v", input)
	}
}

func TestSetterErrorIsWrapped(t *testing.T) {
	manager := NewManager(failingKV{memoryKV{}})
	err := manager.SetLabel("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save customLabel")
	assert.Equal(t, "x", manager.Settings().Label)
}

func TestCaptions(t *testing.T) {
	assert.Equal(t, "Toggle Dark Mode", ModeCaption(false))
	assert.Equal(t, "Toggle Light Mode", ModeCaption(true))
	assert.Equal(t, "Clock Size: 8.5x", SizeCaption(8.5))
	assert.Equal(t, "Clock Size: 6.0x", SizeCaption(6))
}
