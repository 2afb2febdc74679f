package preferences

import (
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Storage keys.
const (
	KeyZone      = "selectedZone"
	KeyLabel     = "customLabel"
	KeyDarkMode  = "darkMode"
	KeyClockSize = "clockSize"
)

// Clock size bounds enforced by the size slider.
const (
	MinClockSize  = 2.0
	MaxClockSize  = 12.0
	ClockSizeStep = 0.5
)

// KV is the persistent key-value store preferences are kept in.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Settings defines editable user preferences.
type Settings struct {
	Zone      string
	Label     string
	DarkMode  bool
	ClockSize float64
}

// DefaultSettings returns default settings for ZoneClock.
func DefaultSettings() Settings {
	return Settings{
		Zone:      "UTC",
		Label:     "My Clock",
		DarkMode:  false,
		ClockSize: 6,
	}
}

// Load reads each preference from kv, falling back to its default.
func Load(kv KV) Settings {
	settings := DefaultSettings()
	if kv == nil {
		return settings
	}

	if zone, ok := kv.Get(KeyZone); ok && zone != "" {
		settings.Zone = zone
	}
	if label, ok := kv.Get(KeyLabel); ok && label != "" {
		settings.Label = label
	}
	if dark, ok := kv.Get(KeyDarkMode); ok {
		settings.DarkMode = dark == "true"
	}
	if size, ok := kv.Get(KeyClockSize); ok && size != "" {
		if parsed, err := strconv.ParseFloat(size, 64); err == nil && !math.IsNaN(parsed) {
			settings.ClockSize = ClampSize(parsed)
		}
	}
	return settings
}

// ClampSize snaps size into the slider range on a 0.5 grid.
func ClampSize(size float64) float64 {
	if math.IsNaN(size) {
		return DefaultSettings().ClockSize
	}
	size = math.Round(size/ClockSizeStep) * ClockSizeStep
	if size < MinClockSize {
		return MinClockSize
	}
	if size > MaxClockSize {
		return MaxClockSize
	}
	return size
}

// Manager holds the live settings and writes every change through to storage.
type Manager struct {
	mu       sync.Mutex
	kv       KV
	settings Settings
}

// NewManager loads settings from kv.
func NewManager(kv KV) *Manager {
	return &Manager{
		kv:       kv,
		settings: Load(kv),
	}
}

// Settings returns a copy of the current settings.
func (manager *Manager) Settings() Settings {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.settings
}

// SetZone updates the timezone identifier.
func (manager *Manager) SetZone(zone string) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.settings.Zone = zone
	return manager.persistLocked(KeyZone, zone)
}

// SetLabel updates the clock heading.
func (manager *Manager) SetLabel(label string) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.settings.Label = label
	return manager.persistLocked(KeyLabel, label)
}

// SetDarkMode updates the dark-mode flag.
func (manager *Manager) SetDarkMode(dark bool) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.settings.DarkMode = dark
	return manager.persistLocked(KeyDarkMode, strconv.FormatBool(dark))
}

// ToggleDarkMode flips the dark-mode flag and returns the new value.
func (manager *Manager) ToggleDarkMode() (bool, error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.settings.DarkMode = !manager.settings.DarkMode
	dark := manager.settings.DarkMode
	return dark, manager.persistLocked(KeyDarkMode, strconv.FormatBool(dark))
}

// SetClockSize updates the clock size after clamping it to the slider range.
func (manager *Manager) SetClockSize(size float64) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	size = ClampSize(size)
	manager.settings.ClockSize = size
	return manager.persistLocked(KeyClockSize, strconv.FormatFloat(size, 'f', -1, 64))
}

func (manager *Manager) persistLocked(key, value string) error {
	if manager.kv == nil {
		return nil
	}
	if err := manager.kv.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
