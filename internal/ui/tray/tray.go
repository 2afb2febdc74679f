package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

const menuTitle = "ZoneClock"

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow           func()
	OnStartCountdown func()
	OnToggleDarkMode func()
	OnQuit           func()
}

// Manager handles system tray state.
type Manager struct {
	app         MenuHost
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	callbacks   Callbacks
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "No countdown",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start countdown", func() {
		if manager.callbacks.OnStartCountdown != nil {
			manager.callbacks.OnStartCountdown()
		}
	})

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status line.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetCountdownActive disables the start item while a countdown exists.
func (manager *Manager) SetCountdownActive(active bool) {
	if manager.startItem.Disabled == active {
		return
	}
	manager.startItem.Disabled = active
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Countdown: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show clock", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.startItem,
		fyne.NewMenuItem("Toggle dark mode", func() {
			if manager.callbacks.OnToggleDarkMode != nil {
				manager.callbacks.OnToggleDarkMode()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
