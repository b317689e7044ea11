package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"wolftimer/internal/core/session"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStartStop   func()
	OnTogglePause func()
	OnSettings    func()
	OnToggleCover func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	settings    *fyne.MenuItem
	coverItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{app: app}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Stop", handler(callbacks.OnStartStop))
	manager.pauseItem = fyne.NewMenuItem("Pause", handler(callbacks.OnTogglePause))
	manager.settings = fyne.NewMenuItem("Settings...", handler(callbacks.OnSettings))
	manager.coverItem = fyne.NewMenuItem("Toggle cover", handler(callbacks.OnToggleCover))
	manager.quitItem = fyne.NewMenuItem("Quit", handler(callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Render mirrors the session state in the menu.
func (manager *Manager) Render(snapshot session.Snapshot) {
	manager.statusLabel = fmt.Sprintf("Block %d/%d, Q %d/%d",
		snapshot.CurrentBlock, snapshot.Config.NumBlocks,
		snapshot.CurrentQuestion, snapshot.Config.NumQuestionsPerBlock)

	status := manager.statusLabel
	switch {
	case snapshot.Stopped:
		status = fmt.Sprintf("%s (stopped)", status)
	case snapshot.Paused:
		status = fmt.Sprintf("%s (paused)", status)
	}

	label := fmt.Sprintf("Status: %s", status)
	startLabel := "Stop"
	if snapshot.Stopped {
		startLabel = "Start"
	}
	pauseLabel := "Pause"
	if snapshot.Paused {
		pauseLabel = "Resume"
	}

	if label == manager.statusItem.Label &&
		startLabel == manager.startItem.Label &&
		pauseLabel == manager.pauseItem.Label &&
		snapshot.Stopped == manager.pauseItem.Disabled {
		return
	}
	manager.statusItem.Label = label
	manager.startItem.Label = startLabel
	manager.pauseItem.Label = pauseLabel
	manager.pauseItem.Disabled = snapshot.Stopped
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu("Wolf-Timer",
			manager.statusItem,
			manager.startItem,
			manager.pauseItem,
			manager.settings,
			manager.coverItem,
			manager.quitItem,
		))
	}
}

func handler(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}
