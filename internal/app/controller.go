package app

import (
	"github.com/sirupsen/logrus"

	"wolftimer/internal/core/model"
	"wolftimer/internal/core/session"
)

// Command is a user action routed through the controller.
type Command int

const (
	CommandStartStop Command = iota
	CommandTogglePause
	CommandOpenSettings
	CommandToggleCover
	CommandCoverOnly
	CommandActivate
	CommandQuit
)

var commandNames = map[Command]string{
	CommandStartStop:    "start_stop",
	CommandTogglePause:  "toggle_pause",
	CommandOpenSettings: "open_settings",
	CommandToggleCover:  "toggle_cover",
	CommandCoverOnly:    "cover_only",
	CommandActivate:     "activate",
	CommandQuit:         "quit",
}

func (command Command) String() string {
	if name, ok := commandNames[command]; ok {
		return name
	}
	return "unknown"
}

// Clock is the session owner the controller drives.
type Clock interface {
	Snapshot() session.Snapshot
	Start()
	Stop()
	Halt()
	TogglePause()
	Reconfigure(config model.SessionConfig) bool
}

// TimerView renders the timer bar.
type TimerView interface {
	Render(snapshot session.Snapshot)
	SetOpacity(percent int)
	Show()
	Hide()
}

// CoverView is the opaque cover square.
type CoverView interface {
	Show()
	Hide()
	Visible() bool
}

// SettingsPrompt collects session parameters. onOpacity previews slider
// moves; done receives the edited configuration and how the form closed.
type SettingsPrompt interface {
	Prompt(config model.SessionConfig, mode model.SetupMode, onOpacity func(int), done func(model.SessionConfig, model.SetupResult))
}

// Notifier tells the user the session is over and calls done when dismissed.
type Notifier interface {
	NotifyCompleted(done func())
}

// Views bundles the collaborators of a Controller.
type Views struct {
	Timer    TimerView
	Cover    CoverView
	Settings SettingsPrompt
	Notifier Notifier
	Quit     func()
}

// Controller applies user commands and clock events to the views. It is
// meant to be called from the UI goroutine only.
type Controller struct {
	clock    Clock
	views    Views
	logger   logrus.FieldLogger
	commands map[Command]func()

	coverOnly    bool
	settingsOpen bool
	completed    bool
}

// New creates a Controller. The views are not shown until Begin.
func New(clock Clock, views Views, logger logrus.FieldLogger) *Controller {
	controller := &Controller{
		clock:  clock,
		views:  views,
		logger: logger.WithField("pkg", "app"),
	}
	controller.commands = map[Command]func(){
		CommandStartStop:    controller.startStop,
		CommandTogglePause:  controller.togglePause,
		CommandOpenSettings: controller.openSettings,
		CommandToggleCover:  controller.toggleCover,
		CommandCoverOnly:    controller.enterCoverOnly,
		CommandActivate:     controller.activate,
		CommandQuit:         controller.quit,
	}
	return controller
}

// Begin shows the views for the outcome of the initial setup form.
func (controller *Controller) Begin(result model.SetupResult) {
	snapshot := controller.clock.Snapshot()
	controller.views.Timer.SetOpacity(snapshot.Config.OpacityPercent)
	controller.views.Timer.Render(snapshot)
	controller.views.Timer.Show()
	controller.views.Cover.Show()

	if result == model.SetupCoverOnly {
		controller.enterCoverOnly()
	}
}

// Dispatch runs the handler registered for command.
func (controller *Controller) Dispatch(command Command) {
	handler, ok := controller.commands[command]
	if !ok {
		controller.logger.WithField("command", command).Warn("unknown command")
		return
	}
	if controller.completed && command != CommandQuit {
		return
	}
	controller.logger.WithField("command", command).Debug("dispatch")
	handler()
}

// HandleEvent applies a clock event.
func (controller *Controller) HandleEvent(event session.Event) {
	if controller.completed {
		return
	}
	controller.views.Timer.Render(event.Snapshot)
	if event.Type == session.EventCompleted {
		controller.Completed()
	}
}

// Completed halts the session and announces the end once; quitting follows
// the dismissal. Later calls do nothing.
func (controller *Controller) Completed() {
	if controller.completed {
		return
	}
	controller.completed = true
	controller.clock.Halt()
	controller.logger.Info("all blocks completed")
	controller.views.Notifier.NotifyCompleted(controller.quit)
}

// CoverOnly reports whether only the cover square is shown.
func (controller *Controller) CoverOnly() bool {
	return controller.coverOnly
}

func (controller *Controller) startStop() {
	if controller.clock.Snapshot().Stopped {
		controller.clock.Start()
	} else {
		controller.clock.Stop()
	}
	controller.render()
}

func (controller *Controller) togglePause() {
	controller.clock.TogglePause()
	controller.render()
}

func (controller *Controller) toggleCover() {
	if controller.views.Cover.Visible() {
		controller.views.Cover.Hide()
		return
	}
	controller.views.Cover.Show()
}

func (controller *Controller) enterCoverOnly() {
	controller.coverOnly = true
	controller.clock.Halt()
	controller.render()
	controller.views.Timer.Hide()
	controller.views.Cover.Show()
}

func (controller *Controller) activate() {
	if controller.coverOnly {
		controller.views.Cover.Show()
		return
	}
	controller.views.Timer.Show()
}

func (controller *Controller) quit() {
	if controller.views.Quit != nil {
		controller.views.Quit()
	}
}

func (controller *Controller) render() {
	controller.views.Timer.Render(controller.clock.Snapshot())
}

// openSettings pauses a running session while the form is open and applies
// the result when it closes.
func (controller *Controller) openSettings() {
	if controller.settingsOpen {
		return
	}
	controller.settingsOpen = true

	before := controller.clock.Snapshot()
	wasCoverOnly := controller.coverOnly
	wasRunning := before.Running()
	if wasRunning {
		controller.clock.TogglePause()
		controller.render()
	}

	preview := func(percent int) {
		controller.views.Timer.SetOpacity(percent)
	}
	controller.views.Settings.Prompt(before.Config, model.SetupModeEdit, preview, func(config model.SessionConfig, result model.SetupResult) {
		controller.settingsOpen = false
		if controller.completed {
			return
		}
		controller.applySettings(before, config, result, wasRunning, wasCoverOnly)
	})
}

func (controller *Controller) applySettings(before session.Snapshot, config model.SessionConfig, result model.SetupResult, wasRunning, wasCoverOnly bool) {
	if result == model.SetupCancelled {
		controller.views.Timer.SetOpacity(before.Config.OpacityPercent)
		if wasRunning {
			controller.clock.TogglePause()
		}
		if wasCoverOnly {
			controller.views.Timer.Hide()
			controller.views.Cover.Show()
		}
		controller.render()
		return
	}

	config.OpacityPercent = model.ClampOpacity(config.OpacityPercent)
	timingChanged := controller.clock.Reconfigure(config)
	controller.views.Timer.SetOpacity(config.OpacityPercent)
	controller.logger.
		WithField("timing_changed", timingChanged).
		WithField("result", result).
		Info("settings applied")

	if result == model.SetupCoverOnly {
		controller.enterCoverOnly()
		return
	}

	controller.coverOnly = false
	if wasRunning {
		controller.clock.Start()
	}
	if wasCoverOnly {
		controller.views.Timer.Show()
	}
	controller.render()
}
