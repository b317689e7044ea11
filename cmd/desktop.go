package main

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wolftimer/internal/app"
	"wolftimer/internal/core/model"
	"wolftimer/internal/core/session"
	"wolftimer/internal/platform"
	"wolftimer/internal/storage"
	"wolftimer/internal/ui/bar"
	"wolftimer/internal/ui/cover"
	"wolftimer/internal/ui/setup"
	"wolftimer/internal/ui/sound"
	"wolftimer/internal/ui/tray"
	"wolftimer/resources"
)

const eventBuffer = 16

func runDesktopCmd(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	dir, err := appDir()
	if err != nil {
		return err
	}
	config, err := loadSessionConfig(cmd, dir)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName, logger)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.WithError(err).Info("another instance is running")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconName))

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Wolf-Timer is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayWindow(trayWindow)
	}

	shell := &desktopShell{
		app:    fyneApp,
		form:   setup.NewForm(fyneApp),
		store:  storage.NewPlacementFile(storage.PlacementPath(dir)),
		logger: logger,
	}
	guard.Serve(func() {
		fyne.Do(func() {
			shell.dispatch(app.CommandActivate)
		})
	})

	shell.form.Prompt(config, model.SetupModeFresh, nil, func(config model.SessionConfig, result model.SetupResult) {
		if result == model.SetupCancelled {
			fyneApp.Quit()
			return
		}
		shell.start(config, result)
	})

	fyneApp.Run()
	shell.shutdown()
	return nil
}

// desktopShell wires the session clock to the fyne windows. Everything but
// the clock and event pump runs on the fyne goroutine.
type desktopShell struct {
	app    fyne.App
	form   *setup.Form
	store  *storage.PlacementFile
	logger logrus.FieldLogger

	runner     *session.Runner
	controller *app.Controller
	cover      *cover.Window
	tray       *tray.Manager
	cancel     context.CancelFunc
	done       chan struct{}
}

func (shell *desktopShell) start(config model.SessionConfig, result model.SetupResult) {
	shell.runner = session.NewRunner(config, session.DefaultOptions().WithLogger(shell.logger))

	timerBar := bar.New(shell.app, bar.Callbacks{
		OnStartStop:   shell.command(app.CommandStartStop),
		OnTogglePause: shell.command(app.CommandTogglePause),
		OnSettings:    shell.command(app.CommandOpenSettings),
		OnClose:       shell.command(app.CommandQuit),
	})
	shell.cover = cover.New(shell.app, shell.store, cover.Callbacks{
		OnSettings: shell.command(app.CommandOpenSettings),
		OnClose:    shell.command(app.CommandQuit),
	}, shell.logger)
	cover.BindToggle(timerBar.Window(), shell.command(app.CommandToggleCover))
	cover.BindToggle(shell.cover.Window(), shell.command(app.CommandToggleCover))

	shell.controller = app.New(shell.runner, app.Views{
		Timer:    timerBar,
		Cover:    shell.cover,
		Settings: shell.form,
		Notifier: &completionNotice{app: shell.app, chime: shell.loadChime()},
		Quit:     shell.app.Quit,
	}, shell.logger)

	if desktopApp, ok := shell.app.(desktop.App); ok {
		shell.tray = tray.New(desktopApp, tray.Callbacks{
			OnStartStop:   shell.command(app.CommandStartStop),
			OnTogglePause: shell.command(app.CommandTogglePause),
			OnSettings:    shell.command(app.CommandOpenSettings),
			OnToggleCover: shell.command(app.CommandToggleCover),
			OnQuit:        shell.command(app.CommandQuit),
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconName))
	} else {
		shell.logger.Debug("system tray unsupported on this platform")
	}

	events := shell.runner.Subscribe(eventBuffer)
	ctx, cancel := context.WithCancel(context.Background())
	shell.cancel = cancel
	shell.done = make(chan struct{})

	go shell.pump(events)
	go func() {
		defer close(shell.done)
		if err := shell.runner.Run(ctx); err == nil {
			fyne.Do(shell.controller.Completed)
		} else if !errors.Is(err, context.Canceled) {
			shell.logger.WithError(err).Error("session clock stopped")
		}
	}()

	shell.controller.Begin(result)
	shell.renderTray(shell.runner.Snapshot())
}

func (shell *desktopShell) loadChime() *sound.Chime {
	resource, err := resources.Sound(resources.CompletionSound)
	if err != nil {
		shell.logger.WithError(err).Warn("load completion sound")
		return nil
	}
	chime, err := sound.Decode(resource.Content(), shell.logger)
	if err != nil {
		shell.logger.WithError(err).Warn("decode completion sound")
		return nil
	}
	return chime
}

func (shell *desktopShell) pump(events <-chan session.Event) {
	for event := range events {
		event := event
		fyne.Do(func() {
			shell.controller.HandleEvent(event)
			shell.renderTray(event.Snapshot)
		})
	}
}

func (shell *desktopShell) command(command app.Command) func() {
	return func() {
		shell.dispatch(command)
	}
}

func (shell *desktopShell) dispatch(command app.Command) {
	if shell.controller == nil {
		return
	}
	shell.controller.Dispatch(command)
	shell.renderTray(shell.runner.Snapshot())
}

func (shell *desktopShell) renderTray(snapshot session.Snapshot) {
	if shell.tray != nil {
		shell.tray.Render(snapshot)
	}
}

func (shell *desktopShell) shutdown() {
	if shell.cancel == nil {
		return
	}
	shell.cancel()
	<-shell.done
	shell.cover.Close()
}

// completionNotice shows the end-of-session message in its own window.
type completionNotice struct {
	app   fyne.App
	chime *sound.Chime
}

func (notice *completionNotice) NotifyCompleted(done func()) {
	if notice.chime != nil {
		notice.chime.Play()
	}
	window := notice.app.NewWindow("Timer Finished")
	finished := false
	finish := func() {
		if finished {
			return
		}
		finished = true
		window.Close()
		done()
	}

	ok := widget.NewButton("OK", finish)
	ok.Importance = widget.HighImportance
	window.SetContent(container.NewVBox(
		widget.NewLabel("All blocks completed!"),
		container.NewCenter(ok),
	))
	window.SetCloseIntercept(finish)
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.Show()
	window.RequestFocus()
}
