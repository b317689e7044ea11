// Package cover shows the opaque square used to hide part of the screen.
package cover

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"wolftimer/internal/core/geometry"
	"wolftimer/internal/platform"
	"wolftimer/internal/ui/surface"
)

// ToggleShortcut is the key chord that shows or hides the cover.
var ToggleShortcut = &desktop.CustomShortcut{KeyName: fyne.KeySpace, Modifier: fyne.KeyModifierShift}

// Callbacks defines context menu handlers.
type Callbacks struct {
	OnSettings func()
	OnClose    func()
}

// Window is the cover square.
type Window struct {
	window    fyne.Window
	surface   *surface.Surface
	store     geometry.PlacementStore
	logger    logrus.FieldLogger
	callbacks Callbacks
	visible   bool
	restored  bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the cover window. Its placement is restored from store on the
// first Show.
func New(app fyne.App, store geometry.PlacementStore, callbacks Callbacks, logger logrus.FieldLogger) *Window {
	window := app.NewWindow("Cover")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	cover := &Window{
		window:    window,
		surface:   surface.New(window),
		store:     store,
		logger:    logger.WithField("pkg", "cover"),
		callbacks: callbacks,
	}
	window.SetContent(newDragArea(cover.surface, cover.showMenu, cover.save))
	window.SetCloseIntercept(func() {
		cover.save()
		if callbacks.OnClose != nil {
			callbacks.OnClose()
		}
	})
	return cover
}

// Show displays the cover on top of other windows.
func (cover *Window) Show() {
	cover.window.Show()
	platform.HideFromTaskbar(cover.window)
	if !cover.restored {
		cover.restored = true
		cover.restore()
	}
	platform.KeepOnTop(cover.window)
	cover.visible = true
}

// Hide saves the placement and hides the cover.
func (cover *Window) Hide() {
	if cover.visible {
		cover.save()
	}
	cover.window.Hide()
	cover.visible = false
}

// Visible reports whether the cover is shown.
func (cover *Window) Visible() bool {
	return cover.visible
}

// Close saves the placement. The window itself goes away with the app.
func (cover *Window) Close() {
	if cover.restored {
		cover.save()
	}
}

// Window exposes the underlying fyne window.
func (cover *Window) Window() fyne.Window {
	return cover.window
}

// BindToggle registers ToggleShortcut on window.
func BindToggle(window fyne.Window, toggle func()) {
	window.Canvas().AddShortcut(ToggleShortcut, func(fyne.Shortcut) {
		toggle()
	})
}

func (cover *Window) restore() {
	placement, err := cover.store.LoadPlacement()
	if err != nil {
		cover.logger.WithError(err).Warn("load cover placement")
	}
	rect := geometry.Restore(placement, cover.surface.Desktop(), cover.surface.DPI())
	cover.surface.Place(rect)
}

func (cover *Window) save() {
	if err := cover.store.SavePlacement(geometry.Capture(cover.surface.Rect())); err != nil {
		cover.logger.WithError(err).Warn("save cover placement")
	}
}

func (cover *Window) showMenu(position fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Settings...", func() {
			if cover.callbacks.OnSettings != nil {
				cover.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Close", func() {
			if cover.callbacks.OnClose != nil {
				cover.callbacks.OnClose()
			}
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, cover.window.Canvas(), position)
}
