// Package surface positions fyne windows in screen pixels.
package surface

import (
	"fyne.io/fyne/v2"

	"wolftimer/internal/core/geometry"
	"wolftimer/internal/platform"
)

// Surface tracks a window rectangle in physical pixels. Where the platform
// cannot move windows, only the size follows Place and the origin stays put.
type Surface struct {
	window fyne.Window
	rect   geometry.Rect
}

// New wraps window.
func New(window fyne.Window) *Surface {
	return &Surface{window: window}
}

// Desktop returns the virtual desktop rectangle.
func (surface *Surface) Desktop() geometry.Rect {
	return platform.VirtualDesktop()
}

// DPI returns the window's DPI.
func (surface *Surface) DPI() int {
	return platform.WindowDPI(surface.window)
}

// Limits returns the geometry limits at the window's DPI.
func (surface *Surface) Limits() geometry.Limits {
	return geometry.NewLimits(surface.Desktop(), surface.DPI())
}

// Rect returns the current window rectangle.
func (surface *Surface) Rect() geometry.Rect {
	if rect, ok := platform.WindowRect(surface.window); ok {
		surface.rect = rect
	}
	return surface.rect
}

// Cursor returns the pointer in screen pixels. local is the pointer inside
// the window content, used when the platform cannot report it.
func (surface *Surface) Cursor(local fyne.Position) (int, int) {
	if x, y, ok := platform.CursorPosition(); ok {
		return x, y
	}
	scale := surface.scale()
	return surface.rect.Left + int(local.X*scale), surface.rect.Top + int(local.Y*scale)
}

// Place moves and resizes the window.
func (surface *Surface) Place(rect geometry.Rect) {
	if platform.PlaceWindow(surface.window, rect) {
		surface.rect = rect
		return
	}
	surface.rect = geometry.RectFromSize(surface.rect.Left, surface.rect.Top, rect.Width(), rect.Height())
	scale := surface.scale()
	surface.window.Resize(fyne.NewSize(float32(rect.Width())/scale, float32(rect.Height())/scale))
}

// PixelsOf converts a content position to window pixels.
func (surface *Surface) PixelsOf(position fyne.Position) (int, int) {
	scale := surface.scale()
	return int(position.X * scale), int(position.Y * scale)
}

func (surface *Surface) scale() float32 {
	canvas := surface.window.Canvas()
	if canvas == nil || canvas.Scale() <= 0 {
		return 1
	}
	return canvas.Scale()
}
