//go:build !windows

package platform

import (
	"fyne.io/fyne/v2"

	"wolftimer/internal/core/geometry"
)

// NativePlacement reports whether windows can be positioned in screen pixels.
const NativePlacement = false

// ApplyOpacity is a no-op; the window content carries the alpha instead.
func ApplyOpacity(window fyne.Window, alpha uint8) {}

// HideFromTaskbar is a no-op.
func HideFromTaskbar(window fyne.Window) {}

// PlaceWindow cannot position windows here and only reports false.
func PlaceWindow(window fyne.Window, rect geometry.Rect) bool {
	return false
}

// KeepOnTop is a no-op.
func KeepOnTop(window fyne.Window) {}

// WindowRect is unknown without native access.
func WindowRect(window fyne.Window) (geometry.Rect, bool) {
	return geometry.Rect{}, false
}

// CursorPosition is unknown without native access.
func CursorPosition() (int, int, bool) {
	return 0, 0, false
}

// VirtualDesktop returns a nominal full HD desktop.
func VirtualDesktop() geometry.Rect {
	return geometry.RectFromSize(0, 0, defaultScreenWidth, defaultScreenHeight)
}

// WindowDPI returns the base DPI.
func WindowDPI(window fyne.Window) int {
	return geometry.BaseDPI
}
