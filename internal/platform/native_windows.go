//go:build windows

package platform

import (
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"wolftimer/internal/core/geometry"
)

// NativePlacement reports whether windows can be positioned in screen pixels.
const NativePlacement = true

const (
	gwlExStyle        int32 = -20
	wsExLayered             = 0x00080000
	wsExToolWindow          = 0x00000080
	lwaAlpha                = 0x2
	hwndTopmost             = ^uintptr(0)
	swpNoSize               = 0x0001
	swpNoMove               = 0x0002
	swpNoActivate           = 0x0010
	smXVirtualScreen        = 76
	smYVirtualScreen        = 77
	smCXVirtualScreen       = 78
	smCYVirtualScreen       = 79
)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
	procGetWindowRect              = user32DLL.NewProc("GetWindowRect")
	procGetCursorPos               = user32DLL.NewProc("GetCursorPos")
	procGetSystemMetrics           = user32DLL.NewProc("GetSystemMetrics")
	procGetDpiForWindow            = user32DLL.NewProc("GetDpiForWindow")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winPoint struct {
	X, Y int32
}

// ApplyOpacity makes window layered and sets its alpha.
func ApplyOpacity(window fyne.Window, alpha uint8) {
	withHWND(window, func(hwnd uintptr) {
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		if style&wsExLayered == 0 {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), style|wsExLayered)
		}
		procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), uintptr(lwaAlpha))
	})
}

// HideFromTaskbar turns window into a tool window.
func HideFromTaskbar(window fyne.Window) {
	withHWND(window, func(hwnd uintptr) {
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		if style&wsExToolWindow == 0 {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), style|wsExToolWindow)
		}
	})
}

// PlaceWindow moves and sizes window in screen pixels and keeps it topmost.
func PlaceWindow(window fyne.Window, rect geometry.Rect) bool {
	placed := false
	withHWND(window, func(hwnd uintptr) {
		result, _, _ := procSetWindowPos.Call(
			hwnd,
			hwndTopmost,
			intToUintptr(rect.Left),
			intToUintptr(rect.Top),
			intToUintptr(rect.Width()),
			intToUintptr(rect.Height()),
			swpNoActivate,
		)
		placed = result != 0
	})
	return placed
}

// KeepOnTop raises window above non-topmost windows without activating it.
func KeepOnTop(window fyne.Window) {
	withHWND(window, func(hwnd uintptr) {
		procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	})
}

// WindowRect returns the outer window rectangle in screen pixels.
func WindowRect(window fyne.Window) (geometry.Rect, bool) {
	var rect winRect
	found := false
	withHWND(window, func(hwnd uintptr) {
		result, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
		found = result != 0
	})
	if !found {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		Left:   int(rect.Left),
		Top:    int(rect.Top),
		Right:  int(rect.Right),
		Bottom: int(rect.Bottom),
	}, true
}

// CursorPosition returns the pointer location in screen pixels.
func CursorPosition() (int, int, bool) {
	var point winPoint
	result, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&point)))
	if result == 0 {
		return 0, 0, false
	}
	return int(point.X), int(point.Y), true
}

// VirtualDesktop returns the rectangle spanning every monitor.
func VirtualDesktop() geometry.Rect {
	x := systemMetric(smXVirtualScreen)
	y := systemMetric(smYVirtualScreen)
	width := systemMetric(smCXVirtualScreen)
	height := systemMetric(smCYVirtualScreen)
	if width <= 0 || height <= 0 {
		return geometry.RectFromSize(0, 0, defaultScreenWidth, defaultScreenHeight)
	}
	return geometry.RectFromSize(x, y, width, height)
}

// WindowDPI returns the DPI of the monitor holding window.
func WindowDPI(window fyne.Window) int {
	dpi := 0
	withHWND(window, func(hwnd uintptr) {
		if procGetDpiForWindow.Find() != nil {
			return
		}
		result, _, _ := procGetDpiForWindow.Call(hwnd)
		dpi = int(result)
	})
	if dpi <= 0 {
		return geometry.BaseDPI
	}
	return dpi
}

func withHWND(window fyne.Window, apply func(hwnd uintptr)) {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}
		apply(hwnd)
	})
}

func systemMetric(index int) int {
	result, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(int32(result))
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}

func intToUintptr(value int) uintptr {
	return int32ToUintptr(int32(value))
}
