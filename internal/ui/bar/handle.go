package bar

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"wolftimer/internal/core/geometry"
	"wolftimer/internal/ui/surface"
)

// moveHandle fills the bar background and drags the whole window.
type moveHandle struct {
	widget.BaseWidget
	surface *surface.Surface
	drag    geometry.Drag
}

func newMoveHandle(surface *surface.Surface) *moveHandle {
	handle := &moveHandle{surface: surface}
	handle.ExtendBaseWidget(handle)
	return handle
}

func (handle *moveHandle) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(nil))
}

func (handle *moveHandle) Dragged(event *fyne.DragEvent) {
	if handle.drag.Mode == geometry.DragNone {
		x, y := handle.surface.Cursor(event.Position)
		handle.drag = geometry.Drag{
			Mode:      geometry.DragMove,
			StartX:    x,
			StartY:    y,
			StartRect: handle.surface.Rect(),
		}
		return
	}
	x, y := handle.surface.Cursor(event.Position)
	handle.surface.Place(handle.drag.Apply(x, y, handle.surface.Limits()))
}

func (handle *moveHandle) DragEnd() {
	handle.drag = geometry.Drag{}
}
