package cover

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"wolftimer/internal/core/geometry"
	"wolftimer/internal/ui/surface"
)

// dragArea is the black square itself. Pressing near an edge resizes the
// window, anywhere else moves it.
type dragArea struct {
	widget.BaseWidget
	surface   *surface.Surface
	hover     geometry.DragMode
	drag      geometry.Drag
	onMenu    func(fyne.Position)
	onDragEnd func()
}

func newDragArea(surface *surface.Surface, onMenu func(fyne.Position), onDragEnd func()) *dragArea {
	area := &dragArea{
		surface:   surface,
		hover:     geometry.DragMove,
		onMenu:    onMenu,
		onDragEnd: onDragEnd,
	}
	area.ExtendBaseWidget(area)
	return area
}

func (area *dragArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Black))
}

func (area *dragArea) modeAt(position fyne.Position) geometry.DragMode {
	width, height := area.surface.PixelsOf(fyne.NewPos(area.Size().Width, area.Size().Height))
	x, y := area.surface.PixelsOf(position)
	return geometry.HitTest(width, height, x, y, area.surface.DPI())
}

func (area *dragArea) Cursor() desktop.Cursor {
	if area.drag.Mode != geometry.DragNone {
		return cursorFor(area.drag.Mode)
	}
	return cursorFor(area.hover)
}

func (area *dragArea) MouseIn(event *desktop.MouseEvent) {
	area.hover = area.modeAt(event.Position)
}

func (area *dragArea) MouseMoved(event *desktop.MouseEvent) {
	area.hover = area.modeAt(event.Position)
}

func (area *dragArea) MouseOut() {
	area.hover = geometry.DragMove
}

func (area *dragArea) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := area.surface.Cursor(event.Position)
	area.drag = geometry.Drag{
		Mode:      area.modeAt(event.Position),
		StartX:    x,
		StartY:    y,
		StartRect: area.surface.Rect(),
	}
}

func (area *dragArea) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary && area.drag.Mode != geometry.DragNone {
		area.finish()
	}
}

func (area *dragArea) Dragged(event *fyne.DragEvent) {
	if area.drag.Mode == geometry.DragNone {
		return
	}
	x, y := area.surface.Cursor(event.Position)
	area.surface.Place(area.drag.Apply(x, y, area.surface.Limits()))
}

func (area *dragArea) DragEnd() {
	if area.drag.Mode != geometry.DragNone {
		area.finish()
	}
}

func (area *dragArea) TappedSecondary(event *fyne.PointEvent) {
	if area.onMenu != nil {
		area.onMenu(event.AbsolutePosition)
	}
}

func (area *dragArea) finish() {
	area.drag = geometry.Drag{}
	if area.onDragEnd != nil {
		area.onDragEnd()
	}
}

// cursorFor maps a drag mode to the closest standard cursor.
func cursorFor(mode geometry.DragMode) desktop.Cursor {
	switch mode {
	case geometry.DragLeft, geometry.DragRight:
		return desktop.HResizeCursor
	case geometry.DragTop, geometry.DragBottom:
		return desktop.VResizeCursor
	case geometry.DragTopLeft, geometry.DragTopRight, geometry.DragBottomLeft, geometry.DragBottomRight:
		return desktop.CrosshairCursor
	case geometry.DragMove:
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}
