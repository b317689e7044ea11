package geometry

// DragMode describes what a pointer drag on the cover does.
type DragMode int

const (
	DragNone DragMode = iota
	DragMove
	DragLeft
	DragRight
	DragTop
	DragBottom
	DragTopLeft
	DragTopRight
	DragBottomLeft
	DragBottomRight
)

var dragModeNames = [...]string{
	DragNone:        "none",
	DragMove:        "move",
	DragLeft:        "left",
	DragRight:       "right",
	DragTop:         "top",
	DragBottom:      "bottom",
	DragTopLeft:     "top_left",
	DragTopRight:    "top_right",
	DragBottomLeft:  "bottom_left",
	DragBottomRight: "bottom_right",
}

func (mode DragMode) String() string {
	if mode < 0 || int(mode) >= len(dragModeNames) {
		return "unknown"
	}
	return dragModeNames[mode]
}

func (mode DragMode) resizesLeft() bool {
	return mode == DragLeft || mode == DragTopLeft || mode == DragBottomLeft
}

func (mode DragMode) resizesRight() bool {
	return mode == DragRight || mode == DragTopRight || mode == DragBottomRight
}

func (mode DragMode) resizesTop() bool {
	return mode == DragTop || mode == DragTopLeft || mode == DragTopRight
}

func (mode DragMode) resizesBottom() bool {
	return mode == DragBottom || mode == DragBottomLeft || mode == DragBottomRight
}

// HitTest maps a point in client coordinates of a width x height surface to
// a drag mode. Corners win over edges; everything else moves the window.
func HitTest(width, height, x, y, dpi int) DragMode {
	grip := ScaleForDPI(BaseResizeGrip, dpi)

	left := x <= grip
	right := x >= width-grip
	top := y <= grip
	bottom := y >= height-grip

	switch {
	case top && left:
		return DragTopLeft
	case top && right:
		return DragTopRight
	case bottom && left:
		return DragBottomLeft
	case bottom && right:
		return DragBottomRight
	case left:
		return DragLeft
	case right:
		return DragRight
	case top:
		return DragTop
	case bottom:
		return DragBottom
	}
	return DragMove
}

// Drag tracks one pointer drag from press to release.
type Drag struct {
	Mode      DragMode
	StartX    int
	StartY    int
	StartRect Rect
}

// Apply returns the rectangle for the cursor at (x, y), measured from the
// press position.
func (drag Drag) Apply(x, y int, limits Limits) Rect {
	dx := x - drag.StartX
	dy := y - drag.StartY
	next := drag.StartRect

	switch drag.Mode {
	case DragNone:
		return next
	case DragMove:
		return ClampToBounds(next.Offset(dx, dy), limits.Bounds)
	}

	if drag.Mode.resizesLeft() {
		next.Left += dx
	}
	if drag.Mode.resizesRight() {
		next.Right += dx
	}
	if drag.Mode.resizesTop() {
		next.Top += dy
	}
	if drag.Mode.resizesBottom() {
		next.Bottom += dy
	}
	return limits.EnforceResize(next, drag.Mode)
}
