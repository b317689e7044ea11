package geometry

// Base metrics of the cover square, in pixels at BaseDPI.
const (
	BaseDPI          = 96
	BaseInitialSize  = 260
	BaseMinSize      = 120
	BaseResizeGrip   = 12
	BaseScreenMargin = 8
)

// Rect is a screen rectangle in physical pixels. Right and Bottom are exclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// RectFromSize builds a Rect from its origin and size.
func RectFromSize(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent.
func (rect Rect) Width() int {
	return rect.Right - rect.Left
}

// Height returns the vertical extent.
func (rect Rect) Height() int {
	return rect.Bottom - rect.Top
}

// Offset moves the rectangle without resizing it.
func (rect Rect) Offset(dx, dy int) Rect {
	return Rect{
		Left:   rect.Left + dx,
		Top:    rect.Top + dy,
		Right:  rect.Right + dx,
		Bottom: rect.Bottom + dy,
	}
}

// ScaleForDPI scales a BaseDPI value to dpi, rounding to nearest.
// A non-positive dpi is treated as BaseDPI.
func ScaleForDPI(value, dpi int) int {
	if dpi <= 0 {
		dpi = BaseDPI
	}
	return mulDiv(value, dpi, BaseDPI)
}

func mulDiv(value, numerator, denominator int) int {
	product := int64(value) * int64(numerator)
	half := int64(denominator) / 2
	if product < 0 {
		return int((product - half) / int64(denominator))
	}
	return int((product + half) / int64(denominator))
}

// Limits bound where the cover may sit and how small it may get.
type Limits struct {
	Bounds    Rect
	MinWidth  int
	MinHeight int
}

// VirtualBounds insets the virtual desktop by the scaled screen margin.
// The result is never empty.
func VirtualBounds(desktop Rect, dpi int) Rect {
	margin := ScaleForDPI(BaseScreenMargin, dpi)
	bounds := Rect{
		Left:   desktop.Left + margin,
		Top:    desktop.Top + margin,
		Right:  desktop.Right - margin,
		Bottom: desktop.Bottom - margin,
	}
	if bounds.Right <= bounds.Left {
		bounds.Right = bounds.Left + 1
	}
	if bounds.Bottom <= bounds.Top {
		bounds.Bottom = bounds.Top + 1
	}
	return bounds
}

// NewLimits computes the limits for a virtual desktop at dpi. The minimum
// size never exceeds the available bounds.
func NewLimits(desktop Rect, dpi int) Limits {
	bounds := VirtualBounds(desktop, dpi)
	limits := Limits{
		Bounds:    bounds,
		MinWidth:  ScaleForDPI(BaseMinSize, dpi),
		MinHeight: ScaleForDPI(BaseMinSize, dpi),
	}
	if limits.MinWidth > bounds.Width() {
		limits.MinWidth = bounds.Width()
	}
	if limits.MinHeight > bounds.Height() {
		limits.MinHeight = bounds.Height()
	}
	return limits
}

// ClampToBounds slides rect inside bounds, keeping its size. An axis at least
// as large as the bounds is snapped to them.
func ClampToBounds(rect Rect, bounds Rect) Rect {
	width := rect.Width()
	height := rect.Height()

	if width >= bounds.Width() {
		rect.Left = bounds.Left
		rect.Right = bounds.Right
	} else {
		if rect.Left < bounds.Left {
			rect.Left = bounds.Left
			rect.Right = rect.Left + width
		}
		if rect.Right > bounds.Right {
			rect.Right = bounds.Right
			rect.Left = rect.Right - width
		}
	}

	if height >= bounds.Height() {
		rect.Top = bounds.Top
		rect.Bottom = bounds.Bottom
	} else {
		if rect.Top < bounds.Top {
			rect.Top = bounds.Top
			rect.Bottom = rect.Top + height
		}
		if rect.Bottom > bounds.Bottom {
			rect.Bottom = bounds.Bottom
			rect.Top = rect.Bottom - height
		}
	}
	return rect
}

// Enforce grows rect to the minimum size, shrinks it to the bounds and then
// clamps it inside them.
func (limits Limits) Enforce(rect Rect) Rect {
	if rect.Width() < limits.MinWidth {
		rect.Right = rect.Left + limits.MinWidth
	}
	if rect.Height() < limits.MinHeight {
		rect.Bottom = rect.Top + limits.MinHeight
	}

	if rect.Width() > limits.Bounds.Width() {
		rect.Right = rect.Left + limits.Bounds.Width()
	}
	if rect.Height() > limits.Bounds.Height() {
		rect.Bottom = rect.Top + limits.Bounds.Height()
	}

	return ClampToBounds(rect, limits.Bounds)
}

// EnforceResize keeps the edges opposite to the ones being dragged fixed
// while applying the bounds and minimum size, then runs Enforce.
func (limits Limits) EnforceResize(rect Rect, mode DragMode) Rect {
	switch {
	case mode.resizesLeft():
		if rect.Left < limits.Bounds.Left {
			rect.Left = limits.Bounds.Left
		}
		if rect.Width() < limits.MinWidth {
			rect.Left = rect.Right - limits.MinWidth
		}
	case mode.resizesRight():
		if rect.Right > limits.Bounds.Right {
			rect.Right = limits.Bounds.Right
		}
		if rect.Width() < limits.MinWidth {
			rect.Right = rect.Left + limits.MinWidth
		}
	}

	switch {
	case mode.resizesTop():
		if rect.Top < limits.Bounds.Top {
			rect.Top = limits.Bounds.Top
		}
		if rect.Height() < limits.MinHeight {
			rect.Top = rect.Bottom - limits.MinHeight
		}
	case mode.resizesBottom():
		if rect.Bottom > limits.Bounds.Bottom {
			rect.Bottom = limits.Bounds.Bottom
		}
		if rect.Height() < limits.MinHeight {
			rect.Bottom = rect.Top + limits.MinHeight
		}
	}

	return limits.Enforce(rect)
}

// DefaultRect centres a square of the scaled initial size in the bounds.
func DefaultRect(desktop Rect, dpi int) Rect {
	size := ScaleForDPI(BaseInitialSize, dpi)
	limits := NewLimits(desktop, dpi)
	bounds := limits.Bounds

	left := bounds.Left + (bounds.Width()-size)/2
	top := bounds.Top + (bounds.Height()-size)/2
	return limits.Enforce(RectFromSize(left, top, size, size))
}
