package geometry

// Placement is a persisted cover rectangle. Nil fields were never written.
// Size is the single-edge value older versions stored.
type Placement struct {
	X      *int
	Y      *int
	Width  *int
	Height *int
	Size   *int
}

// PlacementStore loads and saves cover placements.
type PlacementStore interface {
	LoadPlacement() (Placement, error)
	SavePlacement(Placement) error
}

// Capture records rect as a placement.
func Capture(rect Rect) Placement {
	x, y := rect.Left, rect.Top
	width, height := rect.Width(), rect.Height()
	return Placement{X: &x, Y: &y, Width: &width, Height: &height}
}

// Restore starts from the default rectangle, overrides whatever the
// placement holds and enforces the limits. Non-positive sizes are ignored.
func Restore(placement Placement, desktop Rect, dpi int) Rect {
	rect := DefaultRect(desktop, dpi)
	width := rect.Width()
	height := rect.Height()

	if placement.X != nil {
		rect.Left = *placement.X
	}
	if placement.Y != nil {
		rect.Top = *placement.Y
	}

	if positive(placement.Width) {
		width = *placement.Width
	} else if positive(placement.Size) {
		width = *placement.Size
	}
	if positive(placement.Height) {
		height = *placement.Height
	} else if positive(placement.Size) {
		height = *placement.Size
	}

	rect.Right = rect.Left + width
	rect.Bottom = rect.Top + height
	return NewLimits(desktop, dpi).Enforce(rect)
}

func positive(value *int) bool {
	return value != nil && *value > 0
}
