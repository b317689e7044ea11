package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitTest(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		want DragMode
	}{
		{name: "top left corner", x: 0, y: 0, want: DragTopLeft},
		{name: "top right corner", x: 199, y: 5, want: DragTopRight},
		{name: "bottom left corner", x: 12, y: 188, want: DragBottomLeft},
		{name: "bottom right corner", x: 195, y: 195, want: DragBottomRight},
		{name: "left edge", x: 3, y: 100, want: DragLeft},
		{name: "right edge", x: 190, y: 100, want: DragRight},
		{name: "top edge", x: 100, y: 12, want: DragTop},
		{name: "bottom edge", x: 100, y: 199, want: DragBottom},
		{name: "centre", x: 100, y: 100, want: DragMove},
		{name: "just inside grip", x: 13, y: 13, want: DragMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HitTest(200, 200, tc.x, tc.y, 96))
		})
	}
}

func TestHitTestScalesGrip(t *testing.T) {
	assert.Equal(t, DragMove, HitTest(200, 200, 14, 100, 96))
	assert.Equal(t, DragLeft, HitTest(200, 200, 14, 100, 144))
}

func TestDragMoveClampsToBounds(t *testing.T) {
	limits := NewLimits(desktop, 96)
	drag := Drag{Mode: DragMove, StartX: 50, StartY: 50, StartRect: RectFromSize(100, 100, 200, 200)}

	got := drag.Apply(80, 70, limits)
	assert.Equal(t, RectFromSize(130, 120, 200, 200), got)

	got = drag.Apply(-500, -500, limits)
	assert.Equal(t, RectFromSize(8, 8, 200, 200), got)
}

func TestDragBottomRightResizes(t *testing.T) {
	limits := NewLimits(desktop, 96)
	drag := Drag{Mode: DragBottomRight, StartX: 300, StartY: 300, StartRect: RectFromSize(100, 100, 200, 200)}

	got := drag.Apply(340, 360, limits)
	assert.Equal(t, RectFromSize(100, 100, 240, 260), got)

	got = drag.Apply(0, 0, limits)
	assert.Equal(t, RectFromSize(100, 100, 120, 120), got)
}

func TestDragTopLeftAnchorsBottomRight(t *testing.T) {
	limits := NewLimits(desktop, 96)
	start := RectFromSize(400, 400, 200, 200)
	drag := Drag{Mode: DragTopLeft, StartX: 400, StartY: 400, StartRect: start}

	got := drag.Apply(1000, 1000, limits)
	assert.Equal(t, start.Right, got.Right)
	assert.Equal(t, start.Bottom, got.Bottom)
	assert.Equal(t, 120, got.Width())
	assert.Equal(t, 120, got.Height())
}

func TestDragNoneKeepsRect(t *testing.T) {
	start := RectFromSize(10, 10, 200, 200)
	drag := Drag{Mode: DragNone, StartRect: start}

	assert.Equal(t, start, drag.Apply(500, 500, NewLimits(desktop, 96)))
}

func TestDragModeString(t *testing.T) {
	assert.Equal(t, "bottom_right", DragBottomRight.String())
	assert.Equal(t, "unknown", DragMode(42).String())
}
