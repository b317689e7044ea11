package bar

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"wolftimer/internal/core/geometry"
	"wolftimer/internal/core/model"
	"wolftimer/internal/core/session"
	"wolftimer/internal/platform"
	"wolftimer/internal/ui/surface"
)

// Callbacks defines bar button handlers.
type Callbacks struct {
	OnStartStop   func()
	OnTogglePause func()
	OnSettings    func()
	OnClose       func()
}

// Window is the always-on-top timer bar.
type Window struct {
	window           fyne.Window
	surface          *surface.Surface
	background       *canvas.Rectangle
	questionLabel    *canvas.Text
	questionTime     *canvas.Text
	questionProgress *widget.ProgressBar
	blockLabel       *canvas.Text
	blockTime        *canvas.Text
	blockProgress    *widget.ProgressBar
	startStopButton  *widget.Button
	pauseButton      *widget.Button
	placed           bool
}

const (
	baseWidth     = 600
	baseHeight    = 56
	baseTopOffset = 50
	labelWidth    = float32(70)
	timeWidth     = float32(50)
	buttonWidth   = float32(60)
	smallWidth    = float32(28)
	rowSpacing    = float32(4)
	fontSize      = float32(14)
)

var (
	backgroundColor = color.NRGBA{R: 45, G: 45, B: 48, A: 255}
	textColor       = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the timer bar. It stays hidden until Show.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Wolf-Timer")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	bar := &Window{
		window:           window,
		surface:          surface.New(window),
		background:       canvas.NewRectangle(backgroundColor),
		questionLabel:    newText("Q: 1/1", fyne.TextAlignLeading),
		questionTime:     newText("00:00", fyne.TextAlignCenter),
		questionProgress: widget.NewProgressBar(),
		blockLabel:       newText("Block 1/1", fyne.TextAlignLeading),
		blockTime:        newText("00:00", fyne.TextAlignCenter),
		blockProgress:    widget.NewProgressBar(),
	}
	bar.questionProgress.TextFormatter = func() string { return "" }
	bar.blockProgress.TextFormatter = func() string { return "" }

	settingsButton := widget.NewButton("⚙", callback(callbacks.OnSettings))
	closeButton := widget.NewButton("X", callback(callbacks.OnClose))
	bar.startStopButton = widget.NewButton("Stop", callback(callbacks.OnStartStop))
	bar.pauseButton = widget.NewButton("Pause", callback(callbacks.OnTogglePause))

	questionRow := container.New(&rowLayout{buttonWidth: smallWidth},
		bar.questionLabel, bar.questionTime, bar.questionProgress, settingsButton, closeButton)
	blockRow := container.New(&rowLayout{buttonWidth: buttonWidth},
		bar.blockLabel, bar.blockTime, bar.blockProgress, bar.startStopButton, bar.pauseButton)
	rows := container.NewGridWithRows(2, questionRow, blockRow)

	handle := newMoveHandle(bar.surface)
	window.SetContent(container.NewStack(bar.background, handle, container.NewPadded(rows)))
	window.SetCloseIntercept(callback(callbacks.OnClose))
	window.Resize(fyne.NewSize(baseWidth, baseHeight))
	return bar
}

// Render updates every label from snapshot.
func (bar *Window) Render(snapshot session.Snapshot) {
	view := BuildView(snapshot)
	setText(bar.questionLabel, view.QuestionLabel)
	setText(bar.questionTime, view.QuestionTime)
	bar.questionProgress.SetValue(view.QuestionProgress)
	setText(bar.blockLabel, view.BlockLabel)
	setText(bar.blockTime, view.BlockTime)
	bar.blockProgress.SetValue(view.BlockProgress)
	bar.startStopButton.SetText(view.StartStopLabel)
	bar.pauseButton.SetText(view.PauseLabel)
	if view.PauseEnabled {
		bar.pauseButton.Enable()
	} else {
		bar.pauseButton.Disable()
	}
}

// SetOpacity applies the window alpha for percent.
func (bar *Window) SetOpacity(percent int) {
	alpha := model.SessionConfig{OpacityPercent: percent}.Alpha()
	if platform.NativePlacement {
		platform.ApplyOpacity(bar.window, alpha)
		return
	}
	fill := backgroundColor
	fill.A = alpha
	bar.background.FillColor = fill
	canvas.Refresh(bar.background)
}

// Show displays the bar, placing it top-centre the first time.
func (bar *Window) Show() {
	bar.window.Show()
	platform.HideFromTaskbar(bar.window)
	if !bar.placed {
		bar.placed = true
		bar.surface.Place(initialRect(bar.surface.Desktop(), bar.surface.DPI()))
	}
	platform.KeepOnTop(bar.window)
}

// Hide hides the bar.
func (bar *Window) Hide() {
	bar.window.Hide()
}

// Window exposes the underlying fyne window, e.g. as a dialog parent.
func (bar *Window) Window() fyne.Window {
	return bar.window
}

func initialRect(desktop geometry.Rect, dpi int) geometry.Rect {
	width := geometry.ScaleForDPI(baseWidth, dpi)
	height := geometry.ScaleForDPI(baseHeight, dpi)
	left := desktop.Left + (desktop.Width()-width)/2
	top := desktop.Top + geometry.ScaleForDPI(baseTopOffset, dpi)
	bounds := geometry.VirtualBounds(desktop, 0)
	return geometry.ClampToBounds(geometry.RectFromSize(left, top, width, height), bounds)
}

func newText(text string, alignment fyne.TextAlign) *canvas.Text {
	label := canvas.NewText(text, textColor)
	label.Alignment = alignment
	label.TextSize = fontSize
	return label
}

func setText(label *canvas.Text, text string) {
	if label.Text == text {
		return
	}
	label.Text = text
	label.Refresh()
}

func callback(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}

// rowLayout lays out label, time, progress and two buttons left to right.
// The progress bar takes the remaining width.
type rowLayout struct {
	buttonWidth float32
}

func (layout *rowLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 5 {
		return
	}
	fixed := labelWidth + timeWidth + 2*layout.buttonWidth + 3*rowSpacing
	progressWidth := size.Width - fixed
	if progressWidth < 0 {
		progressWidth = 0
	}

	widths := []float32{labelWidth, timeWidth, progressWidth, layout.buttonWidth, layout.buttonWidth}
	x := float32(0)
	for i, object := range objects[:5] {
		height := size.Height
		y := float32(0)
		if i == 2 {
			height = size.Height / 2
			y = (size.Height - height) / 2
		}
		object.Move(fyne.NewPos(x, y))
		object.Resize(fyne.NewSize(widths[i], height))
		x += widths[i]
		if i >= 1 && i < 4 {
			x += rowSpacing
		}
	}
}

func (layout *rowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	height := float32(0)
	for _, object := range objects {
		if object.MinSize().Height > height {
			height = object.MinSize().Height
		}
	}
	return fyne.NewSize(labelWidth+timeWidth+2*layout.buttonWidth+3*rowSpacing, height)
}
