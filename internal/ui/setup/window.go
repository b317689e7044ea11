package setup

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"wolftimer/internal/core/model"
)

// Form shows the setup and settings window.
type Form struct {
	app fyne.App
}

// NewForm creates a form bound to app.
func NewForm(app fyne.App) *Form {
	return &Form{app: app}
}

// formWindow is one open instance of the form.
type formWindow struct {
	window    fyne.Window
	minutes   *widget.Entry
	blocks    *widget.Entry
	questions *widget.Entry
	opacity   *widget.Slider
	mode      model.SetupMode
	onOpacity func(int)
	done      func(model.SessionConfig, model.SetupResult)
	closed    bool
}

// Prompt opens the form prefilled with config. onOpacity is only called in
// edit mode. done runs exactly once, with the zero config on cancel.
func (form *Form) Prompt(config model.SessionConfig, mode model.SetupMode, onOpacity func(int), done func(model.SessionConfig, model.SetupResult)) {
	title := "Setup"
	acceptLabel := "Start"
	if mode == model.SetupModeEdit {
		title = "Settings"
		acceptLabel = "Apply"
	}

	window := form.app.NewWindow(title)
	if form.app.Icon() != nil {
		window.SetIcon(form.app.Icon())
	}

	inputs := InputsFrom(config)
	minutes := widget.NewEntry()
	minutes.SetText(inputs.Minutes)
	blocks := widget.NewEntry()
	blocks.SetText(inputs.Blocks)
	questions := widget.NewEntry()
	questions.SetText(inputs.Questions)

	opacity := widget.NewSlider(model.MinOpacityPercent, model.MaxOpacityPercent)
	opacity.Step = 1
	opacity.Value = float64(model.ClampOpacity(inputs.Opacity))
	opacityLabel := widget.NewLabel(percentLabel(opacity.Value))

	prompt := &formWindow{
		window:    window,
		minutes:   minutes,
		blocks:    blocks,
		questions: questions,
		opacity:   opacity,
		mode:      mode,
		onOpacity: onOpacity,
		done:      done,
	}

	opacity.OnChanged = func(value float64) {
		opacityLabel.SetText(percentLabel(value))
		if prompt.mode == model.SetupModeEdit && prompt.onOpacity != nil {
			prompt.onOpacity(int(value))
		}
	}

	fields := widget.NewForm(
		widget.NewFormItem("Time per block (min)", minutes),
		widget.NewFormItem("Number of blocks", blocks),
		widget.NewFormItem("Questions per block", questions),
		widget.NewFormItem("Transparency", container.NewBorder(nil, nil, nil, opacityLabel, opacity)),
	)

	acceptButton := widget.NewButton(acceptLabel, func() {
		prompt.submit(model.SetupAccepted)
	})
	acceptButton.Importance = widget.HighImportance
	coverButton := widget.NewButton("Cover only", func() {
		prompt.submit(model.SetupCoverOnly)
	})
	cancelButton := widget.NewButton("Cancel", prompt.cancel)
	buttons := container.NewHBox(acceptButton, coverButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, fields))
	window.SetCloseIntercept(prompt.cancel)
	window.Resize(fyne.NewSize(360, 220))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.Show()
	window.RequestFocus()
	window.Canvas().Focus(minutes)
}

func (prompt *formWindow) submit(result model.SetupResult) {
	config, err := ParseInputs(Inputs{
		Minutes:   prompt.minutes.Text,
		Blocks:    prompt.blocks.Text,
		Questions: prompt.questions.Text,
		Opacity:   int(prompt.opacity.Value),
	})
	if err != nil {
		prompt.showInvalid(err)
		return
	}
	prompt.finish(config, result)
}

func (prompt *formWindow) cancel() {
	prompt.finish(model.SessionConfig{}, model.SetupCancelled)
}

func (prompt *formWindow) finish(config model.SessionConfig, result model.SetupResult) {
	if prompt.closed {
		return
	}
	prompt.closed = true
	if prompt.done != nil {
		prompt.done(config, result)
	}
	prompt.window.Close()
}

func (prompt *formWindow) showInvalid(err error) {
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		dialog.ShowError(err, prompt.window)
		return
	}
	info := dialog.NewInformation("Invalid Input", fieldErr.Message, prompt.window)
	info.SetOnClosed(func() {
		prompt.window.Canvas().Focus(prompt.entryFor(fieldErr.Field))
	})
	info.Show()
}

func (prompt *formWindow) entryFor(field Field) *widget.Entry {
	switch field {
	case FieldBlocks:
		return prompt.blocks
	case FieldQuestions:
		return prompt.questions
	default:
		return prompt.minutes
	}
}

func percentLabel(value float64) string {
	return fmt.Sprintf("%d%%", int(value))
}
