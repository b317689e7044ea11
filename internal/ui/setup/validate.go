package setup

import (
	"errors"
	"strconv"
	"strings"

	"wolftimer/internal/core/model"
)

// ErrInvalidInput is wrapped by every FieldError.
var ErrInvalidInput = errors.New("invalid input")

// Field names a form input.
type Field string

const (
	FieldMinutes   Field = "minutes"
	FieldBlocks    Field = "blocks"
	FieldQuestions Field = "questions"
)

// FieldError reports the first form input that failed validation.
type FieldError struct {
	Field   Field
	Message string
}

func (err *FieldError) Error() string {
	return err.Message
}

func (err *FieldError) Unwrap() error {
	return ErrInvalidInput
}

var fieldMessages = map[Field]string{
	FieldMinutes:   "Please enter a valid time per block (> 0).",
	FieldBlocks:    "Please enter a valid number of blocks (> 0).",
	FieldQuestions: "Please enter a valid number of questions (> 0).",
}

// Inputs are the raw form values.
type Inputs struct {
	Minutes   string
	Blocks    string
	Questions string
	Opacity   int
}

// InputsFrom fills the form values from config.
func InputsFrom(config model.SessionConfig) Inputs {
	return Inputs{
		Minutes:   strconv.Itoa(config.TimePerBlockMinutes),
		Blocks:    strconv.Itoa(config.NumBlocks),
		Questions: strconv.Itoa(config.NumQuestionsPerBlock),
		Opacity:   config.OpacityPercent,
	}
}

// ParseInputs validates the form in field order and returns a derived
// configuration. Opacity is clamped, never rejected.
func ParseInputs(inputs Inputs) (model.SessionConfig, error) {
	minutes, err := parsePositive(FieldMinutes, inputs.Minutes)
	if err != nil {
		return model.SessionConfig{}, err
	}
	blocks, err := parsePositive(FieldBlocks, inputs.Blocks)
	if err != nil {
		return model.SessionConfig{}, err
	}
	questions, err := parsePositive(FieldQuestions, inputs.Questions)
	if err != nil {
		return model.SessionConfig{}, err
	}

	config := model.SessionConfig{
		TimePerBlockMinutes:  minutes,
		NumBlocks:            blocks,
		NumQuestionsPerBlock: questions,
		OpacityPercent:       model.ClampOpacity(inputs.Opacity),
	}
	config.Derive()
	return config, nil
}

func parsePositive(field Field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, &FieldError{Field: field, Message: fieldMessages[field]}
	}
	return value, nil
}
