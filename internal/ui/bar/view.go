package bar

import (
	"fmt"

	"wolftimer/internal/core/session"
)

// View holds every label and progress value the timer bar shows.
type View struct {
	QuestionLabel    string
	QuestionTime     string
	QuestionProgress float64
	BlockLabel       string
	BlockTime        string
	BlockProgress    float64
	StartStopLabel   string
	PauseLabel       string
	PauseEnabled     bool
}

// BuildView computes the bar contents for a snapshot. Progress values are
// fractions in [0, 1].
func BuildView(snapshot session.Snapshot) View {
	view := View{
		QuestionLabel:    fmt.Sprintf("Q: %d/%d", snapshot.CurrentQuestion, snapshot.Config.NumQuestionsPerBlock),
		QuestionTime:     session.FormatTime(snapshot.QuestionElapsedSeconds),
		QuestionProgress: float64(snapshot.QuestionProgress) / 100,
		BlockLabel:       fmt.Sprintf("Block %d/%d", snapshot.CurrentBlock, snapshot.Config.NumBlocks),
		BlockTime:        session.FormatTime(snapshot.BlockRemainingSeconds),
		BlockProgress:    float64(snapshot.BlockProgress) / 100,
		StartStopLabel:   "Stop",
		PauseLabel:       "Pause",
		PauseEnabled:     true,
	}
	if snapshot.Stopped {
		view.StartStopLabel = "Start"
		view.PauseEnabled = false
	}
	if snapshot.Paused {
		view.PauseLabel = "Resume"
	}
	return view
}
