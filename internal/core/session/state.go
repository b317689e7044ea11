package session

import (
	"fmt"

	"wolftimer/internal/core/model"
)

// State is the nested countdown engine. It is not safe for concurrent use;
// a single owner ticks it and applies user commands.
type State struct {
	config model.SessionConfig

	remainingTotal  int
	currentQuestion int
	currentBlock    int
	blockElapsed    int
	questionElapsed int
	paused          bool
	stopped         bool
}

// New returns an initialized State.
func New(config model.SessionConfig) *State {
	state := &State{}
	state.Initialize(config)
	return state
}

// Initialize stores a copy of config, derives it and resets the counters.
func (state *State) Initialize(config model.SessionConfig) {
	config.Derive()
	state.config = config
	state.Reset()
}

// Reset rewinds every counter and leaves the session running.
func (state *State) Reset() {
	state.remainingTotal = state.config.TotalSeconds()
	state.currentQuestion = 1
	state.currentBlock = 1
	state.blockElapsed = 0
	state.questionElapsed = 0
	state.paused = false
	state.stopped = false
}

// Tick advances the countdown by one second.
// The question boundary is checked before the block boundary, and a block
// boundary overwrites whatever the question check reported.
func (state *State) Tick() Signal {
	if state.paused || state.stopped {
		return SignalContinue
	}

	state.remainingTotal--
	state.blockElapsed++
	state.questionElapsed++

	signal := SignalContinue

	if state.questionElapsed >= state.config.SecondsPerQuestion() {
		state.questionElapsed = 0
		if state.currentQuestion < state.config.NumQuestionsPerBlock {
			state.currentQuestion++
			signal = SignalQuestionAdvanced
		}
	}

	if state.blockElapsed >= state.config.SecondsPerBlock() {
		state.blockElapsed = 0
		state.questionElapsed = 0
		state.currentQuestion = 1

		if state.currentBlock < state.config.NumBlocks {
			state.currentBlock++
			signal = SignalBlockAdvanced
		} else {
			signal = SignalCompleted
		}
	}

	return signal
}

// TogglePause flips the pause flag without touching counters.
func (state *State) TogglePause() {
	state.paused = !state.paused
}

// Start clears both the stopped and paused flags.
func (state *State) Start() {
	state.stopped = false
	state.paused = false
}

// Stop marks the session stopped. The pause flag is left as is.
func (state *State) Stop() {
	state.stopped = true
}

// IsRunning reports whether ticks currently advance the countdown.
func (state *State) IsRunning() bool {
	return !state.stopped && !state.paused
}

// IsPaused reports the raw pause flag.
func (state *State) IsPaused() bool {
	return state.paused
}

// IsStopped reports the raw stopped flag.
func (state *State) IsStopped() bool {
	return state.stopped
}

// SetOpacity changes the display opacity carried by the configuration.
// Counters are left untouched.
func (state *State) SetOpacity(percent int) {
	state.config.OpacityPercent = percent
}

// Config returns the derived configuration in use.
func (state *State) Config() model.SessionConfig {
	return state.config
}

// QuestionProgressPercent returns how much of the current question has elapsed.
func (state *State) QuestionProgressPercent() int {
	if state.config.SecondsPerQuestion() == 0 {
		return 0
	}
	return state.questionElapsed * 100 / state.config.SecondsPerQuestion()
}

// BlockProgressPercent returns how much of the current block has elapsed.
func (state *State) BlockProgressPercent() int {
	if state.config.SecondsPerBlock() == 0 {
		return 0
	}
	return state.blockElapsed * 100 / state.config.SecondsPerBlock()
}

// BlockRemainingSeconds returns the time left in the current block.
func (state *State) BlockRemainingSeconds() int {
	return state.config.SecondsPerBlock() - state.blockElapsed
}

// Snapshot copies the observable state.
func (state *State) Snapshot() Snapshot {
	return Snapshot{
		Config:                 state.config,
		RemainingTotalSeconds:  state.remainingTotal,
		CurrentQuestion:        state.currentQuestion,
		CurrentBlock:           state.currentBlock,
		BlockElapsedSeconds:    state.blockElapsed,
		QuestionElapsedSeconds: state.questionElapsed,
		Paused:                 state.paused,
		Stopped:                state.stopped,
		QuestionProgress:       state.QuestionProgressPercent(),
		BlockProgress:          state.BlockProgressPercent(),
		BlockRemainingSeconds:  state.BlockRemainingSeconds(),
	}
}

// Snapshot is a read-only view of a State at one instant.
type Snapshot struct {
	Config                 model.SessionConfig
	RemainingTotalSeconds  int
	CurrentQuestion        int
	CurrentBlock           int
	BlockElapsedSeconds    int
	QuestionElapsedSeconds int
	Paused                 bool
	Stopped                bool
	QuestionProgress       int
	BlockProgress          int
	BlockRemainingSeconds  int
}

// Running mirrors State.IsRunning for the snapshot.
func (snapshot Snapshot) Running() bool {
	return !snapshot.Stopped && !snapshot.Paused
}

// FormatTime renders seconds as MM:SS. Negative input is not clamped.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
