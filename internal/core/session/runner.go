package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"wolftimer/internal/core/model"
)

// ErrRunnerActive is returned when Run is called on a Runner that is already ticking.
var ErrRunnerActive = errors.New("runner already active")

// Runner owns a State, drives it with a fixed-rate clock and serializes user
// commands with ticks.
type Runner struct {
	mu      sync.Mutex
	state   *State
	options Options
	events  []chan Event
	running bool
}

// NewRunner creates a Runner for config. The session starts out running, as
// after Reset.
func NewRunner(config model.SessionConfig, options Options) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.Logger == nil {
		options.Logger = DefaultOptions().Logger
	}
	return &Runner{
		state:   New(config),
		options: options,
	}
}

// Subscribe registers a new observer channel. It is closed when Run returns.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	runner.events = append(runner.events, ch)
	runner.mu.Unlock()
	return ch
}

// Run ticks the session until ctx is done or the session completes.
// The clock halts by itself after publishing EventCompleted.
func (runner *Runner) Run(ctx context.Context) error {
	runner.mu.Lock()
	if runner.running {
		runner.mu.Unlock()
		return ErrRunnerActive
	}
	runner.running = true
	config := runner.state.Config()
	runner.mu.Unlock()
	defer runner.shutdown()

	runner.options.Logger.
		WithField("blocks", config.NumBlocks).
		WithField("questions", config.NumQuestionsPerBlock).
		WithField("minutes", config.TimePerBlockMinutes).
		Info("session clock started")

	ticker := time.NewTicker(runner.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tickTime := <-ticker.C:
			if runner.tick(tickTime) {
				return nil
			}
		}
	}
}

// Snapshot returns the current observable state.
func (runner *Runner) Snapshot() Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.state.Snapshot()
}

// Start resumes a stopped or paused session.
func (runner *Runner) Start() {
	runner.command(func(state *State) {
		state.Start()
	})
}

// Stop stops the session, keeping its counters.
func (runner *Runner) Stop() {
	runner.command(func(state *State) {
		state.Stop()
	})
}

// Halt stops the session and clears any pause.
func (runner *Runner) Halt() {
	runner.command(func(state *State) {
		if state.IsPaused() {
			state.TogglePause()
		}
		state.Stop()
	})
}

// TogglePause pauses a running session or resumes a paused one.
func (runner *Runner) TogglePause() {
	runner.command(func(state *State) {
		state.TogglePause()
	})
}

// Reset rewinds the session to its first question.
func (runner *Runner) Reset() {
	runner.command(func(state *State) {
		state.Reset()
	})
}

// SetOpacity updates the display opacity without touching counters.
func (runner *Runner) SetOpacity(percent int) {
	runner.command(func(state *State) {
		state.SetOpacity(percent)
	})
}

// Reconfigure applies a new configuration. When timing fields change the
// session is re-initialized and its current stopped/paused state restored;
// otherwise only the opacity is taken over. It reports whether timing changed.
func (runner *Runner) Reconfigure(config model.SessionConfig) bool {
	runner.mu.Lock()
	current := runner.state.Config()
	timingChanged := current.TimingChanged(config)
	if timingChanged {
		wasStopped := runner.state.IsStopped()
		wasPaused := runner.state.IsPaused()
		runner.state.Initialize(config)
		if wasStopped {
			runner.state.Stop()
		} else if wasPaused {
			runner.state.TogglePause()
		}
	} else {
		runner.state.SetOpacity(config.OpacityPercent)
	}
	snapshot := runner.state.Snapshot()
	runner.emitLocked(Event{
		Type:     EventReconfigured,
		Snapshot: snapshot,
		At:       time.Now(),
	})
	runner.mu.Unlock()

	if timingChanged {
		runner.options.Logger.
			WithField("blocks", config.NumBlocks).
			WithField("questions", config.NumQuestionsPerBlock).
			WithField("minutes", config.TimePerBlockMinutes).
			Info("session reconfigured")
	}
	return timingChanged
}

func (runner *Runner) command(apply func(*State)) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	apply(runner.state)
	runner.emitLocked(Event{
		Type:     EventRunState,
		Snapshot: runner.state.Snapshot(),
		At:       time.Now(),
	})
}

// tick advances the state once and reports whether the session completed.
func (runner *Runner) tick(tickTime time.Time) bool {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	if !runner.state.IsRunning() {
		return false
	}

	signal := runner.state.Tick()
	snapshot := runner.state.Snapshot()

	switch signal {
	case SignalBlockAdvanced:
		runner.options.Logger.WithField("block", snapshot.CurrentBlock).Info("block advanced")
	case SignalCompleted:
		runner.options.Logger.Info("session completed")
		runner.emitLocked(Event{
			Type:     EventCompleted,
			Signal:   signal,
			Snapshot: snapshot,
			At:       tickTime,
		})
		return true
	}

	runner.emitLocked(Event{
		Type:     EventTick,
		Signal:   signal,
		Snapshot: snapshot,
		At:       tickTime,
	})
	return false
}

func (runner *Runner) shutdown() {
	runner.mu.Lock()
	runner.running = false
	events := runner.events
	runner.events = nil
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (runner *Runner) emitLocked(event Event) {
	for _, ch := range runner.events {
		select {
		case ch <- event:
		default:
		}
	}
}
