package model

// Opacity bounds accepted by the timer bar.
const (
	MinOpacityPercent = 20
	MaxOpacityPercent = 100
)

// SessionConfig holds the user-chosen session parameters and the timing
// constants derived from them.
type SessionConfig struct {
	TimePerBlockMinutes  int
	NumBlocks            int
	NumQuestionsPerBlock int
	OpacityPercent       int

	secondsPerBlock    int
	secondsPerQuestion int
	totalSeconds       int
}

// DefaultSessionConfig returns a derived configuration with the stock values.
func DefaultSessionConfig() SessionConfig {
	config := SessionConfig{
		TimePerBlockMinutes:  60,
		NumBlocks:            2,
		NumQuestionsPerBlock: 40,
		OpacityPercent:       75,
	}
	config.Derive()
	return config
}

// Derive recomputes the timing constants from the base fields.
// It must run after any base field changes.
func (config *SessionConfig) Derive() {
	config.secondsPerBlock = config.TimePerBlockMinutes * 60
	config.totalSeconds = config.secondsPerBlock * config.NumBlocks
	if config.NumQuestionsPerBlock > 0 {
		config.secondsPerQuestion = config.secondsPerBlock / config.NumQuestionsPerBlock
	} else {
		config.secondsPerQuestion = config.secondsPerBlock
	}
}

// SecondsPerBlock returns the derived block length.
func (config SessionConfig) SecondsPerBlock() int {
	return config.secondsPerBlock
}

// SecondsPerQuestion returns the derived question length.
func (config SessionConfig) SecondsPerQuestion() int {
	return config.secondsPerQuestion
}

// TotalSeconds returns the derived session length.
func (config SessionConfig) TotalSeconds() int {
	return config.totalSeconds
}

// TimingChanged reports whether any field that drives the countdown differs.
func (config SessionConfig) TimingChanged(other SessionConfig) bool {
	return config.TimePerBlockMinutes != other.TimePerBlockMinutes ||
		config.NumBlocks != other.NumBlocks ||
		config.NumQuestionsPerBlock != other.NumQuestionsPerBlock
}

// ClampOpacity returns percent limited to the supported opacity range.
func ClampOpacity(percent int) int {
	if percent < MinOpacityPercent {
		return MinOpacityPercent
	}
	if percent > MaxOpacityPercent {
		return MaxOpacityPercent
	}
	return percent
}

// Alpha converts the opacity percentage into an 8-bit window alpha.
func (config SessionConfig) Alpha() uint8 {
	return uint8(255 * ClampOpacity(config.OpacityPercent) / 100)
}
