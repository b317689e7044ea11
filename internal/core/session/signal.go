package session

// Signal reports what changed during a single Tick.
type Signal int

const (
	SignalContinue Signal = iota
	SignalQuestionAdvanced
	SignalBlockAdvanced
	// SignalCompleted is returned once, on the tick that exhausts the final block.
	SignalCompleted
)

func (signal Signal) String() string {
	switch signal {
	case SignalContinue:
		return "continue"
	case SignalQuestionAdvanced:
		return "question_advanced"
	case SignalBlockAdvanced:
		return "block_advanced"
	case SignalCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
