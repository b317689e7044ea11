package session

import "time"

// EventType defines the type of Runner event.
type EventType string

const (
	EventTick         EventType = "tick"
	EventRunState     EventType = "run_state"
	EventReconfigured EventType = "reconfigured"
	EventCompleted    EventType = "completed"
)

// Event represents a Runner update for observers.
type Event struct {
	Type     EventType
	Signal   Signal
	Snapshot Snapshot
	At       time.Time
}
