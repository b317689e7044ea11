package model

// SetupMode selects how the setup form is presented.
type SetupMode int

const (
	// SetupModeFresh collects parameters for a new session.
	SetupModeFresh SetupMode = iota
	// SetupModeEdit edits the parameters of the running session.
	SetupModeEdit
)

// SetupResult is the outcome of a setup form.
type SetupResult int

const (
	SetupCancelled SetupResult = iota
	SetupAccepted
	// SetupCoverOnly accepts the parameters but only shows the cover square.
	SetupCoverOnly
)

func (result SetupResult) String() string {
	switch result {
	case SetupAccepted:
		return "accepted"
	case SetupCoverOnly:
		return "cover_only"
	default:
		return "cancelled"
	}
}
