package door

import "context"

// Action is a door command forwarded to the actuator.
type Action string

const (
	ActionOpen  Action = "open"
	ActionClose Action = "close"
)

// Valid reports whether the action is a recognized door command.
func (a Action) Valid() bool {
	return a == ActionOpen || a == ActionClose
}

// Result carries the outcome of one actuation attempt. Status is a lexical
// mapping of the requested action, not a read-back of hardware state; callers
// must inspect ExitCode to detect actuator failure.
type Result struct {
	Status   string
	ExitCode int
	Output   string
}

// Actuator is the capability interface for the physical door mechanism.
type Actuator interface {
	Trigger(ctx context.Context, action Action) (Result, error)
}
