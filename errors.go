package glassjoke

import "errors"

// Precondition violations. None of them is transient: a simulated day that
// hits one of these is aborted, never retried.
var (
	// ErrInvalidRange reports interval or schedule boundaries that are out of order or too wide.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidAmount reports negative, non-positive or over-capacity liquid amounts.
	ErrInvalidAmount = errors.New("invalid liquid amount")
	// ErrUnsupportedRoleOperation reports a role asked to do something it never does.
	ErrUnsupportedRoleOperation = errors.New("unsupported operation for role")
	// ErrInvalidName reports an office entity name that is blank or not made of letters and spaces.
	ErrInvalidName = errors.New("invalid office entity name")
	// ErrStalledClock reports a time step that did not move the tick forward.
	ErrStalledClock = errors.New("time step did not advance")
)
