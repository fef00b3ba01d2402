package receive

// Status is the verification status reported to collaborators.
type Status int

const (
	// StatusUnset means no attempt was made yet or the address needs to be
	// (re)verified.
	StatusUnset Status = iota

	// StatusVerified means the device confirmed the expected address.
	StatusVerified

	// StatusRejected means the user explicitly bypassed device
	// verification.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusUnset:
		return "unset"
	case StatusVerified:
		return "verified"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// State is the internal state of a Controller.
type State int

const (
	StateIdle State = iota
	StateVerifying
	StateVerified
	StateRejected
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateVerifying:
		return "verifying"
	case StateVerified:
		return "verified"
	case StateRejected:
		return "rejected_by_user"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status returns the status reported while in state s.
func (s State) Status() Status {
	switch s {
	case StateVerified:
		return StatusVerified
	case StateRejected:
		return StatusRejected
	default:
		return StatusUnset
	}
}

// Snapshot is a consistent view of a Controller.
type Snapshot struct {
	State  State
	Status Status
	Error  *VerificationError

	// Active is false before the step is entered, while it waits for the
	// device connection step and after it was stopped.
	Active bool
}

// Pending reports whether an address request is in flight.
func (s Snapshot) Pending() bool {
	return s.Status == StatusUnset && s.State == StateVerifying
}
