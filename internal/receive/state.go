package receive

import (
	"fmt"

	"github.com/pkg/errors"
)

// event is an input of the verification state machine.
type event interface {
	eventName() string
}

type initiateEvent struct {
	deviceAbsent bool
}

type addressReturnedEvent struct {
	address string
}

type requestFailedEvent struct {
	err error
}

type retryEvent struct {
	deviceChanged bool
}

type acceptWithoutDeviceEvent struct{}

type resetEvent struct{}

func (initiateEvent) eventName() string            { return "initiate" }
func (addressReturnedEvent) eventName() string     { return "address_returned" }
func (requestFailedEvent) eventName() string       { return "request_failed" }
func (retryEvent) eventName() string               { return "retry" }
func (acceptWithoutDeviceEvent) eventName() string { return "accept_without_device" }
func (resetEvent) eventName() string               { return "reset" }

// effect is a side effect requested by a transition. The controller applies
// effects in order.
type effect interface {
	effectName() string
}

type statusChangedEffect struct {
	status Status
	verr   *VerificationError
}

type advanceEffect struct{}

type routeToDeviceEffect struct{}

type clearSkipEffect struct{}

// scheduleInitiateEffect is the reactive rule: entering Unset while the step
// is active schedules an attempt.
type scheduleInitiateEffect struct{}

// suspendEffect deactivates the step until it is entered again after the
// device connection step.
type suspendEffect struct{}

type issueRequestEffect struct{}

type discardInflightEffect struct{}

func (statusChangedEffect) effectName() string    { return "status_changed" }
func (advanceEffect) effectName() string          { return "advance" }
func (routeToDeviceEffect) effectName() string    { return "route_to_device" }
func (clearSkipEffect) effectName() string        { return "clear_skip" }
func (scheduleInitiateEffect) effectName() string { return "schedule_initiate" }
func (suspendEffect) effectName() string          { return "suspend" }
func (issueRequestEffect) effectName() string     { return "issue_request" }
func (discardInflightEffect) effectName() string  { return "discard_inflight" }

// transitionEnv is the read-only input of a transition besides state and
// event.
type transitionEnv struct {
	account  Account
	advanced bool
}

// transition is the result of applying an event.
type transition struct {
	next    State
	verr    *VerificationError
	effects []effect
}

// errNoop marks events that are silently ignored in the current state.
var errNoop = errors.New("no-op")

// nextState is the transition table of the verification controller. It is
// pure: all side effects are returned as effects.
//
//nolint:gocyclo,cyclop // the table is easier to audit in one place
func nextState(state State, env transitionEnv, ev event) (*transition, error) {
	invalid := func() (*transition, error) {
		return nil, errors.Wrap(ErrInvalidTransition, fmt.Sprintf("%s in state %s", ev.eventName(), state))
	}

	unsetAndRoute := &transition{
		next: StateIdle,
		effects: []effect{
			routeToDeviceEffect{},
			statusChangedEffect{status: StatusUnset},
			clearSkipEffect{},
			suspendEffect{},
		},
	}

	unsetAndSchedule := &transition{
		next: StateIdle,
		effects: []effect{
			statusChangedEffect{status: StatusUnset},
			clearSkipEffect{},
			scheduleInitiateEffect{},
		},
	}

	switch state {
	case StateIdle:
		switch ev := ev.(type) {
		case initiateEvent:
			if ev.deviceAbsent {
				verr := DeviceDisconnectedError(nil)
				return &transition{
					next:    StateFailed,
					verr:    verr,
					effects: []effect{statusChangedEffect{status: StatusUnset, verr: verr}},
				}, nil
			}
			return &transition{next: StateVerifying, effects: []effect{issueRequestEffect{}}}, nil
		case retryEvent:
			return nil, errNoop
		case acceptWithoutDeviceEvent:
			return &transition{
				next:    StateRejected,
				effects: []effect{statusChangedEffect{status: StatusRejected}},
			}, nil
		case resetEvent:
			return &transition{
				next:    StateIdle,
				effects: []effect{clearSkipEffect{}, scheduleInitiateEffect{}},
			}, nil
		}

	case StateVerifying:
		switch ev := ev.(type) {
		case initiateEvent, retryEvent, acceptWithoutDeviceEvent:
			return nil, errNoop
		case addressReturnedEvent:
			// Exact comparison: no case folding, no trimming.
			if ev.address != env.account.FreshAddress {
				verr := AddressMismatchError(env.account.Name)
				return &transition{
					next:    StateFailed,
					verr:    verr,
					effects: []effect{statusChangedEffect{status: StatusUnset, verr: verr}},
				}, nil
			}
			effects := []effect{statusChangedEffect{status: StatusVerified}}
			if !env.advanced {
				effects = append(effects, advanceEffect{})
			}
			return &transition{next: StateVerified, effects: effects}, nil
		case requestFailedEvent:
			verr := classifyRequestError(ev.err)
			return &transition{
				next:    StateFailed,
				verr:    verr,
				effects: []effect{statusChangedEffect{status: StatusUnset, verr: verr}},
			}, nil
		case resetEvent:
			return &transition{
				next:    StateIdle,
				effects: []effect{discardInflightEffect{}, clearSkipEffect{}, scheduleInitiateEffect{}},
			}, nil
		}

	case StateVerified:
		switch ev := ev.(type) {
		case retryEvent:
			if ev.deviceChanged {
				return unsetAndRoute, nil
			}
			return unsetAndSchedule, nil
		case resetEvent:
			return unsetAndSchedule, nil
		}

	case StateRejected:
		switch ev.(type) {
		case retryEvent:
			return unsetAndRoute, nil
		case resetEvent:
			return unsetAndSchedule, nil
		}

	case StateFailed:
		switch ev.(type) {
		case retryEvent:
			return unsetAndRoute, nil
		case acceptWithoutDeviceEvent:
			return &transition{
				next:    StateRejected,
				effects: []effect{statusChangedEffect{status: StatusRejected}},
			}, nil
		case resetEvent:
			return unsetAndSchedule, nil
		}
	}

	return invalid()
}
