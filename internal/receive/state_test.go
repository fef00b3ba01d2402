package receive

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/device"
)

func effectNames(effects []effect) []string {
	names := make([]string, 0, len(effects))
	for _, eff := range effects {
		names = append(names, eff.effectName())
	}

	return names
}

func TestNextState(t *testing.T) {
	t.Parallel()

	env := transitionEnv{account: Account{
		CurrencyID:       "bitcoin",
		FreshAddress:     "abc123",
		FreshAddressPath: "84'/0'/0'/0/0",
		Name:             "BTC 1",
	}}
	advancedEnv := env
	advancedEnv.advanced = true

	tests := []struct {
		name    string
		state   State
		env     transitionEnv
		event   event
		next    State
		kind    ErrorKind
		effects []string
		noop    bool
		invalid bool
	}{
		{name: "idle initiate with device", state: StateIdle, env: env, event: initiateEvent{}, next: StateVerifying, effects: []string{"issue_request"}},
		{name: "idle initiate without device", state: StateIdle, env: env, event: initiateEvent{deviceAbsent: true}, next: StateFailed, kind: ErrorKindDeviceDisconnected, effects: []string{"status_changed"}},
		{name: "idle retry", state: StateIdle, env: env, event: retryEvent{}, noop: true},
		{name: "idle accept", state: StateIdle, env: env, event: acceptWithoutDeviceEvent{}, next: StateRejected, effects: []string{"status_changed"}},
		{name: "idle reset", state: StateIdle, env: env, event: resetEvent{}, next: StateIdle, effects: []string{"clear_skip", "schedule_initiate"}},
		{name: "idle address", state: StateIdle, env: env, event: addressReturnedEvent{address: "abc123"}, invalid: true},

		{name: "verifying initiate", state: StateVerifying, env: env, event: initiateEvent{}, noop: true},
		{name: "verifying retry", state: StateVerifying, env: env, event: retryEvent{deviceChanged: true}, noop: true},
		{name: "verifying accept", state: StateVerifying, env: env, event: acceptWithoutDeviceEvent{}, noop: true},
		{name: "verifying match", state: StateVerifying, env: env, event: addressReturnedEvent{address: "abc123"}, next: StateVerified, effects: []string{"status_changed", "advance"}},
		{name: "verifying match advanced", state: StateVerifying, env: advancedEnv, event: addressReturnedEvent{address: "abc123"}, next: StateVerified, effects: []string{"status_changed"}},
		{name: "verifying mismatch", state: StateVerifying, env: env, event: addressReturnedEvent{address: "xyz999"}, next: StateFailed, kind: ErrorKindAddressMismatch, effects: []string{"status_changed"}},
		{name: "verifying disconnected", state: StateVerifying, env: env, event: requestFailedEvent{err: device.ErrDisconnected}, next: StateFailed, kind: ErrorKindDeviceDisconnected, effects: []string{"status_changed"}},
		{name: "verifying other", state: StateVerifying, env: env, event: requestFailedEvent{err: errors.New("locked")}, next: StateFailed, kind: ErrorKindOther, effects: []string{"status_changed"}},
		{name: "verifying reset", state: StateVerifying, env: env, event: resetEvent{}, next: StateIdle, effects: []string{"discard_inflight", "clear_skip", "schedule_initiate"}},

		{name: "verified retry same device", state: StateVerified, env: env, event: retryEvent{}, next: StateIdle, effects: []string{"status_changed", "clear_skip", "schedule_initiate"}},
		{name: "verified retry other device", state: StateVerified, env: env, event: retryEvent{deviceChanged: true}, next: StateIdle, effects: []string{"route_to_device", "status_changed", "clear_skip", "suspend"}},
		{name: "verified reset", state: StateVerified, env: env, event: resetEvent{}, next: StateIdle, effects: []string{"status_changed", "clear_skip", "schedule_initiate"}},
		{name: "verified initiate", state: StateVerified, env: env, event: initiateEvent{}, invalid: true},
		{name: "verified accept", state: StateVerified, env: env, event: acceptWithoutDeviceEvent{}, invalid: true},

		{name: "rejected retry", state: StateRejected, env: env, event: retryEvent{}, next: StateIdle, effects: []string{"route_to_device", "status_changed", "clear_skip", "suspend"}},
		{name: "rejected reset", state: StateRejected, env: env, event: resetEvent{}, next: StateIdle, effects: []string{"status_changed", "clear_skip", "schedule_initiate"}},
		{name: "rejected accept", state: StateRejected, env: env, event: acceptWithoutDeviceEvent{}, invalid: true},

		{name: "failed retry", state: StateFailed, env: env, event: retryEvent{}, next: StateIdle, effects: []string{"route_to_device", "status_changed", "clear_skip", "suspend"}},
		{name: "failed accept", state: StateFailed, env: env, event: acceptWithoutDeviceEvent{}, next: StateRejected, effects: []string{"status_changed"}},
		{name: "failed reset", state: StateFailed, env: env, event: resetEvent{}, next: StateIdle, effects: []string{"status_changed", "clear_skip", "schedule_initiate"}},
		{name: "failed initiate", state: StateFailed, env: env, event: initiateEvent{}, invalid: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr, err := nextState(tt.state, tt.env, tt.event)

			switch {
			case tt.noop:
				require.ErrorIs(t, err, errNoop)
				return
			case tt.invalid:
				require.ErrorIs(t, err, ErrInvalidTransition)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, tr.next)
			assert.Equal(t, tt.effects, effectNames(tr.effects))

			if tt.kind == 0 {
				assert.Nil(t, tr.verr)
				return
			}

			require.NotNil(t, tr.verr)
			assert.Equal(t, tt.kind, tr.verr.Kind)
		})
	}
}

func TestNextStateMismatchCarriesAccountName(t *testing.T) {
	t.Parallel()

	tr, err := nextState(StateVerifying, transitionEnv{account: Account{
		FreshAddress: "abc123",
		Name:         "BTC 1",
	}}, addressReturnedEvent{address: "xyz999"})
	require.NoError(t, err)
	require.NotNil(t, tr.verr)
	assert.Equal(t, "BTC 1", tr.verr.AccountName)

	status, ok := tr.effects[0].(statusChangedEffect)
	require.True(t, ok)
	assert.Equal(t, StatusUnset, status.status)
	assert.Same(t, tr.verr, status.verr)
}

func TestStateStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusUnset, StateIdle.Status())
	assert.Equal(t, StatusUnset, StateVerifying.Status())
	assert.Equal(t, StatusUnset, StateFailed.Status())
	assert.Equal(t, StatusVerified, StateVerified.Status())
	assert.Equal(t, StatusRejected, StateRejected.Status())

	assert.Equal(t, "rejected_by_user", StateRejected.String())
	assert.True(t, Snapshot{State: StateVerifying, Status: StatusUnset}.Pending())
	assert.False(t, Snapshot{State: StateFailed, Status: StatusUnset}.Pending())
}

func TestVerificationErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "device disconnected", DeviceDisconnectedError(nil).Error())
	assert.Contains(t, AddressMismatchError("BTC 1").Error(), "BTC 1")
	assert.Contains(t, OtherError(errors.New("locked")).Error(), "locked")

	assert.Equal(t, OutcomeVerified, outcomeOf(nil))
	assert.Equal(t, OutcomeAddressMismatch, outcomeOf(AddressMismatchError("BTC 1")))
	assert.Equal(t, OutcomeDeviceDisconnected, outcomeOf(DeviceDisconnectedError(nil)))
	assert.Equal(t, OutcomeOther, outcomeOf(OtherError(nil)))
}
