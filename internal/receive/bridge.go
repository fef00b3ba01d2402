package receive

import (
	"context"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github/chapool/go-receive/internal/device"
)

// CommandBridge asks a device to derive, display and return an address.
type CommandBridge interface {
	GetAddress(ctx context.Context, req device.AddressRequest) (string, error)
}

// DeviceSource returns the live device reference, if a device is connected.
type DeviceSource interface {
	Current() fn.Option[*device.Device]
}

// Collaborator receives the outbound notifications of a Controller. The
// calls are made one at a time, in transition order, from a dispatcher
// goroutine owned by the controller.
type Collaborator interface {
	OnVerificationChanged(status Status, verr *VerificationError)
	AdvanceToNextStep()
	RouteToDeviceConnection()
	ClearSkipFlag()
}

// Outcome labels the end of an attempt for metrics.
type Outcome string

const (
	OutcomeVerified           Outcome = "verified"
	OutcomeAddressMismatch    Outcome = "address_mismatch"
	OutcomeDeviceDisconnected Outcome = "device_disconnected"
	OutcomeOther              Outcome = "other"
	OutcomeRejected           Outcome = "rejected_by_user"
)

// MetricsRecorder records verification outcomes.
type MetricsRecorder interface {
	RecordVerification(currencyID string, outcome Outcome, elapsed time.Duration)
}

func outcomeOf(verr *VerificationError) Outcome {
	if verr == nil {
		return OutcomeVerified
	}

	switch verr.Kind {
	case ErrorKindAddressMismatch:
		return OutcomeAddressMismatch
	case ErrorKindDeviceDisconnected:
		return OutcomeDeviceDisconnected
	default:
		return OutcomeOther
	}
}
