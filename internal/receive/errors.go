package receive

import (
	"fmt"

	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/device"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state.
	ErrInvalidTransition = errors.New("invalid verification state transition")

	// ErrStopped is returned by operations on a stopped controller.
	ErrStopped = errors.New("verification controller stopped")

	// ErrBaselineCaptured is returned when the baseline device is captured a
	// second time without being released.
	ErrBaselineCaptured = errors.New("baseline device already captured")
)

// ErrorKind tags a VerificationError.
type ErrorKind int

const (
	ErrorKindDeviceDisconnected ErrorKind = iota + 1
	ErrorKindAddressMismatch
	ErrorKindOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindDeviceDisconnected:
		return "device_disconnected"
	case ErrorKindAddressMismatch:
		return "address_mismatch"
	case ErrorKindOther:
		return "other"
	default:
		return "unknown"
	}
}

// VerificationError is the outcome of a failed verification attempt. It is
// stored in the controller state, never returned from an operation.
type VerificationError struct {
	Kind ErrorKind

	// AccountName is set for ErrorKindAddressMismatch.
	AccountName string

	// Cause is the transport or device error, if any.
	Cause error
}

func (e *VerificationError) Error() string {
	switch e.Kind {
	case ErrorKindDeviceDisconnected:
		if e.Cause != nil {
			return fmt.Sprintf("device disconnected: %v", e.Cause)
		}
		return "device disconnected"
	case ErrorKindAddressMismatch:
		return fmt.Sprintf("device returned a different address for account %s", e.AccountName)
	default:
		return fmt.Sprintf("address verification failed: %v", e.Cause)
	}
}

func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// DeviceDisconnectedError builds a ErrorKindDeviceDisconnected error.
func DeviceDisconnectedError(cause error) *VerificationError {
	return &VerificationError{Kind: ErrorKindDeviceDisconnected, Cause: cause}
}

// AddressMismatchError builds a ErrorKindAddressMismatch error.
func AddressMismatchError(accountName string) *VerificationError {
	return &VerificationError{Kind: ErrorKindAddressMismatch, AccountName: accountName}
}

// OtherError builds a ErrorKindOther error.
func OtherError(cause error) *VerificationError {
	return &VerificationError{Kind: ErrorKindOther, Cause: cause}
}

// classifyRequestError maps a rejected address request to a verification
// error.
func classifyRequestError(err error) *VerificationError {
	if device.IsDisconnected(err) {
		return DeviceDisconnectedError(err)
	}

	return OtherError(err)
}
