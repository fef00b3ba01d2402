package api

import (
	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/flow"
	"github/chapool/go-receive/internal/receive"
	"github/chapool/go-receive/internal/wallet/currency"
)

// HTTPErrorFrom maps errors of the receive flow to their HTTP error. Other
// errors are returned unchanged.
func HTTPErrorFrom(err error) error {
	var mapped *httperrors.HTTPError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, flow.ErrSessionNotFound):
		mapped = httperrors.ErrNotFoundSession
	case errors.Is(err, flow.ErrSessionClosed), errors.Is(err, receive.ErrStopped):
		mapped = httperrors.ErrGoneSessionClosed
	case errors.Is(err, flow.ErrNoDevice):
		mapped = httperrors.ErrConflictNoDevice
	case errors.Is(err, flow.ErrWrongStep):
		mapped = httperrors.ErrConflictWrongStep
	case errors.Is(err, receive.ErrInvalidTransition), errors.Is(err, receive.ErrBaselineCaptured):
		mapped = httperrors.ErrConflictInvalidState
	case errors.Is(err, device.ErrDeviceNotFound):
		mapped = httperrors.ErrNotFoundDevice
	case errors.Is(err, emulator.ErrUnknownProfile):
		mapped = httperrors.ErrNotFoundProfile
	case errors.Is(err, currency.ErrUnknownCurrency):
		mapped = httperrors.ErrBadRequestUnknownCurrency
	case errors.Is(err, currency.ErrUnsupportedMode):
		mapped = httperrors.ErrBadRequestUnsupportedMode
	default:
		return err
	}

	return &httperrors.HTTPError{
		PublicHTTPError: mapped.PublicHTTPError,
		Internal:        err,
	}
}
