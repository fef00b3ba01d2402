package device

import (
	"context"
	"encoding/json"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/util"
)

// TransportResolver finds the transport for a device path.
type TransportResolver interface {
	TransportByPath(path string) (Transport, error)
}

// Bridge issues address commands to connected devices. It is the only place
// where the getAddress request and response shapes are encoded.
type Bridge struct {
	resolver TransportResolver
	clock    time2.Clock
}

// NewBridge creates a Bridge on top of resolver, usually a *Hub.
func NewBridge(resolver TransportResolver, clock time2.Clock) *Bridge {
	return &Bridge{
		resolver: resolver,
		clock:    clock,
	}
}

// GetAddress asks the device at req.DevicePath to derive the address at
// req.Path and, if req.Verify is set, to display it for confirmation.
func (b *Bridge) GetAddress(ctx context.Context, req AddressRequest) (string, error) {
	log := util.LogFromContext(ctx).With().
		Str("component", "device_bridge").
		Str("device_path", req.DevicePath).
		Str("currency_id", req.CurrencyID).
		Str("path", req.Path).
		Logger()

	transport, err := b.resolver.TransportByPath(req.DevicePath)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode getAddress request")
	}

	start := b.clock.Now()
	res, err := transport.Exchange(ctx, Command{Name: CommandGetAddress, Payload: payload})
	elapsed := b.clock.Now().Sub(start)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", elapsed).Msg("getAddress exchange failed")
		return "", err
	}

	var decoded AddressResponse
	if err := json.Unmarshal(res.Payload, &decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode getAddress response")
	}

	if decoded.Address == "" {
		return "", &CommandError{
			Command: CommandGetAddress,
			Code:    StatusIncorrectParameter,
			Message: "empty address in response",
		}
	}

	log.Debug().Dur("elapsed", elapsed).Msg("getAddress exchange completed")

	return decoded.Address, nil
}
