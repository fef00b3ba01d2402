// Package emulator implements a software device that answers address
// commands over a device.Transport.
package emulator

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

// Emulator is a software secure element. It implements device.Transport.
type Emulator struct {
	profile   Profile
	seed      seed.Manager
	addresses address.Service
	confirmer Confirmer
	log       zerolog.Logger

	// exchange serializes commands like a real device does.
	exchange sync.Mutex

	closeOnce sync.Once
	unplugged chan struct{}
}

// New creates an emulator for profile. confirmer may be nil, in which case
// the confirmer named by the profile is used.
func New(profile Profile, addresses address.Service, confirmer Confirmer) (*Emulator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if confirmer == nil {
		var err error
		confirmer, err = ConfirmerFor(profile.Confirm)
		if err != nil {
			return nil, err
		}
	}

	seedManager := seed.NewManager()
	if err := seedManager.Initialize(profile.Mnemonic, profile.Passphrase); err != nil {
		return nil, errors.Wrapf(err, "failed to initialize keyring of %s", profile.Name)
	}

	return &Emulator{
		profile:   profile,
		seed:      seedManager,
		addresses: addresses,
		confirmer: confirmer,
		log: log.With().
			Str("component", "device_emulator").
			Str("device", profile.Name).
			Logger(),
		unplugged: make(chan struct{}),
	}, nil
}

// Profile returns the profile the emulator was created from.
func (e *Emulator) Profile() Profile {
	return e.profile
}

// Exchange implements device.Transport.
func (e *Emulator) Exchange(ctx context.Context, cmd device.Command) (device.Response, error) {
	if e.isUnplugged() {
		return device.Response{}, errors.Wrapf(device.ErrDisconnected, "%s is unplugged", e.profile.Name)
	}

	e.exchange.Lock()
	defer e.exchange.Unlock()

	switch cmd.Name {
	case device.CommandGetAddress:
		return e.getAddress(ctx, cmd.Payload)
	default:
		return device.Response{}, errors.Wrapf(device.ErrUnknownCommand, "%q", cmd.Name)
	}
}

// Close implements device.Transport. It unplugs the device: pending and
// future exchanges fail with device.ErrDisconnected.
func (e *Emulator) Close() error {
	e.closeOnce.Do(func() {
		close(e.unplugged)
		e.seed.Clear()
		e.log.Debug().Msg("Emulator unplugged")
	})

	return nil
}

// Unplug is an alias of Close.
func (e *Emulator) Unplug() {
	_ = e.Close()
}

func (e *Emulator) isUnplugged() bool {
	select {
	case <-e.unplugged:
		return true
	default:
		return false
	}
}

func (e *Emulator) getAddress(ctx context.Context, payload []byte) (device.Response, error) {
	var req device.AddressRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return device.Response{}, &device.CommandError{
			Command: device.CommandGetAddress,
			Code:    device.StatusIncorrectParameter,
			Message: "malformed request",
		}
	}

	log := e.log.With().Str("currency_id", req.CurrencyID).Str("path", req.Path).Logger()

	if e.profile.Locked {
		return device.Response{}, &device.CommandError{
			Command: device.CommandGetAddress,
			Code:    device.StatusLocked,
			Message: "device is locked",
		}
	}

	cur, err := currency.Get(req.CurrencyID)
	if err != nil || !e.profile.HasApp(req.CurrencyID) {
		return device.Response{}, &device.CommandError{
			Command: device.CommandGetAddress,
			Code:    device.StatusWrongAppOpened,
			Message: "no app for " + req.CurrencyID,
		}
	}

	if err := e.wait(ctx, e.profile.Delay.Duration); err != nil {
		return device.Response{}, err
	}
	if e.isUnplugged() {
		return device.Response{}, errors.Wrapf(device.ErrDisconnected, "%s is unplugged", e.profile.Name)
	}

	derived, err := e.addresses.DeriveAddress(ctx, e.seed.GetSeed(), cur, currency.DerivationMode(req.DerivationMode), req.Path)
	if err != nil {
		if e.isUnplugged() {
			return device.Response{}, errors.Wrapf(device.ErrDisconnected, "%s unplugged during derivation", e.profile.Name)
		}
		log.Debug().Err(err).Msg("Failed to derive address")
		return device.Response{}, &device.CommandError{
			Command: device.CommandGetAddress,
			Code:    device.StatusIncorrectParameter,
			Message: err.Error(),
		}
	}

	if req.Verify {
		if err := e.confirm(ctx, Prompt{
			Device:     e.profile.Name,
			CurrencyID: cur.ID,
			Ticker:     cur.Ticker,
			Path:       req.Path,
			Address:    derived,
		}); err != nil {
			return device.Response{}, err
		}
	}

	payload, err = json.Marshal(device.AddressResponse{Address: derived})
	if err != nil {
		return device.Response{}, errors.Wrap(err, "failed to encode response")
	}

	log.Debug().Bool("verify", req.Verify).Msg("Address returned")

	return device.Response{Payload: payload}, nil
}

// confirm asks the user to confirm the displayed address. The answer is
// raced against cancellation and unplugging.
func (e *Emulator) confirm(ctx context.Context, prompt Prompt) error {
	type answer struct {
		ok  bool
		err error
	}

	answered := make(chan answer, 1)
	go func() {
		ok, err := e.confirmer.Confirm(ctx, prompt)
		answered <- answer{ok: ok, err: err}
	}()

	select {
	case a := <-answered:
		if a.err != nil {
			return errors.Wrap(a.err, "confirmation failed")
		}
		if !a.ok {
			return &device.CommandError{
				Command: device.CommandGetAddress,
				Code:    device.StatusUserRefused,
				Message: "address rejected on device",
			}
		}
		return nil

	case <-e.unplugged:
		return errors.Wrapf(device.ErrDisconnected, "%s unplugged during confirmation", e.profile.Name)

	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "confirmation aborted")
	}
}

func (e *Emulator) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-e.unplugged:
		return errors.Wrapf(device.ErrDisconnected, "%s unplugged", e.profile.Name)
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "command aborted")
	}
}
