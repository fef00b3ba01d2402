package server

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/currency"
)

// initializeKeyring loads the keyring the fresh addresses are derived from.
// Without a configured mnemonic the keyring of the default emulated device
// is used, so the default device verifies every address.
func initializeKeyring(ctx context.Context, s *api.Server) error {
	if s.Seed.IsInitialized() {
		return nil
	}

	opts := wallet.KeyringOptions{
		Mnemonic:         s.Config.Keyring.Mnemonic,
		Passphrase:       s.Config.Keyring.Passphrase,
		PromptPassphrase: s.Config.Keyring.PromptPassphrase,
	}

	if opts.Mnemonic == "" {
		log.Warn().Msg("No keyring mnemonic configured, using the emulator mnemonic")
		opts.Mnemonic = emulator.DefaultMnemonic
	}

	if err := wallet.InitializeKeyring(ctx, s.Seed, opts); err != nil {
		return errors.Wrap(err, "failed to initialize keyring")
	}

	return nil
}

// initializeDevices plugs the default emulated device if configured.
func initializeDevices(s *api.Server) error {
	if !s.Config.Receive.PlugDefaultDevice {
		log.Info().Msg("Starting without device, plug one through the API")
		return nil
	}

	dev, err := s.Rack.Plug(emulator.DefaultProfile().Name)
	if err != nil {
		return errors.Wrap(err, "failed to plug default device")
	}

	log.Info().Str("handle", dev.Handle.String()).Str("path", dev.Path).Msg("Default device plugged")

	return nil
}

// refreshCurrencyStatus keeps the currency disruption notices up to date
// until ctx is done.
func refreshCurrencyStatus(ctx context.Context, s *api.Server) error {
	cfg := s.Config.CurrencyStatus
	if cfg.URL == "" {
		log.Debug().Msg("No currency status URL configured, skipping refresh")
		return nil
	}

	client := &http.Client{Timeout: cfg.Timeout}

	return currency.RefreshStatuses(ctx, s.Statuses, client, cfg.URL, cfg.RefreshInterval)
}
