package api

import (
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/flow"
	"github/chapool/go-receive/internal/metrics"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewClock returns a mock clock when running tests, the system clock otherwise.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if !useMock {
		clock = time2.DefaultClock
	} else {
		clock = time2.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	}

	return clock
}

// NewSeedManager loads the keyring from the config. A keyring that needs a
// passphrase prompt is left empty and initialized by the server command.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewSeedManager(cfg config.Server) (seed.Manager, error) {
	seedManager := seed.NewManager()

	if cfg.Keyring.Mnemonic == "" || cfg.Keyring.PromptPassphrase {
		return seedManager, nil
	}

	if err := seedManager.Initialize(cfg.Keyring.Mnemonic, cfg.Keyring.Passphrase); err != nil {
		return nil, errors.Wrap(err, "failed to initialize keyring")
	}

	return seedManager, nil
}

func NewHub(clock time2.Clock) *device.Hub {
	return device.NewHub(clock)
}

func NewBridge(hub *device.Hub, clock time2.Clock) *device.Bridge {
	return device.NewBridge(hub, clock)
}

// NewRack loads the device profiles. The built-in profile is always known.
func NewRack(cfg config.Server, hub *device.Hub, addresses address.Service) (*emulator.Rack, error) {
	profiles := []emulator.Profile{emulator.DefaultProfile()}

	if cfg.Receive.DeviceProfilesFile != "" {
		loaded, err := emulator.LoadProfiles(cfg.Receive.DeviceProfilesFile)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, loaded...)
	}

	var confirmer emulator.Confirmer
	if cfg.Receive.ConfirmMode != "" {
		var err error
		confirmer, err = emulator.ConfirmerFor(cfg.Receive.ConfirmMode)
		if err != nil {
			return nil, err
		}
	}

	rack := emulator.NewRack(hub, addresses, nil, confirmer)
	for _, p := range profiles {
		if err := rack.AddProfile(p); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("profiles", len(profiles)).Msg("Device profiles loaded")

	return rack, nil
}

func NewStatusStore() *currency.StatusStore {
	return currency.NewStatusStore()
}

// NewSessionManager creates the receive session manager and exposes its
// gauges.
func NewSessionManager(
	cfg config.Server,
	clock time2.Clock,
	hub *device.Hub,
	bridge *device.Bridge,
	statuses *currency.StatusStore,
	metricsService *metrics.Service,
) (*flow.Manager, error) {
	manager := flow.NewManager(flow.ManagerConfig{
		Bridge:         bridge,
		Devices:        hub,
		Clock:          clock,
		Metrics:        metricsService,
		Statuses:       statuses,
		RequestTimeout: cfg.Receive.RequestTimeout,
	})

	if err := metricsService.RegisterGauges(hub, manager); err != nil {
		return nil, err
	}

	return manager, nil
}
