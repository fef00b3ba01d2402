package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/flow"
	"github/chapool/go-receive/internal/metrics"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

type Router struct {
	Routes          []*echo.Route
	Root            *echo.Group
	Management      *echo.Group
	APIV1Devices    *echo.Group
	APIV1Currencies *echo.Group
	APIV1Receive    *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config    config.Server
	Clock     time2.Clock
	Metrics   *metrics.Service
	Seed      seed.Manager
	Addresses address.Service
	Wallet    wallet.Service
	Hub       *device.Hub
	Bridge    *device.Bridge
	Rack      *emulator.Rack
	Statuses  *currency.StatusStore
	Sessions  *flow.Manager
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	metrics *metrics.Service,
	seedManager seed.Manager,
	addresses address.Service,
	walletService wallet.Service,
	hub *device.Hub,
	bridge *device.Bridge,
	rack *emulator.Rack,
	statuses *currency.StatusStore,
	sessions *flow.Manager,
) *Server {
	return &Server{
		Config:    cfg,
		Clock:     clock,
		Metrics:   metrics,
		Seed:      seedManager,
		Addresses: addresses,
		Wallet:    walletService,
		Hub:       hub,
		Bridge:    bridge,
		Rack:      rack,
		Statuses:  statuses,
		Sessions:  sessions,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

// Ready reports whether every component is initialized and the keyring is
// loaded.
func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	if !s.Seed.IsInitialized() {
		log.Debug().Msg("Keyring is not initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Sessions != nil {
		log.Debug().Msg("Closing receive sessions")
		s.Sessions.CloseAll()
	}

	if s.Hub != nil {
		log.Debug().Msg("Disconnecting devices")
		s.Hub.Close()
	}

	if s.Seed != nil {
		s.Seed.Clear()
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
