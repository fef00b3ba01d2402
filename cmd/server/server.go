package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/router"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/util/command"
	"golang.org/x/sync/errgroup"
)

const (
	noDeviceFlag    string = "no-device"
	shutdownTimeout        = 30 * time.Second
)

type Flags struct {
	NoDevice bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP server with an emulated device hub.

Requires configuration through ENV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.NoDevice, noDeviceFlag, false, "Do not plug the default emulated device on startup.")

	return cmd
}

func run(ctx context.Context, flags Flags) error {
	cfg := config.DefaultServiceConfigFromEnv()
	if flags.NoDevice {
		cfg.Receive.PlugDefaultDevice = false
	}

	command.SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	if err := initializeKeyring(ctx, s); err != nil {
		return err
	}

	if err := initializeDevices(s); err != nil {
		return err
	}

	if err := router.Init(s); err != nil {
		log.Error().Err(err).Msg("Failed to initialize router")
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("listen_address", cfg.Echo.ListenAddress).Msg("Starting server")
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start server")
			return err
		}
		return nil
	})

	g.Go(func() error {
		return refreshCurrencyStatus(gctx, s)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}

		return nil
	})

	return g.Wait()
}
