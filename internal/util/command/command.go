package command

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/config"
)

const (
	shutdownTimeout = 30 * time.Second
)

// SetupLogger configures the global logger from config.
func SetupLogger(config config.Server) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(config.Logger.Level)
	if config.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}
}

// WithServer initializes a server from config, runs f and shuts the server
// down again. The error of f is returned.
func WithServer(ctx context.Context, config config.Server, f func(ctx context.Context, s *api.Server) error) error {
	SetupLogger(config)

	s, err := api.InitNewServer(config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	start := s.Clock.Now()
	log.Debug().Msg("Starting command")

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}

		log.Debug().Dur("duration", s.Clock.Now().Sub(start)).Msg("Command finished")
	}()

	return f(ctx, s)
}

// NewSubcommandGroup returns a command that only groups subCommands.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <subcommand>", name),
		Short: fmt.Sprintf("%s related subcommands", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}
