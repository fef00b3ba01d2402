package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/router"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/device/emulator"
)

// WithTestServer returns a fully configured server (using the default server config).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)

	closure(s)
}

// NewTestServer creates a server with its routes attached. The keyring holds
// the emulator mnemonic, so fresh addresses match the built-in device
// profile. The server is shut down when the test completes.
func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	if config.Keyring.Mnemonic == "" {
		config.Keyring.Mnemonic = emulator.DefaultMnemonic
	}
	config.Keyring.PromptPassphrase = false
	config.Logger.PrettyPrintConsole = false

	s, err := api.InitNewServer(config, t)
	require.NoError(t, err, "failed to initialize server")

	require.NoError(t, router.Init(s), "failed to initialize router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if errs := s.Shutdown(ctx); len(errs) > 0 {
			t.Logf("Failed to shutdown server: %v", errs)
		}
	})

	return s
}
