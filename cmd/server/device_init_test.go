package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/test"
)

func TestInitializeDevices(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Receive.PlugDefaultDevice = true

	s := test.NewTestServer(t, cfg)
	require.NoError(t, initializeKeyring(testContext(t), s))
	require.NoError(t, initializeDevices(s))

	require.True(t, s.Hub.Current().IsSome())
	assert.Equal(t, "emulator", s.Hub.Current().UnsafeFromSome().Path)
}

func TestInitializeDevicesDisabled(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Receive.PlugDefaultDevice = false

	s := test.NewTestServer(t, cfg)
	require.NoError(t, initializeDevices(s))
	assert.True(t, s.Hub.Current().IsNone())
}

func TestInitializeKeyringFallsBackToEmulatorMnemonic(t *testing.T) {
	s := test.NewTestServer(t, config.DefaultServiceConfigFromEnv())
	s.Seed.Clear()
	s.Config.Keyring.Mnemonic = ""

	require.NoError(t, initializeKeyring(testContext(t), s))
	assert.True(t, s.Ready())
}

func TestRefreshCurrencyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"bitcoin","message":"Delays","link":"","warning":true}]`))
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.CurrencyStatus.URL = srv.URL
	cfg.CurrencyStatus.RefreshInterval = time.Hour
	cfg.CurrencyStatus.Timeout = time.Second

	s := test.NewTestServer(t, cfg)

	done := make(chan error, 1)
	go func() { done <- refreshCurrencyStatus(testContext(t), s) }()

	require.Eventually(t, func() bool {
		_, ok := s.Statuses.Lookup("bitcoin")
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	s.Config.CurrencyStatus.URL = ""
	require.NoError(t, refreshCurrencyStatus(testContext(t), s))
}
