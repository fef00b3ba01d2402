package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/metrics"
	"github/chapool/go-receive/internal/receive"
)

type fixedCount int

func (c fixedCount) Count() int { return int(c) }

func TestRecordVerification(t *testing.T) {
	m, err := metrics.New(config.DefaultServiceConfigFromEnv())
	require.NoError(t, err)

	m.RecordVerification("bitcoin", receive.OutcomeVerified, 2*time.Second)
	m.RecordVerification("bitcoin", receive.OutcomeVerified, time.Second)
	m.RecordVerification("bitcoin", receive.OutcomeDeviceDisconnected, 0)

	expected := `
# HELP receive_verifications_total Completed address verifications by currency and outcome.
# TYPE receive_verifications_total counter
receive_verifications_total{currency="bitcoin",outcome="device_disconnected"} 1
receive_verifications_total{currency="bitcoin",outcome="verified"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "receive_verifications_total"))

	count, err := testutil.GatherAndCount(m.Registry, "receive_verification_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterGauges(t *testing.T) {
	m, err := metrics.New(config.DefaultServiceConfigFromEnv())
	require.NoError(t, err)

	require.NoError(t, m.RegisterGauges(fixedCount(2), fixedCount(5)))

	expected := `
# HELP receive_devices_connected Number of connected devices.
# TYPE receive_devices_connected gauge
receive_devices_connected 2
# HELP receive_sessions_open Number of open receive sessions.
# TYPE receive_sessions_open gauge
receive_sessions_open 5
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"receive_devices_connected", "receive_sessions_open"))

	require.Error(t, m.RegisterGauges(fixedCount(0), fixedCount(0)))
}
