package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/receive"
)

const namespace = "receive"

// DeviceCounter reports the number of connected devices.
type DeviceCounter interface {
	Count() int
}

// SessionCounter reports the number of open receive sessions.
type SessionCounter interface {
	Count() int
}

// Service owns the prometheus registry of a server.
type Service struct {
	config   config.Server
	Registry *prometheus.Registry

	verifications *prometheus.CounterVec
	durations     *prometheus.HistogramVec
}

// New creates the registry and registers the process and receive collectors.
func New(cfg config.Server) (*Service, error) {
	registry := prometheus.NewRegistry()

	s := &Service{
		config:   cfg,
		Registry: registry,
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Completed address verifications by currency and outcome.",
		}, []string{"currency", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "verification_duration_seconds",
			Help:      "Time from device request to device answer.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"currency"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.verifications,
		s.durations,
	} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

// RecordVerification implements receive.MetricsRecorder. Attempts that
// never reached the device are counted without a duration.
func (s *Service) RecordVerification(currencyID string, outcome receive.Outcome, elapsed time.Duration) {
	s.verifications.WithLabelValues(currencyID, string(outcome)).Inc()

	if elapsed > 0 {
		s.durations.WithLabelValues(currencyID).Observe(elapsed.Seconds())
	}
}

// RegisterGauges exposes the number of connected devices and open sessions.
func (s *Service) RegisterGauges(devices DeviceCounter, sessions SessionCounter) error {
	for _, c := range []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "devices_connected",
			Help:      "Number of connected devices.",
		}, func() float64 { return float64(devices.Count()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_open",
			Help:      "Number of open receive sessions.",
		}, func() float64 { return float64(sessions.Count()) }),
	} {
		if err := s.Registry.Register(c); err != nil {
			return errors.Wrap(err, "failed to register gauge")
		}
	}

	return nil
}
