package flow

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/receive"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet/currency"
)

var (
	ErrWrongStep     = errors.New("operation not available in the current step")
	ErrNoDevice      = errors.New("no device connected")
	ErrSessionClosed = errors.New("receive session closed")
)

// Step is a step of the receive flow.
type Step string

const (
	StepDevice  Step = "device"
	StepReceive Step = "receive"
)

// StatusLookup returns disruption notices for currencies.
type StatusLookup interface {
	Lookup(currencyID string) (currency.Status, bool)
}

// SessionConfig holds the dependencies of a Session.
type SessionConfig struct {
	Account        receive.Account
	Bridge         receive.CommandBridge
	Devices        receive.DeviceSource
	Clock          time2.Clock
	Metrics        receive.MetricsRecorder
	RequestTimeout time.Duration

	// Statuses is optional.
	Statuses StatusLookup
}

// View is a snapshot of a Session for presentation.
type View struct {
	ID      uuid.UUID
	Step    Step
	Account receive.Account

	// Device is the connection the receive step was entered with.
	Device *device.Device

	Skipped  bool
	Status   receive.Status
	State    receive.State
	Error    *receive.VerificationError
	Pending  bool
	Advanced bool
	Closed   bool

	Alert fn.Option[currency.Status]

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is one run of the receive flow: it connects a device, shows the
// fresh address and has it verified by a receive.Controller. Session is the
// controller's collaborator.
type Session struct {
	id       uuid.UUID
	account  receive.Account
	devices  receive.DeviceSource
	statuses StatusLookup
	clock    time2.Clock
	log      zerolog.Logger
	ctrl     *receive.Controller

	mu        sync.RWMutex
	step      Step
	device    *device.Device
	skipped   bool
	status    receive.Status
	verr      *receive.VerificationError
	advanced  bool
	closed    bool
	createdAt time.Time
	updatedAt time.Time
	changed   chan struct{}
}

// NewSession starts a session on the device step.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Clock == nil {
		cfg.Clock = time2.DefaultClock
	}

	now := cfg.Clock.Now()
	s := &Session{
		id:        uuid.New(),
		account:   cfg.Account,
		devices:   cfg.Devices,
		statuses:  cfg.Statuses,
		clock:     cfg.Clock,
		step:      StepDevice,
		createdAt: now,
		updatedAt: now,
		changed:   make(chan struct{}),
	}
	s.log = log.With().Str("component", "receive_flow").Str("session_id", s.id.String()).Logger()

	ctrl, err := receive.NewController(receive.Config{
		Account:        cfg.Account,
		Bridge:         cfg.Bridge,
		Devices:        cfg.Devices,
		Collaborator:   s,
		Clock:          cfg.Clock,
		Metrics:        cfg.Metrics,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl

	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// ConnectDevice completes the device step with the live device and enters
// the receive step, which starts verification. It is also accepted once a
// retry routed back to the device step but before that route was delivered.
func (s *Session) ConnectDevice(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStepLocked(StepDevice); err != nil {
		if !errors.Is(err, ErrWrongStep) || !s.routePendingLocked() {
			return err
		}
	}

	current := s.devices.Current()
	if current.IsNone() {
		return ErrNoDevice
	}

	if err := s.ctrl.Enter(current); err != nil {
		return errors.Wrap(err, "failed to enter receive step")
	}

	s.step = StepReceive
	s.device = current.UnsafeFromSome()
	s.touchLocked()

	s.logFrom(ctx).Info().Str("device_handle", s.device.Handle.String()).Msg("Device connected to receive flow")

	return nil
}

// SkipDevice continues without a device. The address is shown but not
// verified.
func (s *Session) SkipDevice(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStepLocked(StepDevice); err != nil {
		return err
	}

	if err := s.ctrl.AcceptWithoutDevice(); err != nil {
		return errors.Wrap(err, "failed to skip device")
	}
	if err := s.ctrl.Enter(fn.None[*device.Device]()); err != nil {
		return errors.Wrap(err, "failed to enter receive step")
	}

	s.step = StepReceive
	s.skipped = true
	s.device = nil
	s.touchLocked()

	s.logFrom(ctx).Info().Msg("Receive flow continued without device")

	return nil
}

// Verify asks for a new verification from the receive step.
func (s *Session) Verify(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStepLocked(StepReceive); err != nil {
		return err
	}

	s.logFrom(ctx).Debug().Msg("Verification requested")

	return s.ctrl.Retry()
}

// Close tears the session down.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.touchLocked()
	s.mu.Unlock()

	s.ctrl.Stop()
	s.log.Debug().Msg("Receive session closed")
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	snap := s.ctrl.Snapshot()

	s.mu.RLock()
	defer s.mu.RUnlock()

	view := View{
		ID:        s.id,
		Step:      s.step,
		Account:   s.account,
		Device:    s.device,
		Skipped:   s.skipped,
		Status:    s.status,
		State:     snap.State,
		Error:     s.verr,
		Pending:   snap.Pending(),
		Advanced:  s.advanced,
		Closed:    s.closed,
		Alert:     fn.None[currency.Status](),
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}

	if s.statuses != nil {
		if st, ok := s.statuses.Lookup(s.account.CurrencyID); ok {
			view.Alert = fn.Some(st)
		}
	}

	return view
}

// Changed returns a channel that is closed on the next change.
func (s *Session) Changed() <-chan struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.changed
}

// OnVerificationChanged implements receive.Collaborator.
func (s *Session) OnVerificationChanged(status receive.Status, verr *receive.VerificationError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.verr = verr
	s.touchLocked()

	event := s.log.Debug()
	if verr != nil {
		event = s.log.Info().Err(verr)
	}
	event.Str("status", status.String()).Msg("Verification status changed")
}

// AdvanceToNextStep implements receive.Collaborator.
func (s *Session) AdvanceToNextStep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advanced = true
	s.step = StepReceive
	s.touchLocked()
}

// RouteToDeviceConnection implements receive.Collaborator. A route that
// arrives after the device was connected again is ignored.
func (s *Session) RouteToDeviceConnection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.Snapshot().Active {
		return
	}

	s.step = StepDevice
	s.device = nil
	s.touchLocked()
}

// ClearSkipFlag implements receive.Collaborator.
func (s *Session) ClearSkipFlag() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skipped = false
	s.touchLocked()
}

// routePendingLocked reports whether the controller left the receive step
// while the session has not seen the route yet.
func (s *Session) routePendingLocked() bool {
	return s.step == StepReceive && !s.ctrl.Snapshot().Active
}

func (s *Session) checkStepLocked(step Step) error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.step != step {
		return errors.Wrapf(ErrWrongStep, "in step %s", s.step)
	}

	return nil
}

func (s *Session) touchLocked() {
	s.updatedAt = s.clock.Now()
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) logFrom(ctx context.Context) *zerolog.Logger {
	l := util.LogFromContext(ctx).With().
		Str("component", "receive_flow").
		Str("session_id", s.id.String()).
		Logger()

	return &l
}
