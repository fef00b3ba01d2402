package receive

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/util"
)

const notificationQueueSize = 16

// Config holds the collaborators of a Controller.
type Config struct {
	Account      Account
	Bridge       CommandBridge
	Devices      DeviceSource
	Collaborator Collaborator

	// Clock defaults to time2.DefaultClock.
	Clock time2.Clock

	// Metrics is optional.
	Metrics MetricsRecorder

	// RequestTimeout bounds a single device request. Zero waits until the
	// user answers on the device or the step is torn down.
	RequestTimeout time.Duration
}

type notificationKind int

const (
	notifyStatusChanged notificationKind = iota
	notifyAdvance
	notifyRouteToDevice
	notifyClearSkip
	notifyInitiate
)

type notification struct {
	kind   notificationKind
	status Status
	verr   *VerificationError

	// entry is the step entry a scheduled initiate belongs to.
	entry uint64
}

// Controller drives the on-device verification of a receive address. All
// state changes happen under mu; outbound notifications are queued in
// transition order and delivered by a single dispatcher goroutine. Device
// requests run on a goroutine manager that lives as long as the step.
type Controller struct {
	cfg     Config
	tracker *IdentityTracker
	log     zerolog.Logger

	mu             sync.Mutex
	state          State
	verr           *VerificationError
	active         bool
	stopped        bool
	advanced       bool
	entry          uint64
	attempt        uint64
	attemptStarted time.Time
	cancelAttempt  context.CancelFunc

	ctx           context.Context
	cancel        context.CancelFunc
	goroutines    *fn.GoroutineManager
	notifications *fn.ConcurrentQueue[notification]
	quit          chan struct{}
	stopOnce      sync.Once
}

// NewController validates cfg and starts the notification dispatcher. The
// returned controller is Idle and inactive until Enter is called.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Account.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid account")
	}
	if cfg.Bridge == nil {
		return nil, errors.New("command bridge is required")
	}
	if cfg.Devices == nil {
		return nil, errors.New("device source is required")
	}
	if cfg.Collaborator == nil {
		return nil, errors.New("collaborator is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = time2.DefaultClock
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		cfg:     cfg,
		tracker: NewIdentityTracker(),
		log: log.With().
			Str("component", "receive_controller").
			Str("currency_id", cfg.Account.CurrencyID).
			Str("account", cfg.Account.Name).
			Logger(),
		state:         StateIdle,
		ctx:           ctx,
		cancel:        cancel,
		goroutines:    fn.NewGoroutineManager(),
		notifications: fn.NewConcurrentQueue[notification](notificationQueueSize),
		quit:          make(chan struct{}),
	}

	c.notifications.Start()
	go c.dispatch()

	return c, nil
}

// Account returns the account context of the step.
func (c *Controller) Account() Account {
	return c.cfg.Account
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:  c.state,
		Status: c.state.Status(),
		Error:  c.verr,
		Active: c.active,
	}
}

// Enter marks the step as entered with dev as the baseline device. If the
// address still needs verification an attempt is scheduled.
func (c *Controller) Enter(dev fn.Option[*device.Device]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	if err := c.tracker.CaptureBaseline(dev); err != nil {
		return err
	}

	c.active = true
	c.log.Debug().Bool("with_device", dev.IsSome()).Str("state", c.state.String()).Msg("Step entered")

	if c.state == StateIdle {
		c.scheduleInitiateLocked()
	}

	return nil
}

// Initiate starts a verification attempt. It is a no-op while an attempt
// is in flight. ctx only carries request scoped values; the device request
// itself is bound to the lifetime of the controller.
func (c *Controller) Initiate(ctx context.Context) error {
	return c.initiate(ctx, fn.None[uint64]())
}

func (c *Controller) initiate(ctx context.Context, scheduledEntry fn.Option[uint64]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	stale := fn.MapOptionZ(scheduledEntry, func(entry uint64) bool {
		return entry != c.entry
	})
	if stale {
		return nil
	}

	if !c.active {
		return errors.Wrap(ErrInvalidTransition, "step not entered")
	}

	dev := c.cfg.Devices.Current()

	tr, err := c.applyLocked(initiateEvent{deviceAbsent: dev.IsNone()})
	if err != nil || tr == nil {
		return err
	}

	if tr.next == StateFailed {
		c.recordLocked(OutcomeDeviceDisconnected, 0)
		return nil
	}

	c.issueRequestLocked(ctx, dev.UnsafeFromSome())

	return nil
}

// Retry re-verifies after success, failure or an explicit skip. If the live
// device is not the baseline connection, or the address was not verified,
// the user is routed back to the device connection step first.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	changed := c.tracker.HasChanged(c.cfg.Devices.Current())

	_, err := c.applyLocked(retryEvent{deviceChanged: changed})

	return err
}

// ReVerify is an alias of Retry used from the success screen.
func (c *Controller) ReVerify() error {
	return c.Retry()
}

// AcceptWithoutDevice records that the user chose to use the address
// without verifying it on a device.
func (c *Controller) AcceptWithoutDevice() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	tr, err := c.applyLocked(acceptWithoutDeviceEvent{})
	if err != nil || tr == nil {
		return err
	}

	c.recordLocked(OutcomeRejected, 0)

	return nil
}

// Reset returns to Idle and discards any in-flight result.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}

	c.advanced = false
	_, err := c.applyLocked(resetEvent{})

	return err
}

// Stop tears the step down without waiting for an outstanding device
// request. The request is cancelled and its result, should it still
// arrive, is dropped.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		c.active = false
		if c.cancelAttempt != nil {
			c.cancelAttempt()
			c.cancelAttempt = nil
		}
		c.mu.Unlock()

		close(c.quit)
		c.cancel()
		c.notifications.Stop()

		// A bridge that ignores its context keeps its goroutine until it
		// answers; complete drops that answer.
		go c.goroutines.Stop()

		c.log.Debug().Msg("Controller stopped")
	})
}

// applyLocked runs ev through the transition table and applies the
// resulting effects except issueRequestEffect, which needs the device and
// is handled by initiate. It returns nil, nil for ignored events.
func (c *Controller) applyLocked(ev event) (*transition, error) {
	tr, err := nextState(c.state, transitionEnv{account: c.cfg.Account, advanced: c.advanced}, ev)
	if errors.Is(err, errNoop) {
		c.log.Debug().Str("event", ev.eventName()).Str("state", c.state.String()).Msg("Event ignored")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("event", ev.eventName()).
		Str("from", c.state.String()).
		Str("to", tr.next.String()).
		Msg("State transition")

	c.state = tr.next
	c.verr = tr.verr

	for _, eff := range tr.effects {
		switch eff := eff.(type) {
		case statusChangedEffect:
			c.notifyLocked(notification{kind: notifyStatusChanged, status: eff.status, verr: eff.verr})
		case advanceEffect:
			c.advanced = true
			c.notifyLocked(notification{kind: notifyAdvance})
		case routeToDeviceEffect:
			c.notifyLocked(notification{kind: notifyRouteToDevice})
		case clearSkipEffect:
			c.notifyLocked(notification{kind: notifyClearSkip})
		case scheduleInitiateEffect:
			c.scheduleInitiateLocked()
		case suspendEffect:
			c.active = false
			c.tracker.Release()
		case discardInflightEffect:
			c.attempt++
			if c.cancelAttempt != nil {
				c.cancelAttempt()
				c.cancelAttempt = nil
			}
		case issueRequestEffect:
		}
	}

	return tr, nil
}

func (c *Controller) scheduleInitiateLocked() {
	c.entry++
	if !c.active {
		return
	}

	c.notifyLocked(notification{kind: notifyInitiate, entry: c.entry})
}

func (c *Controller) notifyLocked(n notification) {
	if c.stopped {
		return
	}

	c.notifications.ChanIn() <- n
}

func (c *Controller) issueRequestLocked(ctx context.Context, dev *device.Device) {
	c.attempt++
	attempt := c.attempt

	req := device.AddressRequest{
		DerivationMode: c.cfg.Account.DerivationMode,
		CurrencyID:     c.cfg.Account.CurrencyID,
		DevicePath:     dev.Path,
		Path:           c.cfg.Account.FreshAddressPath,
		Verify:         true,
	}

	var (
		reqCtx context.Context
		cancel context.CancelFunc
	)
	if c.cfg.RequestTimeout > 0 {
		reqCtx, cancel = context.WithTimeout(c.ctx, c.cfg.RequestTimeout)
	} else {
		reqCtx, cancel = context.WithCancel(c.ctx)
	}
	reqCtx = util.LogFromContext(ctx).WithContext(reqCtx)

	c.cancelAttempt = cancel
	c.attemptStarted = c.cfg.Clock.Now()

	c.log.Info().
		Uint64("attempt", attempt).
		Str("device_handle", dev.Handle.String()).
		Str("device_path", dev.Path).
		Str("path", req.Path).
		Msg("Requesting address verification on device")

	started := c.goroutines.Go(reqCtx, func(ctx context.Context) {
		address, err := c.cfg.Bridge.GetAddress(ctx, req)
		c.complete(attempt, address, err)
	})
	if !started {
		cancel()
		c.cancelAttempt = nil
		_, _ = c.applyLocked(requestFailedEvent{err: errors.Wrap(ErrStopped, "device request not started")})
	}
}

// complete applies the result of attempt unless the step moved on since it
// was issued.
func (c *Controller) complete(attempt uint64, address string, reqErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || attempt != c.attempt || c.state != StateVerifying {
		c.log.Debug().Uint64("attempt", attempt).Msg("Discarding stale device response")
		return
	}

	if c.cancelAttempt != nil {
		c.cancelAttempt()
		c.cancelAttempt = nil
	}

	var ev event = addressReturnedEvent{address: address}
	if reqErr != nil {
		ev = requestFailedEvent{err: reqErr}
	}

	if _, err := c.applyLocked(ev); err != nil {
		c.log.Error().Err(err).Msg("Failed to apply device response")
		return
	}

	elapsed := c.cfg.Clock.Now().Sub(c.attemptStarted)
	outcome := outcomeOf(c.verr)

	logEvent := c.log.Info()
	if c.verr != nil {
		logEvent = c.log.Warn().Err(c.verr)
	}
	logEvent.
		Uint64("attempt", attempt).
		Str("outcome", string(outcome)).
		Dur("elapsed", elapsed).
		Msg("Address verification finished")

	c.recordLocked(outcome, elapsed)
}

func (c *Controller) recordLocked(outcome Outcome, elapsed time.Duration) {
	if c.cfg.Metrics == nil {
		return
	}

	c.cfg.Metrics.RecordVerification(c.cfg.Account.CurrencyID, outcome, elapsed)
}

func (c *Controller) dispatch() {
	for {
		select {
		case n := <-c.notifications.ChanOut():
			select {
			case <-c.quit:
				return
			default:
			}
			c.deliver(n)

		case <-c.quit:
			return
		}
	}
}

func (c *Controller) deliver(n notification) {
	switch n.kind {
	case notifyStatusChanged:
		c.cfg.Collaborator.OnVerificationChanged(n.status, n.verr)
	case notifyAdvance:
		c.cfg.Collaborator.AdvanceToNextStep()
	case notifyRouteToDevice:
		c.cfg.Collaborator.RouteToDeviceConnection()
	case notifyClearSkip:
		c.cfg.Collaborator.ClearSkipFlag()
	case notifyInitiate:
		if err := c.initiate(c.ctx, fn.Some(n.entry)); err != nil && !errors.Is(err, ErrStopped) {
			c.log.Debug().Err(err).Msg("Scheduled verification not started")
		}
	}
}
