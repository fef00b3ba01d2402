package receive_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/receive"
)

const eventTimeout = 2 * time.Second

func testAccount() receive.Account {
	return receive.Account{
		CurrencyID:       "bitcoin",
		DerivationMode:   "native_segwit",
		FreshAddress:     "abc123",
		FreshAddressPath: "84'/0'/0'/0/0",
		Name:             "BTC 1",
	}
}

func newDevice(path string) *device.Device {
	return &device.Device{
		Handle:      uuid.New(),
		Path:        path,
		ModelID:     "nanoX",
		ConnectedAt: time.Now(),
	}
}

type result struct {
	address string
	err     error
}

type bridgeCall struct {
	req  device.AddressRequest
	resp chan result
}

// fakeBridge answers immediately through respond, or hands each call to the
// test through calls when respond is nil. A call whose context ends before
// the test answers resolves with lateAddress, like a device answering after
// the step went away.
type fakeBridge struct {
	respond     func(req device.AddressRequest) result
	lateAddress string
	calls       chan *bridgeCall
	count       atomic.Int32
}

func newFakeBridge(respond func(req device.AddressRequest) result) *fakeBridge {
	return &fakeBridge{
		respond:     respond,
		lateAddress: "abc123",
		calls:       make(chan *bridgeCall, 16),
	}
}

func answering(address string) *fakeBridge {
	return newFakeBridge(func(device.AddressRequest) result { return result{address: address} })
}

func failing(err error) *fakeBridge {
	return newFakeBridge(func(device.AddressRequest) result { return result{err: err} })
}

func (b *fakeBridge) GetAddress(ctx context.Context, req device.AddressRequest) (string, error) {
	b.count.Add(1)

	if b.respond != nil {
		r := b.respond(req)
		return r.address, r.err
	}

	call := &bridgeCall{req: req, resp: make(chan result, 1)}
	b.calls <- call

	select {
	case r := <-call.resp:
		return r.address, r.err
	case <-ctx.Done():
		return b.lateAddress, nil
	}
}

func (b *fakeBridge) nextCall(t *testing.T) *bridgeCall {
	t.Helper()

	select {
	case call := <-b.calls:
		return call
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for bridge call")
		return nil
	}
}

type fakeDevices struct {
	mu  sync.Mutex
	dev *device.Device
}

func devicesWith(dev *device.Device) *fakeDevices {
	return &fakeDevices{dev: dev}
}

func (d *fakeDevices) Current() fn.Option[*device.Device] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dev == nil {
		return fn.None[*device.Device]()
	}

	return fn.Some(d.dev)
}

func (d *fakeDevices) set(dev *device.Device) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dev = dev
}

type statusChange struct {
	status receive.Status
	verr   *receive.VerificationError
}

// recorder implements receive.Collaborator and turns every callback into an
// event string.
type recorder struct {
	mu       sync.Mutex
	changes  []statusChange
	advances int
	events   chan string
}

func newRecorder() *recorder {
	return &recorder{events: make(chan string, 128)}
}

func (r *recorder) OnVerificationChanged(status receive.Status, verr *receive.VerificationError) {
	r.mu.Lock()
	r.changes = append(r.changes, statusChange{status: status, verr: verr})
	r.mu.Unlock()

	name := "status:" + status.String()
	if verr != nil {
		name = fmt.Sprintf("%s:%s", name, verr.Kind)
	}
	r.events <- name
}

func (r *recorder) AdvanceToNextStep() {
	r.mu.Lock()
	r.advances++
	r.mu.Unlock()

	r.events <- "advance"
}

func (r *recorder) RouteToDeviceConnection() {
	r.events <- "route"
}

func (r *recorder) ClearSkipFlag() {
	r.events <- "clear_skip"
}

func (r *recorder) lastChange() statusChange {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.changes[len(r.changes)-1]
}

func (r *recorder) advanceCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.advances
}

func (r *recorder) expect(t *testing.T, events ...string) {
	t.Helper()

	for _, want := range events {
		select {
		case got := <-r.events:
			require.Equal(t, want, got)
		case <-time.After(eventTimeout):
			t.Fatalf("timed out waiting for event %q", want)
		}
	}
}

func (r *recorder) expectNone(t *testing.T) {
	t.Helper()

	select {
	case got := <-r.events:
		t.Fatalf("unexpected event %q", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func newController(t *testing.T, bridge receive.CommandBridge, devices receive.DeviceSource, rec *recorder) *receive.Controller {
	t.Helper()

	ctrl, err := receive.NewController(receive.Config{
		Account:      testAccount(),
		Bridge:       bridge,
		Devices:      devices,
		Collaborator: rec,
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Stop)

	return ctrl
}
