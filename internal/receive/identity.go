package receive

import (
	"sync"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github/chapool/go-receive/internal/device"
)

// IdentityTracker remembers which device connection was live when the
// receive step was entered. It only compares connection handles; it never
// owns or touches the device.
type IdentityTracker struct {
	mu       sync.Mutex
	captured bool
	baseline *device.Device
}

// NewIdentityTracker returns a tracker without a baseline.
func NewIdentityTracker() *IdentityTracker {
	return &IdentityTracker{}
}

// CaptureBaseline records dev as the baseline. It must be called once per
// step entry; a second call before Release fails with ErrBaselineCaptured.
func (t *IdentityTracker) CaptureBaseline(dev fn.Option[*device.Device]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.captured {
		return ErrBaselineCaptured
	}

	t.baseline = dev.UnwrapOr(nil)
	t.captured = true

	return nil
}

// HasChanged reports whether current is a different connection than the
// baseline. Presence versus absence counts as a change.
func (t *IdentityTracker) HasChanged(current fn.Option[*device.Device]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return !device.SameConnection(t.baseline, current.UnwrapOr(nil))
}

// Captured reports whether a baseline is held.
func (t *IdentityTracker) Captured() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.captured
}

// Release forgets the baseline so the next step entry can capture a new one.
func (t *IdentityTracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.baseline = nil
	t.captured = false
}
