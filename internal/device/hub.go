package device

import (
	"sort"
	"sync"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type connection struct {
	device    *Device
	transport Transport
	seq       uint64
}

// Hub keeps track of the devices currently connected to the host. The most
// recently connected device that is still present is the live device.
type Hub struct {
	mu          sync.RWMutex
	clock       time2.Clock
	seq         uint64
	connections map[uuid.UUID]*connection
}

// NewHub creates an empty Hub.
func NewHub(clock time2.Clock) *Hub {
	return &Hub{
		clock:       clock,
		connections: make(map[uuid.UUID]*connection),
	}
}

// Connect registers a new connection and returns its device reference. The
// handle is fresh for every call, even for a path that was seen before.
func (h *Hub) Connect(path string, modelID string, transport Transport) *Device {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	dev := &Device{
		Handle:      uuid.New(),
		Path:        path,
		ModelID:     modelID,
		ConnectedAt: h.clock.Now(),
	}

	// A path can only be held by one connection at a time.
	for handle, conn := range h.connections {
		if conn.device.Path == path {
			h.dropLocked(handle)
		}
	}

	h.connections[dev.Handle] = &connection{
		device:    dev,
		transport: transport,
		seq:       h.seq,
	}

	log.Info().
		Str("component", "device_hub").
		Str("handle", dev.Handle.String()).
		Str("path", path).
		Str("model_id", modelID).
		Msg("Device connected")

	return dev
}

// Disconnect removes the connection identified by handle and closes its
// transport.
func (h *Hub) Disconnect(handle uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.connections[handle]; !ok {
		return errors.Wrapf(ErrDeviceNotFound, "handle %s", handle)
	}

	h.dropLocked(handle)

	return nil
}

func (h *Hub) dropLocked(handle uuid.UUID) {
	conn := h.connections[handle]
	delete(h.connections, handle)

	if err := conn.transport.Close(); err != nil {
		log.Warn().Err(err).Str("handle", handle.String()).Msg("Failed to close device transport")
	}

	log.Info().
		Str("component", "device_hub").
		Str("handle", handle.String()).
		Str("path", conn.device.Path).
		Msg("Device disconnected")
}

// Current returns the live device, if any.
func (h *Hub) Current() fn.Option[*Device] {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var latest *connection
	for _, conn := range h.connections {
		if latest == nil || conn.seq > latest.seq {
			latest = conn
		}
	}

	if latest == nil {
		return fn.None[*Device]()
	}

	return fn.Some(latest.device)
}

// Get returns the device for handle.
func (h *Hub) Get(handle uuid.UUID) (*Device, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.connections[handle]
	if !ok {
		return nil, errors.Wrapf(ErrDeviceNotFound, "handle %s", handle)
	}

	return conn.device, nil
}

// List returns all connected devices, oldest connection first.
func (h *Hub) List() []*Device {
	h.mu.RLock()
	conns := make([]*connection, 0, len(h.connections))
	for _, conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	sort.Slice(conns, func(i, j int) bool { return conns[i].seq < conns[j].seq })

	devices := make([]*Device, 0, len(conns))
	for _, conn := range conns {
		devices = append(devices, conn.device)
	}

	return devices
}

// Count returns the number of connected devices.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connections)
}

// TransportByPath returns the transport of the device connected at path.
func (h *Hub) TransportByPath(path string) (Transport, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.connections {
		if conn.device.Path == path {
			return conn.transport, nil
		}
	}

	return nil, errors.Wrapf(ErrDisconnected, "no device at path %q", path)
}

// Close disconnects every device.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for handle := range h.connections {
		h.dropLocked(handle)
	}
}
