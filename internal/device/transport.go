package device

import "context"

// Command names understood by device transports.
const (
	CommandGetAddress = "getAddress"
)

// Command is a single request sent over a Transport.
type Command struct {
	Name    string
	Payload []byte
}

// Response is the answer of a device to a Command.
type Response struct {
	Payload []byte
}

// Transport is an opaque asynchronous command channel to one connected
// device. Exchange blocks until the device answers, ctx expires or the
// device goes away; in the latter case the returned error wraps
// ErrDisconnected.
type Transport interface {
	Exchange(ctx context.Context, cmd Command) (Response, error)

	// Close releases the channel. Pending and future exchanges fail with
	// ErrDisconnected.
	Close() error
}
