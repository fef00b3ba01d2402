package device

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDisconnected is returned when no device is reachable at the
	// requested path, or when the device went away while a command was
	// outstanding.
	ErrDisconnected = errors.New("device disconnected")

	// ErrUnknownCommand is returned by transports for commands they do not
	// implement.
	ErrUnknownCommand = errors.New("unknown device command")

	// ErrDeviceNotFound is returned by the Hub for unknown handles.
	ErrDeviceNotFound = errors.New("device not found")
)

// Status codes reported by the device.
const (
	StatusOK                 = 0x9000
	StatusUserRefused        = 0x6985
	StatusWrongAppOpened     = 0x6d00
	StatusLocked             = 0x5515
	StatusIncorrectParameter = 0x6b00
)

// CommandError is a device reported failure for a single command.
type CommandError struct {
	Command string
	Code    int
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("device command %s failed with status 0x%04x: %s", e.Command, e.Code, e.Message)
}

// IsDisconnected reports whether err means the device is not reachable.
func IsDisconnected(err error) bool {
	return errors.Is(err, ErrDisconnected)
}
