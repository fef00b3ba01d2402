package device

import (
	"time"

	"github.com/google/uuid"
)

// Device references one physical connection of a hardware device. A new
// Handle is assigned every time a device is (re)connected, so two
// connections of the same model, or of the very same unit, never compare
// equal. Devices are handed out by pointer and never mutated after Connect.
type Device struct {
	Handle      uuid.UUID
	Path        string
	ModelID     string
	ConnectedAt time.Time
}

// SameConnection reports whether a and b refer to the same connection
// instance. Two absent devices are considered the same.
func SameConnection(a, b *Device) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Handle == b.Handle
}

// AddressRequest is the stable request shape of the getAddress command.
type AddressRequest struct {
	DerivationMode string `json:"derivationMode"`
	CurrencyID     string `json:"currencyId"`
	DevicePath     string `json:"devicePath"`
	Path           string `json:"path"`
	Verify         bool   `json:"verify"`
}

// AddressResponse is the stable response shape of the getAddress command.
type AddressResponse struct {
	Address string `json:"address"`
}
