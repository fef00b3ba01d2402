package emulator

import (
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/wallet/address"
)

// Plug creates an emulator for profile and connects it to hub.
func Plug(hub *device.Hub, profile Profile, addresses address.Service, confirmer Confirmer) (*device.Device, *Emulator, error) {
	emu, err := New(profile, addresses, confirmer)
	if err != nil {
		return nil, nil, err
	}

	p := emu.Profile()
	dev := hub.Connect(p.Path, p.Model, emu)

	return dev, emu, nil
}
