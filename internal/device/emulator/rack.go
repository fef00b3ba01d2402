package emulator

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/wallet/address"
)

var ErrUnknownProfile = errors.New("unknown device profile")

// Rack plugs emulated devices by profile name into a hub.
type Rack struct {
	hub       *device.Hub
	addresses address.Service
	confirmer Confirmer

	mu       sync.RWMutex
	profiles []Profile
	plugged  map[uuid.UUID]*Emulator
}

// NewRack creates a Rack. confirmer overrides the confirmer of every profile
// if not nil.
func NewRack(hub *device.Hub, addresses address.Service, profiles []Profile, confirmer Confirmer) *Rack {
	return &Rack{
		hub:       hub,
		addresses: addresses,
		confirmer: confirmer,
		profiles:  profiles,
		plugged:   make(map[uuid.UUID]*Emulator),
	}
}

// Profiles returns the known profiles.
func (r *Rack) Profiles() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Profile(nil), r.profiles...)
}

// AddProfile makes profile pluggable, replacing a profile with the same name.
func (r *Rack) AddProfile(profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.profiles {
		if r.profiles[i].Name == profile.Name {
			r.profiles[i] = profile
			return nil
		}
	}
	r.profiles = append(r.profiles, profile)

	return nil
}

// Plug connects a new emulator for the profile called name.
func (r *Rack) Plug(name string) (*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := FindProfile(r.profiles, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}

	dev, emu, err := Plug(r.hub, profile, r.addresses, r.confirmer)
	if err != nil {
		return nil, err
	}

	// Connect replaced any emulator on the same path.
	for handle := range r.plugged {
		if _, err := r.hub.Get(handle); err != nil {
			delete(r.plugged, handle)
		}
	}
	r.plugged[dev.Handle] = emu

	log.Debug().Str("component", "device_rack").Str("profile", name).Str("handle", dev.Handle.String()).Msg("Emulator plugged")

	return dev, nil
}

// Unplug disconnects the emulator with handle.
func (r *Rack) Unplug(handle uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.hub.Disconnect(handle); err != nil {
		return err
	}
	delete(r.plugged, handle)

	return nil
}

// Emulator returns the plugged emulator with handle.
func (r *Rack) Emulator(handle uuid.UUID) (*Emulator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emu, ok := r.plugged[handle]

	return emu, ok
}
