package emulator

import (
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultMnemonic is the keyring of the built-in profile.
//
//nolint:dupword,gosec // well known test mnemonic
const DefaultMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// Duration decodes TOML strings like "1.5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	d.Duration = parsed

	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Profile describes an emulated device.
type Profile struct {
	Name       string   `toml:"name" json:"name"`
	Model      string   `toml:"model" json:"model"`
	Path       string   `toml:"path" json:"path"`
	Mnemonic   string   `toml:"mnemonic" json:"-"`
	Passphrase string   `toml:"passphrase" json:"-"`
	Confirm    string   `toml:"confirm" json:"confirm"`
	Delay      Duration `toml:"delay" json:"delay"`
	Locked     bool     `toml:"locked" json:"locked"`

	// Apps lists the currency apps installed. Empty means all.
	Apps []string `toml:"apps" json:"apps,omitempty"`
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() Profile {
	return Profile{
		Name:     "emulator",
		Model:    "nanoX",
		Path:     "emulator",
		Mnemonic: DefaultMnemonic,
		Confirm:  ConfirmApprove,
	}
}

// Validate fills defaults and checks the profile.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if p.Mnemonic == "" {
		return errors.Errorf("profile %s: mnemonic is required", p.Name)
	}
	if p.Path == "" {
		p.Path = p.Name
	}
	if p.Model == "" {
		p.Model = "nanoX"
	}

	switch p.Confirm {
	case "", ConfirmApprove, ConfirmReject, ConfirmPrompt:
	default:
		return errors.Errorf("profile %s: unknown confirm mode %q", p.Name, p.Confirm)
	}

	return nil
}

// HasApp reports whether the app of currencyID is installed.
func (p Profile) HasApp(currencyID string) bool {
	return len(p.Apps) == 0 || slices.Contains(p.Apps, currencyID)
}

type profileFile struct {
	Devices []Profile `toml:"device"`
}

// LoadProfiles reads device profiles from a TOML file:
//
//	[[device]]
//	name = "nano-1"
//	mnemonic = "..."
//	confirm = "prompt"
//	delay = "500ms"
func LoadProfiles(path string) ([]Profile, error) {
	var file profileFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to read device profiles from %s", path)
	}

	return validateProfiles(file.Devices)
}

// ParseProfiles parses device profiles from TOML text.
func ParseProfiles(data string) ([]Profile, error) {
	var file profileFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse device profiles")
	}

	return validateProfiles(file.Devices)
}

func validateProfiles(profiles []Profile) ([]Profile, error) {
	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		if err := profiles[i].Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[profiles[i].Name]; ok {
			return nil, errors.Errorf("duplicate device profile %s", profiles[i].Name)
		}
		seen[profiles[i].Name] = struct{}{}
	}

	return profiles, nil
}

// FindProfile returns the profile called name.
func FindProfile(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}

	return Profile{}, false
}
