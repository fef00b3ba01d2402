package emulator_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/device/emulator"
)

const profilesTOML = `
[[device]]
name = "nano-1"
mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
delay = "250ms"
apps = ["bitcoin"]

[[device]]
name = "nano-2"
model = "nanoSP"
path = "usb-2"
mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
passphrase = "secret"
confirm = "reject"
locked = true
`

func TestParseProfiles(t *testing.T) {
	t.Parallel()

	profiles, err := emulator.ParseProfiles(profilesTOML)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	first := profiles[0]
	assert.Equal(t, "nano-1", first.Name)
	assert.Equal(t, "nano-1", first.Path)
	assert.Equal(t, "nanoX", first.Model)
	assert.Equal(t, 250*time.Millisecond, first.Delay.Duration)
	assert.True(t, first.HasApp("bitcoin"))
	assert.False(t, first.HasApp("ethereum"))

	second, ok := emulator.FindProfile(profiles, "nano-2")
	require.True(t, ok)
	assert.Equal(t, "usb-2", second.Path)
	assert.Equal(t, "nanoSP", second.Model)
	assert.Equal(t, "secret", second.Passphrase)
	assert.Equal(t, emulator.ConfirmReject, second.Confirm)
	assert.True(t, second.Locked)
	assert.True(t, second.HasApp("ethereum"))

	_, ok = emulator.FindProfile(profiles, "nano-3")
	assert.False(t, ok)
}

func TestLoadProfiles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "devices.toml")
	require.NoError(t, os.WriteFile(path, []byte(profilesTOML), 0o600))

	profiles, err := emulator.LoadProfiles(path)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	_, err = emulator.LoadProfiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestParseProfilesInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing mnemonic": "[[device]]\nname = \"a\"\n",
		"missing name":     "[[device]]\nmnemonic = \"x\"\n",
		"bad confirm":      "[[device]]\nname = \"a\"\nmnemonic = \"x\"\nconfirm = \"maybe\"\n",
		"bad delay":        "[[device]]\nname = \"a\"\nmnemonic = \"x\"\ndelay = \"soon\"\n",
		"duplicate":        "[[device]]\nname = \"a\"\nmnemonic = \"x\"\n[[device]]\nname = \"a\"\nmnemonic = \"x\"\n",
		"syntax":           "[[device]\n",
	}

	for name, data := range tests {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := emulator.ParseProfiles(data)
			require.Error(t, err)
		})
	}
}

func TestConfirmerFor(t *testing.T) {
	t.Parallel()

	c, err := emulator.ConfirmerFor("")
	require.NoError(t, err)
	assert.Equal(t, emulator.AutoConfirmer{Approve: true}, c)

	c, err = emulator.ConfirmerFor(emulator.ConfirmReject)
	require.NoError(t, err)
	assert.Equal(t, emulator.AutoConfirmer{Approve: false}, c)

	c, err = emulator.ConfirmerFor(emulator.ConfirmPrompt)
	require.NoError(t, err)
	assert.IsType(t, &emulator.TerminalConfirmer{}, c)

	_, err = emulator.ConfirmerFor("maybe")
	require.Error(t, err)
}
