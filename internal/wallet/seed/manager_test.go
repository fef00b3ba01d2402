package seed_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/wallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestManager(t *testing.T) {
	t.Parallel()

	m := seed.NewManager()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())

	require.NoError(t, m.Initialize(testMnemonic, "TREZOR"))
	assert.True(t, m.IsInitialized())

	// BIP39 reference vector.
	assert.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(m.GetSeed()),
	)

	got := m.GetSeed()
	got[0] ^= 0xff
	assert.NotEqual(t, got, m.GetSeed(), "GetSeed returns a copy")

	m.Clear()
	assert.False(t, m.IsInitialized())
	assert.Nil(t, m.GetSeed())
}

func TestManagerNormalizesWhitespace(t *testing.T) {
	t.Parallel()

	a := seed.NewManager()
	b := seed.NewManager()

	require.NoError(t, a.Initialize(testMnemonic, ""))
	require.NoError(t, b.Initialize("  abandon abandon abandon abandon abandon abandon\nabandon abandon abandon abandon abandon about ", ""))
	assert.Equal(t, a.GetSeed(), b.GetSeed())
}

func TestManagerRejectsWordCount(t *testing.T) {
	t.Parallel()

	m := seed.NewManager()
	require.ErrorIs(t, m.Initialize("abandon about", ""), seed.ErrInvalidMnemonic)
	assert.False(t, m.IsInitialized())
}
