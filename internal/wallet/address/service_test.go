package address_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testSeed(t *testing.T) []byte {
	t.Helper()

	m := seed.NewManager()
	require.NoError(t, m.Initialize(testMnemonic, ""))
	t.Cleanup(m.Clear)

	return m.GetSeed()
}

func TestDeriveAddress(t *testing.T) {
	t.Parallel()

	s := testSeed(t)
	svc := address.NewService()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)
	ethereum, err := currency.Get("ethereum")
	require.NoError(t, err)

	tests := []struct {
		name string
		cur  *currency.Currency
		mode currency.DerivationMode
		path string
		want string
	}{
		{"native segwit", bitcoin, currency.ModeNativeSegwit, "84'/0'/0'/0/0", "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"},
		{"legacy", bitcoin, currency.ModeLegacy, "44'/0'/0'/0/0", "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"},
		{"legacy with prefix", bitcoin, currency.ModeLegacy, "m/44'/0'/0'/0/0", "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"},
		{"ethereum", ethereum, currency.ModeLegacy, "m/44'/60'/0'/0/0", "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.DeriveAddress(context.Background(), s, tt.cur, tt.mode, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, tt.cur.ValidateAddress(got, tt.mode))
		})
	}
}

func TestDeriveAddressSegwit(t *testing.T) {
	t.Parallel()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)

	got, err := address.NewService().DeriveAddress(context.Background(), testSeed(t), bitcoin, currency.ModeSegwit, "49'/0'/0'/0/0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "3"), got)
	assert.NoError(t, bitcoin.ValidateAddress(got, currency.ModeSegwit))
}

func TestDeriveAddressDistinctIndices(t *testing.T) {
	t.Parallel()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)

	s := testSeed(t)
	svc := address.NewService()

	first, err := svc.DeriveAddress(context.Background(), s, bitcoin, currency.ModeNativeSegwit, "84'/0'/0'/0/0")
	require.NoError(t, err)
	second, err := svc.DeriveAddress(context.Background(), s, bitcoin, currency.ModeNativeSegwit, "84'/0'/0'/0/1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeriveAddressErrors(t *testing.T) {
	t.Parallel()

	ethereum, err := currency.Get("ethereum")
	require.NoError(t, err)

	svc := address.NewService()

	_, err = svc.DeriveAddress(context.Background(), testSeed(t), ethereum, currency.ModeNativeSegwit, "44'/60'/0'/0/0")
	require.ErrorIs(t, err, currency.ErrUnsupportedMode)

	_, err = svc.DeriveAddress(context.Background(), nil, ethereum, currency.ModeLegacy, "44'/60'/0'/0/0")
	require.Error(t, err)

	_, err = svc.DerivePublicKey(testSeed(t), "not a path")
	require.ErrorIs(t, err, address.ErrInvalidPath)
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	const hardened = 0x80000000

	got, err := address.ParsePath("84'/0'/0'/0/5")
	require.NoError(t, err)
	assert.Equal(t, []uint32{84 + hardened, hardened, hardened, 0, 5}, got)

	withPrefix, err := address.ParsePath("m/84'/0'/0'/0/5")
	require.NoError(t, err)
	assert.Equal(t, got, withPrefix)

	for _, invalid := range []string{"", "m", "84'/x/0", "m/-1"} {
		_, err := address.ParsePath(invalid)
		assert.ErrorIs(t, err, address.ErrInvalidPath, invalid)
	}
}
