package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/wallet/currency"
)

func TestGet(t *testing.T) {
	t.Parallel()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "BTC", bitcoin.Ticker)
	assert.Equal(t, []currency.DerivationMode{currency.ModeLegacy, currency.ModeSegwit, currency.ModeNativeSegwit}, bitcoin.Modes())

	_, err = currency.Get("dogecoin")
	require.ErrorIs(t, err, currency.ErrUnknownCurrency)

	ids := make([]string, 0)
	for _, cur := range currency.All() {
		ids = append(ids, cur.ID)
	}
	assert.Equal(t, []string{"bitcoin", "bitcoin_testnet", "ethereum"}, ids)
}

func TestFreshAddressPath(t *testing.T) {
	t.Parallel()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)
	ethereum, err := currency.Get("ethereum")
	require.NoError(t, err)

	path, err := bitcoin.FreshAddressPath(currency.ModeNativeSegwit, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, "84'/0'/0'/0/7", path)

	path, err = bitcoin.FreshAddressPath(currency.ModeSegwit, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "49'/0'/1'/0/0", path)

	path, err = ethereum.FreshAddressPath(currency.ModeLegacy, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "44'/60'/0'/0/0", path)

	_, err = ethereum.FreshAddressPath(currency.ModeSegwit, 0, 0)
	require.ErrorIs(t, err, currency.ErrUnsupportedMode)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, currency.ModeLegacy, currency.ParseMode("legacy"))
	assert.Equal(t, currency.ModeLegacy, currency.ParseMode(""))
	assert.Equal(t, currency.ModeNativeSegwit, currency.ParseMode("native_segwit"))
	assert.Equal(t, "legacy", currency.ModeLegacy.String())
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	bitcoin, err := currency.Get("bitcoin")
	require.NoError(t, err)
	testnet, err := currency.Get("bitcoin_testnet")
	require.NoError(t, err)
	ethereum, err := currency.Get("ethereum")
	require.NoError(t, err)

	require.NoError(t, bitcoin.ValidateAddress("bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", currency.ModeNativeSegwit))
	require.NoError(t, bitcoin.ValidateAddress("1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", currency.ModeLegacy))
	require.NoError(t, ethereum.ValidateAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94", currency.ModeLegacy))
	require.NoError(t, ethereum.ValidateAddress("0x9858effd232b4033e47d90003d41ec34ecaeda94", currency.ModeLegacy))

	require.ErrorIs(t, bitcoin.ValidateAddress("1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", currency.ModeNativeSegwit), currency.ErrInvalidAddress)
	require.ErrorIs(t, bitcoin.ValidateAddress("not-an-address", currency.ModeLegacy), currency.ErrInvalidAddress)
	require.ErrorIs(t, testnet.ValidateAddress("bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", currency.ModeNativeSegwit), currency.ErrInvalidAddress)
	require.ErrorIs(t, ethereum.ValidateAddress("0x1234", currency.ModeLegacy), currency.ErrInvalidAddress)
	require.ErrorIs(t, ethereum.ValidateAddress("0x9858EfFD232B4033E47d90003D41EC34EcaEda94", currency.ModeSegwit), currency.ErrUnsupportedMode)
}
