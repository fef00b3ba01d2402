package wallet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newService(t *testing.T) wallet.Service {
	t.Helper()

	seedManager := seed.NewManager()
	require.NoError(t, wallet.InitializeKeyring(context.Background(), seedManager, wallet.KeyringOptions{Mnemonic: testMnemonic}))
	t.Cleanup(seedManager.Clear)

	return wallet.NewService(seedManager, address.NewService())
}

func TestNewAccount(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	account, err := svc.NewAccount(context.Background(), wallet.AccountParams{
		CurrencyID: "bitcoin",
		Mode:       currency.ModeNativeSegwit,
	})
	require.NoError(t, err)

	assert.Equal(t, "bitcoin", account.CurrencyID)
	assert.Equal(t, "native_segwit", account.DerivationMode)
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", account.FreshAddress)
	assert.Equal(t, "84'/0'/0'/0/0", account.FreshAddressPath)
	assert.Equal(t, "BTC 1", account.Name)
	assert.Equal(t, "BTC 1", account.CurrencyName())
	require.NoError(t, account.Validate())

	ok, err := svc.VerifyAccount(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewTokenAccount(t *testing.T) {
	t.Parallel()

	account, err := newService(t).NewAccount(context.Background(), wallet.AccountParams{
		CurrencyID: "ethereum",
		Name:       "Ethereum 1",
		TokenName:  "USDT",
	})
	require.NoError(t, err)

	assert.Equal(t, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94", account.FreshAddress)
	assert.Equal(t, "Ethereum 1", account.Name)
	assert.Equal(t, "USDT", account.CurrencyName())
}

func TestNewAccountErrors(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	_, err := svc.NewAccount(context.Background(), wallet.AccountParams{CurrencyID: "dogecoin"})
	require.ErrorIs(t, err, currency.ErrUnknownCurrency)

	_, err = svc.NewAccount(context.Background(), wallet.AccountParams{CurrencyID: "ethereum", Mode: currency.ModeSegwit})
	require.ErrorIs(t, err, currency.ErrUnsupportedMode)

	uninitialized := wallet.NewService(seed.NewManager(), address.NewService())
	_, err = uninitialized.NewAccount(context.Background(), wallet.AccountParams{CurrencyID: "bitcoin"})
	require.Error(t, err)
}

func TestVerifyAccountMismatch(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	account, err := svc.NewAccount(context.Background(), wallet.AccountParams{CurrencyID: "bitcoin", Mode: currency.ModeLegacy})
	require.NoError(t, err)

	// A valid address that does not belong to the keyring.
	account.FreshAddress = "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"
	ok, err := svc.VerifyAccount(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, ok)

	account.FreshAddress = "garbage"
	ok, err = svc.VerifyAccount(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInitializeKeyringRequiresMnemonic(t *testing.T) {
	t.Parallel()

	err := wallet.InitializeKeyring(context.Background(), seed.NewManager(), wallet.KeyringOptions{})
	require.Error(t, err)
}
