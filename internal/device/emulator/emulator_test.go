package emulator_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
)

func getAddress(t *testing.T, emu *emulator.Emulator, req device.AddressRequest) (string, error) {
	t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	res, err := emu.Exchange(context.Background(), device.Command{Name: device.CommandGetAddress, Payload: payload})
	if err != nil {
		return "", err
	}

	var decoded device.AddressResponse
	require.NoError(t, json.Unmarshal(res.Payload, &decoded))

	return decoded.Address, nil
}

func nativeSegwitRequest(verify bool) device.AddressRequest {
	return device.AddressRequest{
		DerivationMode: "native_segwit",
		CurrencyID:     "bitcoin",
		DevicePath:     "emulator",
		Path:           "84'/0'/0'/0/0",
		Verify:         verify,
	}
}

func TestEmulatorGetAddress(t *testing.T) {
	t.Parallel()

	prompts := make(chan emulator.Prompt, 1)
	confirmer := emulator.ConfirmerFunc(func(_ context.Context, p emulator.Prompt) (bool, error) {
		prompts <- p
		return true, nil
	})

	emu, err := emulator.New(emulator.DefaultProfile(), address.NewService(), confirmer)
	require.NoError(t, err)

	got, err := getAddress(t, emu, nativeSegwitRequest(true))
	require.NoError(t, err)
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", got)

	prompt := <-prompts
	assert.Equal(t, "BTC", prompt.Ticker)
	assert.Equal(t, got, prompt.Address)
	assert.Equal(t, "84'/0'/0'/0/0", prompt.Path)
}

func TestEmulatorWithoutVerifySkipsConfirmation(t *testing.T) {
	t.Parallel()

	emu, err := emulator.New(emulator.DefaultProfile(), address.NewService(), emulator.AutoConfirmer{Approve: false})
	require.NoError(t, err)

	got, err := getAddress(t, emu, nativeSegwitRequest(false))
	require.NoError(t, err)
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", got)
}

func TestEmulatorPassphraseChangesAddress(t *testing.T) {
	t.Parallel()

	profile := emulator.DefaultProfile()
	profile.Passphrase = "hidden wallet"

	emu, err := emulator.New(profile, address.NewService(), nil)
	require.NoError(t, err)

	got, err := getAddress(t, emu, nativeSegwitRequest(true))
	require.NoError(t, err)
	assert.NotEqual(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", got)
}

func TestEmulatorErrors(t *testing.T) {
	t.Parallel()

	locked := emulator.DefaultProfile()
	locked.Locked = true

	bitcoinOnly := emulator.DefaultProfile()
	bitcoinOnly.Apps = []string{"bitcoin"}

	ethereum := nativeSegwitRequest(true)
	ethereum.CurrencyID = "ethereum"
	ethereum.DerivationMode = ""
	ethereum.Path = "44'/60'/0'/0/0"

	badMode := nativeSegwitRequest(true)
	badMode.DerivationMode = "taproot"

	tests := []struct {
		name      string
		profile   emulator.Profile
		confirmer emulator.Confirmer
		req       device.AddressRequest
		code      int
	}{
		{"refused", emulator.DefaultProfile(), emulator.AutoConfirmer{Approve: false}, nativeSegwitRequest(true), device.StatusUserRefused},
		{"locked", locked, nil, nativeSegwitRequest(true), device.StatusLocked},
		{"app missing", bitcoinOnly, nil, ethereum, device.StatusWrongAppOpened},
		{"bad mode", emulator.DefaultProfile(), nil, badMode, device.StatusIncorrectParameter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			emu, err := emulator.New(tt.profile, address.NewService(), tt.confirmer)
			require.NoError(t, err)

			_, err = getAddress(t, emu, tt.req)

			var cmdErr *device.CommandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Equal(t, tt.code, cmdErr.Code)
			assert.False(t, device.IsDisconnected(err))
		})
	}
}

func TestEmulatorUnknownCommand(t *testing.T) {
	t.Parallel()

	emu, err := emulator.New(emulator.DefaultProfile(), address.NewService(), nil)
	require.NoError(t, err)

	_, err = emu.Exchange(context.Background(), device.Command{Name: "signTransaction"})
	require.ErrorIs(t, err, device.ErrUnknownCommand)
}

func TestEmulatorUnplugDuringConfirmation(t *testing.T) {
	t.Parallel()

	waiting := make(chan struct{})
	confirmer := emulator.ConfirmerFunc(func(ctx context.Context, _ emulator.Prompt) (bool, error) {
		close(waiting)
		<-ctx.Done()
		return false, ctx.Err()
	})

	emu, err := emulator.New(emulator.DefaultProfile(), address.NewService(), confirmer)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(nativeSegwitRequest(true))
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() {
		_, err := emu.Exchange(ctx, device.Command{Name: device.CommandGetAddress, Payload: payload})
		errs <- err
	}()

	<-waiting
	emu.Unplug()

	select {
	case err := <-errs:
		assert.True(t, device.IsDisconnected(err), err)
	case <-time.After(2 * time.Second):
		t.Fatal("exchange did not return after unplug")
	}

	_, err = emu.Exchange(context.Background(), device.Command{Name: device.CommandGetAddress, Payload: payload})
	assert.True(t, device.IsDisconnected(err))
}

// unpluggingAddresses unplugs the emulator while it derives, which wipes
// the keyring under the running command.
type unpluggingAddresses struct {
	address.Service
	emu *emulator.Emulator
}

func (a *unpluggingAddresses) DeriveAddress(context.Context, []byte, *currency.Currency, currency.DerivationMode, string) (string, error) {
	a.emu.Unplug()
	return "", errors.New("seed not initialized")
}

func TestEmulatorUnplugDuringDerivation(t *testing.T) {
	t.Parallel()

	addresses := &unpluggingAddresses{Service: address.NewService()}
	emu, err := emulator.New(emulator.DefaultProfile(), addresses, nil)
	require.NoError(t, err)
	addresses.emu = emu

	_, err = getAddress(t, emu, nativeSegwitRequest(false))
	require.Error(t, err)
	assert.True(t, device.IsDisconnected(err), err)

	var cmdErr *device.CommandError
	assert.False(t, errors.As(err, &cmdErr))
}

func TestEmulatorDelayHonoursContext(t *testing.T) {
	t.Parallel()

	profile := emulator.DefaultProfile()
	profile.Delay = emulator.Duration{Duration: time.Hour}

	emu, err := emulator.New(profile, address.NewService(), nil)
	require.NoError(t, err)

	payload, err := json.Marshal(nativeSegwitRequest(true))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = emu.Exchange(ctx, device.Command{Name: device.CommandGetAddress, Payload: payload})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
