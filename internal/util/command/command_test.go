package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/test"
	"github/chapool/go-receive/internal/util/command"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/currency"
)

func TestWithServer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := testContext(t)

		var testError = errors.New("test error")

		s.Config.Logger.PrettyPrintConsole = false
		s.Config.Keyring.Mnemonic = emulator.DefaultMnemonic
		resultErr := command.WithServer(ctx, s.Config, func(ctx context.Context, s *api.Server) error {
			require.True(t, s.Seed.IsInitialized())

			account, err := s.Wallet.NewAccount(ctx, wallet.AccountParams{
				CurrencyID: "bitcoin",
				Mode:       currency.ModeNativeSegwit,
			})
			require.NoError(t, err)
			assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", account.FreshAddress)

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestNewSubcommandGroup(t *testing.T) {
	cmd := command.NewSubcommandGroup("probe")
	assert.Equal(t, "probe <subcommand>", cmd.Use)
	assert.False(t, cmd.HasSubCommands())
}
