package receive

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/device/emulator"
	"github/chapool/go-receive/internal/flow"
	"github/chapool/go-receive/internal/receive"
	"github/chapool/go-receive/internal/util/command"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/currency"
)

type Flags struct {
	CurrencyID       string
	Mode             string
	Account          uint32
	Index            uint32
	AccountName      string
	Profile          string
	SkipDevice       bool
	Retries          int
	PromptPassphrase bool
	Verbose          bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Shows a fresh receive address and verifies it on a device",
		Long: `Derives the fresh receive address of an account from the configured keyring,
plugs an emulated device and asks it to display and confirm the address.

The device profile decides how the confirmation is answered. Use a profile
with confirm = "prompt" to answer on this terminal.`,
		Example: `  receive --currency bitcoin --mode native_segwit --index 3
  receive --currency ethereum --profile nano-1 --retries 2
  receive --currency bitcoin --skip-device`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.CurrencyID, "currency", "bitcoin", "Currency of the account.")
	cmd.Flags().StringVar(&flags.Mode, "mode", "", "Derivation mode (legacy, segwit, native_segwit).")
	cmd.Flags().Uint32Var(&flags.Account, "account", 0, "Account number.")
	cmd.Flags().Uint32Var(&flags.Index, "index", 0, "Address index.")
	cmd.Flags().StringVar(&flags.AccountName, "account-name", "", "Account name shown on mismatch.")
	cmd.Flags().StringVar(&flags.Profile, "profile", emulator.DefaultProfile().Name, "Device profile to plug.")
	cmd.Flags().BoolVar(&flags.SkipDevice, "skip-device", false, "Continue without device verification.")
	cmd.Flags().IntVar(&flags.Retries, "retries", 0, "Verification retries after a failed attempt.")
	cmd.Flags().BoolVar(&flags.PromptPassphrase, "prompt-passphrase", false, "Read the keyring passphrase from the terminal.")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Dump the final session state.")

	return cmd
}

func run(ctx context.Context, flags Flags) error {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Receive.PlugDefaultDevice = false
	if flags.PromptPassphrase {
		cfg.Keyring.PromptPassphrase = true
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		return receiveFlow(ctx, s, flags)
	})
}

//nolint:forbidigo // Interactive output is written to stdout
func receiveFlow(ctx context.Context, s *api.Server, flags Flags) error {
	if !s.Seed.IsInitialized() {
		opts := wallet.KeyringOptions{
			Mnemonic:         s.Config.Keyring.Mnemonic,
			Passphrase:       s.Config.Keyring.Passphrase,
			PromptPassphrase: s.Config.Keyring.PromptPassphrase,
		}
		if opts.Mnemonic == "" {
			log.Warn().Msg("No keyring mnemonic configured, using the emulator mnemonic")
			opts.Mnemonic = emulator.DefaultMnemonic
		}
		if err := wallet.InitializeKeyring(ctx, s.Seed, opts); err != nil {
			return err
		}
	}

	account, err := s.Wallet.NewAccount(ctx, wallet.AccountParams{
		CurrencyID: flags.CurrencyID,
		Mode:       currency.ParseMode(flags.Mode),
		Account:    flags.Account,
		Index:      flags.Index,
		Name:       flags.AccountName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account  %s\nPath     %s\nAddress  %s\n", account.Name, account.FreshAddressPath, account.FreshAddress)

	session, err := s.Sessions.Create(account)
	if err != nil {
		return err
	}

	if flags.SkipDevice {
		if err := session.SkipDevice(ctx); err != nil {
			return err
		}
	} else {
		if _, err := s.Rack.Plug(flags.Profile); err != nil {
			return err
		}
		if err := session.ConnectDevice(ctx); err != nil {
			return err
		}
		fmt.Println("Verify the address on your device...")
	}

	view, err := awaitOutcome(ctx, session, flags.Retries)
	if flags.Verbose {
		spew.Dump(view)
	}
	if err != nil {
		return err
	}

	switch view.Status {
	case receive.StatusVerified:
		fmt.Println("Address verified on device.")
	case receive.StatusRejected:
		fmt.Println("Address NOT verified. Double-check it before sharing.")
	case receive.StatusUnset:
	}

	return nil
}

// awaitOutcome waits until the session reports a final status. Failed
// attempts are retried up to retries times. A retry after a failure goes
// back to the device step, so the device is connected again.
func awaitOutcome(ctx context.Context, session *flow.Session, retries int) (flow.View, error) {
	var last *receive.VerificationError
	reconnect := false

	for {
		changed := session.Changed()
		view := session.View()

		switch {
		case view.Status != receive.StatusUnset:
			return view, nil

		case view.Step == flow.StepDevice && reconnect:
			reconnect = false
			if err := session.ConnectDevice(ctx); err != nil {
				return view, err
			}
			continue

		case view.Step == flow.StepDevice:
			return view, errors.New("device disconnected, reconnect it and start again")

		case view.Error != nil && view.Error != last:
			if retries <= 0 {
				return view, view.Error
			}
			retries--
			last = view.Error

			log.Warn().Err(view.Error).Int("retries_left", retries).Msg("Verification failed, retrying")
			if err := session.Verify(ctx); err != nil {
				return view, err
			}
			reconnect = true
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return session.View(), ctx.Err()
		}
	}
}
