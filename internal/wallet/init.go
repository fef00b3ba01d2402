package wallet

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/wallet/seed"
	"golang.org/x/term"
)

// KeyringOptions describes where the keyring secret comes from.
type KeyringOptions struct {
	Mnemonic   string
	Passphrase string

	// PromptPassphrase reads the passphrase from the terminal instead.
	PromptPassphrase bool
}

// InitializeKeyring loads the seed of opts into seedManager.
func InitializeKeyring(ctx context.Context, seedManager seed.Manager, opts KeyringOptions) error {
	log := log.With().Str("component", "keyring_init").Logger()

	if opts.Mnemonic == "" {
		return errors.New("mnemonic is required")
	}

	passphrase := opts.Passphrase
	if opts.PromptPassphrase {
		var err error
		passphrase, err = promptPassword("Enter keyring passphrase (empty for none): ")
		if err != nil {
			return errors.Wrap(err, "failed to read passphrase")
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := seedManager.Initialize(opts.Mnemonic, passphrase); err != nil {
		return errors.Wrap(err, "failed to initialize seed manager")
	}

	log.Info().Bool("with_passphrase", passphrase != "").Msg("Keyring initialized")

	return nil
}

// promptPassword prompts for password input (hides input)
//
//nolint:forbidigo // Password input requires direct terminal I/O
func promptPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("stdin is not a terminal")
	}

	fmt.Print(prompt)

	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Println()

	return string(passwordBytes), nil
}
