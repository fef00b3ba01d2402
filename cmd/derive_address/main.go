//go:build tools
// +build tools

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

func main() {
	var (
		currencyID = flag.String("currency", "bitcoin", "Currency ID")
		mode       = flag.String("mode", "", "Derivation mode (legacy, segwit, native_segwit)")
		account    = flag.Uint("account", 0, "Account number")
		index      = flag.Uint("index", 0, "Address index")
		path       = flag.String("path", "", "Derivation path, overrides -account and -index")
	)
	flag.Parse()

	mnemonic := mustMnemonic()
	ctx := context.Background()

	cur, err := currency.Get(*currencyID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	derivationMode := currency.ParseMode(*mode)

	if *path == "" {
		*path, err = cur.FreshAddressPath(derivationMode, uint32(*account), uint32(*index)) //nolint:gosec
		if err != nil {
			fmt.Printf("Error building path: %v\n", err)
			os.Exit(1)
		}
	}

	seedManager := seed.NewManager()
	if err := seedManager.Initialize(mnemonic, os.Getenv("KEYRING_PASSPHRASE")); err != nil {
		fmt.Printf("Error loading keyring: %v\n", err)
		os.Exit(1)
	}
	defer seedManager.Clear()

	derived, err := address.NewService().DeriveAddress(ctx, seedManager.GetSeed(), cur, derivationMode, *path)
	if err != nil {
		fmt.Printf("Error deriving address: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s %s\n", cur.Ticker, *path, derived)
}

func mustMnemonic() string {
	if val := os.Getenv("KEYRING_MNEMONIC"); val != "" {
		return val
	}
	fmt.Fprintln(os.Stderr, "Error: KEYRING_MNEMONIC environment variable is required")
	os.Exit(1)
	return ""
}
