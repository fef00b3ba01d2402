package address

import (
	"context"

	"github/chapool/go-receive/internal/wallet/currency"
)

// Service derives receive addresses from an HD seed.
type Service interface {
	// DeriveAddress derives the address of cur in mode at path. path may be
	// given with or without the "m/" prefix.
	DeriveAddress(ctx context.Context, seed []byte, cur *currency.Currency, mode currency.DerivationMode, path string) (string, error)

	// DerivePublicKey returns the compressed secp256k1 public key at path.
	DerivePublicKey(seed []byte, path string) ([]byte, error)
}
