package address

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet/currency"
)

var ErrInvalidPath = errors.New("invalid derivation path")

type service struct{}

// NewService creates a new address Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() Service {
	return &service{}
}

// DeriveAddress derives the address of cur in mode at path
func (s *service) DeriveAddress(ctx context.Context, seed []byte, cur *currency.Currency, mode currency.DerivationMode, path string) (string, error) {
	if !cur.Supports(mode) {
		return "", errors.Wrapf(currency.ErrUnsupportedMode, "%s for %s", mode, cur.ID)
	}

	pub, err := s.DerivePublicKey(seed, path)
	if err != nil {
		return "", err
	}

	var address string
	switch cur.Family {
	case currency.FamilyEthereum:
		address, err = encodeEthereum(pub)
	case currency.FamilyBitcoin:
		address, err = encodeBitcoin(pub, mode, cur.Params)
	default:
		err = errors.Wrapf(currency.ErrUnknownCurrency, "family %s", cur.Family)
	}
	if err != nil {
		return "", err
	}

	util.LogFromContext(ctx).Debug().
		Str("currency_id", cur.ID).
		Str("mode", mode.String()).
		Str("path", path).
		Str("address", address).
		Msg("Address derived")

	return address, nil
}

// DerivePublicKey returns the compressed public key at path
func (s *service) DerivePublicKey(seed []byte, path string) ([]byte, error) {
	if len(seed) == 0 {
		return nil, errors.New("seed not initialized")
	}

	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return key.PublicKey().Key, nil
}

// ParsePath parses an absolute BIP32 path. The "m/" prefix is optional;
// 84'/0'/0'/0/0 and m/84'/0'/0'/0/0 are the same path.
func ParsePath(path string) ([]uint32, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "m" {
		return nil, errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	if !strings.HasPrefix(trimmed, "m/") {
		trimmed = "m/" + trimmed
	}

	parsed, err := accounts.ParseDerivationPath(trimmed)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPath, "%q: %v", path, err)
	}

	return parsed, nil
}
