package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-receive/internal/receive"
	"github/chapool/go-receive/internal/wallet/currency"
)

// VerifyAccount re-derives the fresh address of account from the local
// keyring and compares it with the stored one. It is used before asking a
// device to confirm an address that was supplied from outside.
func (s *service) VerifyAccount(ctx context.Context, account receive.Account) (bool, error) {
	log := log.With().Str("component", "account_verification").Str("account", account.Name).Logger()

	if err := account.Validate(); err != nil {
		return false, err
	}

	cur, err := currency.Get(account.CurrencyID)
	if err != nil {
		return false, err
	}

	mode := currency.DerivationMode(account.DerivationMode)
	if err := cur.ValidateAddress(account.FreshAddress, mode); err != nil {
		log.Warn().Err(err).Msg("Stored address is malformed")
		return false, nil
	}

	seed := s.seedManager.GetSeed()
	if seed == nil {
		return false, errors.New("seed not initialized")
	}

	derived, err := s.addressService.DeriveAddress(ctx, seed, cur, mode, account.FreshAddressPath)
	if err != nil {
		return false, errors.Wrap(err, "failed to derive address")
	}

	if derived != account.FreshAddress {
		log.Warn().
			Str("derived", derived).
			Str("stored", account.FreshAddress).
			Msg("Account verification failed: addresses do not match")
		return false, nil
	}

	return true, nil
}
