package wallet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/receive"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet/address"
	"github/chapool/go-receive/internal/wallet/currency"
	"github/chapool/go-receive/internal/wallet/seed"
)

// Service builds receive accounts from the local keyring
type Service interface {
	// NewAccount derives the fresh address of the account selected by params
	NewAccount(ctx context.Context, params AccountParams) (receive.Account, error)

	// VerifyAccount re-derives the fresh address of account and compares it
	// with the stored one
	VerifyAccount(ctx context.Context, account receive.Account) (bool, error)
}

type service struct {
	seedManager    seed.Manager
	addressService address.Service
}

// NewService creates a new wallet Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(seedManager seed.Manager, addressService address.Service) Service {
	return &service{
		seedManager:    seedManager,
		addressService: addressService,
	}
}

// NewAccount derives the fresh address of the account selected by params
func (s *service) NewAccount(ctx context.Context, params AccountParams) (receive.Account, error) {
	log := util.LogFromContext(ctx).With().
		Str("currency_id", params.CurrencyID).
		Str("mode", params.Mode.String()).
		Uint32("account", params.Account).
		Uint32("index", params.Index).
		Logger()

	cur, err := currency.Get(params.CurrencyID)
	if err != nil {
		return receive.Account{}, err
	}

	path, err := cur.FreshAddressPath(params.Mode, params.Account, params.Index)
	if err != nil {
		return receive.Account{}, err
	}

	seed := s.seedManager.GetSeed()
	if seed == nil {
		return receive.Account{}, errors.New("seed not initialized")
	}

	freshAddress, err := s.addressService.DeriveAddress(ctx, seed, cur, params.Mode, path)
	if err != nil {
		log.Error().Err(err).Msg("Failed to derive fresh address")
		return receive.Account{}, errors.Wrap(err, "failed to derive fresh address")
	}

	name := params.Name
	if name == "" {
		name = fmt.Sprintf("%s %d", cur.Ticker, params.Account+1)
	}

	account := receive.Account{
		CurrencyID:       cur.ID,
		DerivationMode:   string(params.Mode),
		FreshAddress:     freshAddress,
		FreshAddressPath: path,
		Name:             name,
		TokenName:        params.TokenName,
	}

	log.Debug().Str("address", freshAddress).Str("path", path).Msg("Account created")

	return account, nil
}
