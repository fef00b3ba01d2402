package wallet

import (
	"github/chapool/go-receive/internal/wallet/currency"
)

// AccountParams selects the fresh receive address of an account.
type AccountParams struct {
	CurrencyID string
	Mode       currency.DerivationMode
	Account    uint32
	Index      uint32

	// Name is the user visible account name, e.g. "BTC 1". Defaults to
	// "<ticker> <account+1>".
	Name string

	// TokenName is set for token accounts; the parent account is derived.
	TokenName string
}
