package receive

import "github.com/pkg/errors"

// Account is the read-only account context of a receive step. It is fixed
// for the lifetime of the step.
type Account struct {
	CurrencyID       string
	DerivationMode   string
	FreshAddress     string
	FreshAddressPath string

	// Name is the name of the main account; it is the one reported when
	// the device returns a different address.
	Name string

	// TokenName is set for token accounts and takes precedence over Name
	// when displaying the currency.
	TokenName string
}

// CurrencyName returns the name shown next to the address.
func (a Account) CurrencyName() string {
	if a.TokenName != "" {
		return a.TokenName
	}

	return a.Name
}

// Validate checks that the account carries everything the device request
// needs.
func (a Account) Validate() error {
	switch {
	case a.CurrencyID == "":
		return errors.New("account currency id is required")
	case a.FreshAddress == "":
		return errors.New("account fresh address is required")
	case a.FreshAddressPath == "":
		return errors.New("account fresh address path is required")
	case a.Name == "":
		return errors.New("account name is required")
	}

	return nil
}
