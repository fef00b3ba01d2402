package currency

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ValidateAddress checks that address is a well formed address of c for
// mode. Ethereum addresses are accepted with or without checksum casing.
func (c *Currency) ValidateAddress(address string, mode DerivationMode) error {
	if !c.Supports(mode) {
		return errors.Wrapf(ErrUnsupportedMode, "%s for %s", mode, c.ID)
	}

	switch c.Family {
	case FamilyEthereum:
		if !common.IsHexAddress(address) {
			return errors.Wrapf(ErrInvalidAddress, "%q is not a hex address", address)
		}
		return nil

	case FamilyBitcoin:
		decoded, err := btcutil.DecodeAddress(address, c.Params)
		if err != nil {
			return errors.Wrapf(ErrInvalidAddress, "%q: %v", address, err)
		}
		if !decoded.IsForNet(c.Params) {
			return errors.Wrapf(ErrInvalidAddress, "%q is not a %s address", address, c.Params.Name)
		}

		var ok bool
		switch mode {
		case ModeLegacy:
			_, ok = decoded.(*btcutil.AddressPubKeyHash)
		case ModeSegwit:
			_, ok = decoded.(*btcutil.AddressScriptHash)
		case ModeNativeSegwit:
			_, ok = decoded.(*btcutil.AddressWitnessPubKeyHash)
		}
		if !ok {
			return errors.Wrapf(ErrInvalidAddress, "%q is not a %s address", address, mode)
		}
		return nil
	}

	return errors.Wrapf(ErrUnknownCurrency, "family %s", c.Family)
}
