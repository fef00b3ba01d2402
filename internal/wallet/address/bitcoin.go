package address

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/wallet/currency"
)

func encodeBitcoin(compressed []byte, mode currency.DerivationMode, params *chaincfg.Params) (string, error) {
	if params == nil {
		return "", errors.New("missing chain params")
	}

	hash := btcutil.Hash160(compressed)

	var (
		addr btcutil.Address
		err  error
	)
	switch mode {
	case currency.ModeLegacy:
		addr, err = btcutil.NewAddressPubKeyHash(hash, params)
	case currency.ModeNativeSegwit:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(hash, params)
	case currency.ModeSegwit:
		// P2SH-P2WPKH: the redeem script is OP_0 <20 byte key hash>.
		redeemScript := make([]byte, 0, 22)
		redeemScript = append(redeemScript, 0x00, 0x14)
		redeemScript = append(redeemScript, hash...)
		addr, err = btcutil.NewAddressScriptHash(redeemScript, params)
	default:
		return "", errors.Wrapf(currency.ErrUnsupportedMode, "%s", mode)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to encode address")
	}

	return addr.EncodeAddress(), nil
}
