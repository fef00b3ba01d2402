package address

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// encodeEthereum returns the EIP-55 checksummed address of a compressed
// public key.
func encodeEthereum(compressed []byte) (string, error) {
	pub, err := crypto.DecompressPubkey(compressed)
	if err != nil {
		return "", errors.Wrap(err, "failed to decompress public key")
	}

	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
