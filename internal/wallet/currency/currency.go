package currency

import (
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrUnsupportedMode = errors.New("unsupported derivation mode")
	ErrInvalidAddress  = errors.New("invalid address")
)

// Family groups currencies that share address derivation and encoding.
type Family string

const (
	FamilyBitcoin  Family = "bitcoin"
	FamilyEthereum Family = "ethereum"
)

// DerivationMode selects the address scheme of an account. The empty mode
// is the default scheme of the currency family.
type DerivationMode string

const (
	ModeLegacy       DerivationMode = ""
	ModeSegwit       DerivationMode = "segwit"
	ModeNativeSegwit DerivationMode = "native_segwit"
)

func (m DerivationMode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}

	return string(m)
}

// ParseMode accepts "legacy" as an alias of the empty mode.
func ParseMode(s string) DerivationMode {
	if s == "legacy" {
		return ModeLegacy
	}

	return DerivationMode(s)
}

// Currency describes a supported currency.
type Currency struct {
	ID       string
	Name     string
	Ticker   string
	Family   Family
	CoinType uint32

	// Purposes maps each supported mode to its BIP43 purpose.
	Purposes map[DerivationMode]uint32

	// Params is set for the bitcoin family.
	Params *chaincfg.Params
}

var registry = map[string]*Currency{
	"bitcoin": {
		ID:       "bitcoin",
		Name:     "Bitcoin",
		Ticker:   "BTC",
		Family:   FamilyBitcoin,
		CoinType: 0,
		Purposes: map[DerivationMode]uint32{
			ModeLegacy:       44,
			ModeSegwit:       49,
			ModeNativeSegwit: 84,
		},
		Params: &chaincfg.MainNetParams,
	},
	"bitcoin_testnet": {
		ID:       "bitcoin_testnet",
		Name:     "Bitcoin Testnet",
		Ticker:   "tBTC",
		Family:   FamilyBitcoin,
		CoinType: 1,
		Purposes: map[DerivationMode]uint32{
			ModeLegacy:       44,
			ModeSegwit:       49,
			ModeNativeSegwit: 84,
		},
		Params: &chaincfg.TestNet3Params,
	},
	"ethereum": {
		ID:       "ethereum",
		Name:     "Ethereum",
		Ticker:   "ETH",
		Family:   FamilyEthereum,
		CoinType: 60,
		Purposes: map[DerivationMode]uint32{
			ModeLegacy: 44,
		},
	},
}

// Get returns the currency registered under id.
func Get(id string) (*Currency, error) {
	cur, ok := registry[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurrency, "%q", id)
	}

	return cur, nil
}

// All returns every supported currency ordered by id.
func All() []*Currency {
	all := make([]*Currency, 0, len(registry))
	for _, cur := range registry {
		all = append(all, cur)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return all
}

// Supports reports whether mode is valid for c.
func (c *Currency) Supports(mode DerivationMode) bool {
	_, ok := c.Purposes[mode]
	return ok
}

// Modes returns the supported modes, default mode first.
func (c *Currency) Modes() []DerivationMode {
	modes := make([]DerivationMode, 0, len(c.Purposes))
	for mode := range c.Purposes {
		modes = append(modes, mode)
	}

	sort.Slice(modes, func(i, j int) bool { return c.Purposes[modes[i]] < c.Purposes[modes[j]] })

	return modes
}

// FreshAddressPath returns the derivation path of the external address at
// index of account, without the "m/" prefix, e.g. 84'/0'/0'/0/7.
func (c *Currency) FreshAddressPath(mode DerivationMode, account uint32, index uint32) (string, error) {
	purpose, ok := c.Purposes[mode]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedMode, "%s for %s", mode, c.ID)
	}

	return fmt.Sprintf("%d'/%d'/%d'/0/%d", purpose, c.CoinType, account, index), nil
}
