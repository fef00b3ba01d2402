package seed

// Manager holds the BIP39 seed of a keyring in memory.
type Manager interface {
	// Initialize derives the seed from mnemonic and passphrase
	Initialize(mnemonic string, passphrase string) error

	// GetSeed returns a copy of the seed, nil if not initialized
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear wipes the seed from memory
	Clear()
}
