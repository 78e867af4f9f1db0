package treasury

// TokenLedger is the host token program. It owns mint and token account
// state and applies all balance changes. Every method writes to the given
// store, so the caller decides whether the changes are kept.
type TokenLedger interface {
	// InitializeMint creates a new mint. It fails with ErrDuplicate if
	// the mint was already initialized.
	InitializeMint(db KVStore, mint Address, decimals uint32, mintAuthority, freezeAuthority Address) error

	// MintTo issues amount new tokens of the mint into the dest token
	// account. authority must be the mint authority.
	MintTo(db KVStore, mint, dest Address, amount uint64, authority Address) error

	// Transfer moves amount tokens between two token accounts of the same
	// mint. authority must be the owner of the source account.
	Transfer(db KVStore, source, dest Address, amount uint64, authority Address) error
}
