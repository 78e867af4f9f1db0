package ledger

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// maxDecimals is the highest precision that still allows one whole token
// to be expressed in base units.
const maxDecimals = 19

// Ledger keeps mints, token accounts and native balances in buckets.
type Ledger struct {
	mints  orm.ModelBucket
	tokens orm.ModelBucket
	native orm.ModelBucket
}

var _ treasury.TokenLedger = (*Ledger)(nil)

// NewLedger returns a ledger instance. All state is kept in the store
// passed to each method.
func NewLedger() *Ledger {
	return &Ledger{
		mints:  newMintBucket(),
		tokens: newTokenBucket(),
		native: newNativeBucket(),
	}
}

// InitializeMint creates a mint with zero supply.
func (l *Ledger) InitializeMint(db treasury.KVStore, mint treasury.Address, decimals uint32, mintAuthority, freezeAuthority treasury.Address) error {
	if err := mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if decimals > maxDecimals {
		return errors.Wrapf(errors.ErrInput, "decimals %d", decimals)
	}
	switch err := l.mints.Has(db, mint); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "mint %s already initialized", mint)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	data := treasury.MintData{
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
		Initialized:     true,
	}
	return l.mints.Put(db, mint, &data)
}

// MintTo issues new tokens into the dest token account, creating it when
// needed.
func (l *Ledger) MintTo(db treasury.KVStore, mint, dest treasury.Address, amount uint64, authority treasury.Address) error {
	data, err := l.Mint(db, mint)
	if err != nil {
		return err
	}
	if !data.MintAuthority.Equals(authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the mint authority", authority)
	}
	if data.Supply, err = coin.Add(data.Supply, amount); err != nil {
		return errors.Wrap(err, "supply")
	}
	acc, err := l.loadOrCreate(db, dest, mint)
	if err != nil {
		return err
	}
	if acc.Amount, err = coin.Add(acc.Amount, amount); err != nil {
		return errors.Wrap(err, "balance")
	}
	if err := l.mints.Put(db, mint, data); err != nil {
		return err
	}
	return l.tokens.Put(db, dest, acc)
}

// Transfer moves tokens between two token accounts of the same mint. The
// destination account is created when needed.
func (l *Ledger) Transfer(db treasury.KVStore, source, dest treasury.Address, amount uint64, authority treasury.Address) error {
	src, err := l.TokenAccount(db, source)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !src.Owner.Equals(authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s does not own %s", authority, source)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientBalance, "%s holds %d, want %d", source, src.Amount, amount)
	}
	if source.Equals(dest) {
		return nil
	}
	dst, err := l.loadOrCreate(db, dest, src.Mint)
	if err != nil {
		return err
	}
	if dst.Amount, err = coin.Add(dst.Amount, amount); err != nil {
		return errors.Wrap(err, "destination balance")
	}
	src.Amount -= amount
	if err := l.tokens.Put(db, source, src); err != nil {
		return err
	}
	return l.tokens.Put(db, dest, dst)
}

// OpenAccount creates an empty token account of an existing mint.
func (l *Ledger) OpenAccount(db treasury.KVStore, addr, mint, owner treasury.Address) error {
	if _, err := l.Mint(db, mint); err != nil {
		return err
	}
	switch err := l.tokens.Has(db, addr); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token account %s", addr)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	acc := treasury.TokenAccountData{Mint: mint, Owner: owner}
	return l.tokens.Put(db, addr, &acc)
}

// Fund adds native balance to an address.
func (l *Ledger) Fund(db treasury.KVStore, addr treasury.Address, lamports uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	bal, err := l.NativeBalance(db, addr)
	if err != nil {
		return err
	}
	if bal, err = coin.Add(bal, lamports); err != nil {
		return errors.Wrap(err, "native balance")
	}
	return l.native.Put(db, addr, &NativeBalance{Lamports: bal})
}

// NativeBalance returns the native balance of an address. Unknown
// addresses have a zero balance.
func (l *Ledger) NativeBalance(db treasury.ReadOnlyKVStore, addr treasury.Address) (uint64, error) {
	var bal NativeBalance
	switch err := l.native.One(db, addr, &bal); {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return bal.Lamports, nil
}

// Mint returns the data of an initialized mint.
func (l *Ledger) Mint(db treasury.ReadOnlyKVStore, mint treasury.Address) (*treasury.MintData, error) {
	var data treasury.MintData
	if err := l.mints.One(db, mint, &data); err != nil {
		return nil, errors.Wrapf(err, "mint %s", mint)
	}
	return &data, nil
}

// TokenAccount returns the data of a token account.
func (l *Ledger) TokenAccount(db treasury.ReadOnlyKVStore, addr treasury.Address) (*treasury.TokenAccountData, error) {
	var data treasury.TokenAccountData
	if err := l.tokens.One(db, addr, &data); err != nil {
		return nil, errors.Wrapf(err, "token account %s", addr)
	}
	return &data, nil
}

// Holders calls fn for every token account of the mint, in address order.
func (l *Ledger) Holders(db treasury.ReadOnlyKVStore, mint treasury.Address, fn func(addr treasury.Address, acc *treasury.TokenAccountData) error) error {
	newModel := func() orm.Model { return &treasury.TokenAccountData{} }
	return l.tokens.Each(db, newModel, func(key []byte, m orm.Model) error {
		acc := m.(*treasury.TokenAccountData)
		if !acc.Mint.Equals(mint) {
			return nil
		}
		return fn(treasury.Address(key), acc)
	})
}

func (l *Ledger) loadOrCreate(db treasury.ReadOnlyKVStore, addr, mint treasury.Address) (*treasury.TokenAccountData, error) {
	acc, err := l.TokenAccount(db, addr)
	switch {
	case errors.ErrNotFound.Is(err):
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrap(err, "token account address")
		}
		return &treasury.TokenAccountData{Mint: mint, Owner: addr}, nil
	case err != nil:
		return nil, err
	}
	if !acc.Mint.Equals(mint) {
		return nil, errors.Wrapf(errors.ErrInvalidAccount, "%s holds mint %s, not %s", addr, acc.Mint, mint)
	}
	return acc, nil
}
