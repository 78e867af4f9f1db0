package mint

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
)

const (
	// Decimals is the precision of the treasury token.
	Decimals uint32 = 6

	// WholeSupply is the number of whole tokens ever issued.
	WholeSupply uint64 = 1000000000
)

// TotalSupply returns the amount of base units issued for a token with
// given precision.
func TotalSupply(decimals uint32) (uint64, error) {
	unit, err := coin.Pow10(decimals)
	if err != nil {
		return 0, errors.Wrap(err, "token unit")
	}
	supply, err := coin.Mul(WholeSupply, unit)
	if err != nil {
		return 0, errors.Wrap(err, "total supply")
	}
	return supply, nil
}

// Bootstrapper creates the mint and issues its supply using the host
// token ledger.
type Bootstrapper struct {
	ledger treasury.TokenLedger
}

// NewBootstrapper returns a bootstrapper that requests all changes from
// the given ledger.
func NewBootstrapper(ledger treasury.TokenLedger) *Bootstrapper {
	return &Bootstrapper{ledger: ledger}
}

// InitializeMint creates the mint with the treasury wallet as the mint
// authority and no freeze authority. The total supply is then issued to
// the treasury wallet.
//
// Both steps succeed or none is applied. A mint that already exists is
// rejected by the ledger.
func (b *Bootstrapper) InitializeMint(ctx treasury.Context, db treasury.KVStore, mint, treasuryWallet treasury.Account) error {
	supply, err := TotalSupply(Decimals)
	if err != nil {
		return err
	}

	if cstore, ok := db.(treasury.CacheableKVStore); ok {
		cache := cstore.CacheWrap()
		if err := b.initialize(cache, mint.Address(), treasuryWallet.Address(), supply); err != nil {
			cache.Discard()
			return err
		}
		if err := cache.Write(); err != nil {
			return errors.Wrap(err, "write mint")
		}
	} else if err := b.initialize(db, mint.Address(), treasuryWallet.Address(), supply); err != nil {
		return err
	}

	treasury.GetLogger(ctx).Info("Mint initialized",
		"mint", mint.Address(),
		"wallet", treasuryWallet.Address(),
		"supply", supply)
	return nil
}

func (b *Bootstrapper) initialize(db treasury.KVStore, mint, wallet treasury.Address, supply uint64) error {
	if err := b.ledger.InitializeMint(db, mint, Decimals, wallet, nil); err != nil {
		return errors.Wrap(err, "initialize mint")
	}
	if err := b.ledger.MintTo(db, mint, wallet, supply, wallet); err != nil {
		return errors.Wrap(err, "issue supply")
	}
	return nil
}
