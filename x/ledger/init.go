package ledger

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Initializer fulfils the Initializer interface to load native balances
// from the genesis file.
type Initializer struct{}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis reads the "ledger" list of funded addresses.
//
//	"ledger": [{"address": "...", "balance": 10000000}]
func (*Initializer) FromGenesis(opts treasury.Options, db treasury.KVStore) error {
	var funded []struct {
		Address treasury.Address `json:"address"`
		Balance uint64           `json:"balance"`
	}
	if err := opts.ReadOptions("ledger", &funded); err != nil {
		return errors.Wrap(err, "cannot load ledger")
	}
	l := NewLedger()
	for i, f := range funded {
		if err := l.Fund(db, f.Address, f.Balance); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
