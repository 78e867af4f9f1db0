package ledger

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// Snapshot returns the current state of the address as a request account.
// Account data is the serialized mint or token account, whichever exists.
func (l *Ledger) Snapshot(db treasury.ReadOnlyKVStore, addr treasury.Address, signer bool) (*treasury.AccountInfo, error) {
	bal, err := l.NativeBalance(db, addr)
	if err != nil {
		return nil, err
	}
	acc := &treasury.AccountInfo{
		Key:      addr.Clone(),
		Signer:   signer,
		Lamports: bal,
	}

	var mint treasury.MintData
	switch err := l.mints.One(db, addr, &mint); {
	case err == nil:
		acc.RawData, err = orm.Marshal(&mint)
		return acc, err
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	var token treasury.TokenAccountData
	switch err := l.tokens.One(db, addr, &token); {
	case err == nil:
		acc.RawData, err = orm.Marshal(&token)
		return acc, err
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return acc, nil
}
