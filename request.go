package treasury

import (
	"github.com/iov-one/treasury/errors"
)

// Request is a single invocation of the treasury. The host verifies
// signatures and snapshots the accounts before the request is executed.
type Request struct {
	// Path selects the handler, for example "treasury/dispatch".
	Path string
	// Accounts are the ordered accounts referenced by the request.
	Accounts []Account
	// Payload is the handler specific message, possibly empty.
	Payload []byte
}

// GetPath returns the routing path of the request.
func (r *Request) GetPath() string {
	return r.Path
}

// IsInitialize returns true when the request carries no payload. Such
// request is executed in the mint initialization mode.
func (r *Request) IsInitialize() bool {
	return len(r.Payload) == 0
}

// DispatchAccounts is the account layout of a dispatch request:
//
//	[authority, mint, source, treasuryWallet, destination..., tokenProgram]
type DispatchAccounts struct {
	Authority      Account
	Mint           Account
	Source         Account
	TreasuryWallet Account
	Destinations   []Account
	TokenProgram   Account
}

// minDispatchAccounts is the number of accounts with a fixed position.
const minDispatchAccounts = 5

// DispatchAccounts splits the request accounts according to the dispatch
// layout. Any number of destinations, including none, is accepted here.
func (r *Request) DispatchAccounts() (*DispatchAccounts, error) {
	n := len(r.Accounts)
	if n < minDispatchAccounts {
		return nil, errors.Wrapf(errors.ErrInput, "not enough account keys: %d", n)
	}
	for i, a := range r.Accounts {
		if a == nil || a.Address() == nil {
			return nil, errors.Wrapf(errors.ErrEmpty, "account %d", i)
		}
	}
	return &DispatchAccounts{
		Authority:      r.Accounts[0],
		Mint:           r.Accounts[1],
		Source:         r.Accounts[2],
		TreasuryWallet: r.Accounts[3],
		Destinations:   r.Accounts[4 : n-1],
		TokenProgram:   r.Accounts[n-1],
	}, nil
}
