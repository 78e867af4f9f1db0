package authority

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// Gate verifies that a caller is the configured authority.
type Gate struct {
	auth      x.Authenticator
	authority treasury.Address
}

// NewGate returns a gate accepting only the given authority, as long as
// auth confirms its signature.
func NewGate(auth x.Authenticator, authority treasury.Address) *Gate {
	return &Gate{
		auth:      auth,
		authority: authority.Clone(),
	}
}

// Authority returns the configured authority address.
func (g *Gate) Authority() treasury.Address {
	return g.authority
}

// Authorize returns ErrUnauthorized unless the caller is a verified signer
// and its address is the configured authority.
func (g *Gate) Authorize(ctx treasury.Context, caller treasury.Account) error {
	if caller == nil || caller.Address() == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing caller")
	}
	addr := caller.Address()
	if !addr.Equals(g.authority) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the authority", addr)
	}
	if !caller.IsSigner() || !g.auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "authority %s did not sign", addr)
	}
	return nil
}
