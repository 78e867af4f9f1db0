package authority

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Decorator rejects every request whose first account does not pass the
// gate. It must run after the decorator that authenticates the signers.
type Decorator struct {
	gate *Gate
}

var _ treasury.Decorator = Decorator{}

// NewDecorator returns a decorator guarding handlers with the gate.
func NewDecorator(gate *Gate) Decorator {
	return Decorator{gate: gate}
}

// Check authorizes the caller before calling down the stack.
func (d Decorator) Check(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Checker) (*treasury.CheckResult, error) {
	if err := d.authorize(ctx, req); err != nil {
		return nil, err
	}
	return next.Check(ctx, store, req)
}

// Deliver authorizes the caller before calling down the stack.
func (d Decorator) Deliver(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Deliverer) (*treasury.DeliverResult, error) {
	if err := d.authorize(ctx, req); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, req)
}

func (d Decorator) authorize(ctx treasury.Context, req *treasury.Request) error {
	if len(req.Accounts) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "no accounts")
	}
	return d.gate.Authorize(ctx, req.Accounts[0])
}
