package x

import (
	"context"

	"github.com/iov-one/treasury"
)

type contextKey int // local to the x package

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this package
// can add a signer
func withSigners(ctx treasury.Context, signers []treasury.Address) treasury.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// AccountAuth authenticates the accounts of a request that are flagged as
// verified signers by the host. Use it as a Decorator in front of handlers
// to populate the context, and as an Authenticator inside the handlers.
type AccountAuth struct{}

var (
	_ Authenticator      = AccountAuth{}
	_ treasury.Decorator = AccountAuth{}
)

// GetSigners returns who signed the current Context.
// May be empty
func (AccountAuth) GetSigners(ctx treasury.Context) []treasury.Address {
	val, _ := ctx.Value(contextKeySigners).([]treasury.Address)
	return val
}

// HasAddress returns true if the address signed the current Context.
func (a AccountAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	return containsAddress(a.GetSigners(ctx), addr)
}

// Check stores the request signers in the context before calling next.
func (a AccountAuth) Check(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Checker) (*treasury.CheckResult, error) {
	return next.Check(a.Authenticate(ctx, req), store, req)
}

// Deliver stores the request signers in the context before calling next.
func (a AccountAuth) Deliver(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Deliverer) (*treasury.DeliverResult, error) {
	return next.Deliver(a.Authenticate(ctx, req), store, req)
}

// Authenticate returns a context carrying the addresses of all request
// accounts flagged as signers.
func (AccountAuth) Authenticate(ctx treasury.Context, req *treasury.Request) treasury.Context {
	var signers []treasury.Address
	for _, acc := range req.Accounts {
		if acc == nil || !acc.IsSigner() {
			continue
		}
		if !containsAddress(signers, acc.Address()) {
			signers = append(signers, acc.Address())
		}
	}
	return withSigners(ctx, signers)
}
