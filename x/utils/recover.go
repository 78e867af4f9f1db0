package utils

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Recovery is a decorator to recover from panics in requests,
// so we can log them as errors
type Recovery struct{}

var _ treasury.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Checker) (_ *treasury.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, req)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx treasury.Context, store treasury.KVStore, req *treasury.Request, next treasury.Deliverer) (_ *treasury.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, req)
}
