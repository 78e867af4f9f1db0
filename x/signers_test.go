package x

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
)

// signerRecorder captures the signers visible to a handler.
type signerRecorder struct {
	treasurytest.Handler
	seen []treasury.Address
}

func (s *signerRecorder) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	s.seen = AccountAuth{}.GetSigners(ctx)
	return s.Handler.Deliver(ctx, db, req)
}

func TestAccountAuth(t *testing.T) {
	a := treasurytest.SequenceAddr(1)
	b := treasurytest.SequenceAddr(2)
	c := treasurytest.SequenceAddr(3)

	req := &treasury.Request{
		Path: "test/path",
		Accounts: treasurytest.Accounts(
			treasurytest.Signer(a),
			treasurytest.Account(b),
			treasurytest.Signer(c),
			treasurytest.Signer(a),
		),
	}

	auth := AccountAuth{}
	ctx := auth.Authenticate(context.Background(), req)
	assert.Equal(t, []treasury.Address{a, c}, auth.GetSigners(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, a))
	assert.Equal(t, false, auth.HasAddress(ctx, b))

	// nothing is authenticated without the decorator
	assert.Equal(t, false, auth.HasAddress(context.Background(), a))

	h := &signerRecorder{}
	stack := treasurytest.Decorate(h, auth)
	_, err := stack.Deliver(context.Background(), store.MemStore(), req)
	assert.Nil(t, err)
	assert.Equal(t, []treasury.Address{a, c}, h.seen)
}
