package multisig

import (
	"encoding/binary"
	"fmt"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// RegisterRoutes registers the approval handler.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator) {
	r.Handle(PathApprove, NewApproveHandler(auth))
}

// ApproveHandler approves a request signed by enough of its accounts.
// All request accounts are candidates.
type ApproveHandler struct {
	auth x.Authenticator
}

var _ treasury.Handler = ApproveHandler{}

// NewApproveHandler returns a handler counting signatures with auth.
func NewApproveHandler(auth x.Authenticator) ApproveHandler {
	return ApproveHandler{auth: auth}
}

func (h ApproveHandler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	msg, err := h.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &treasury.CheckResult{Log: fmt.Sprintf("approved with threshold %d", msg.Threshold)}, nil
}

func (h ApproveHandler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	msg, err := h.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	n := x.CountSigners(ctx, h.auth, treasury.Addresses(req.Accounts))
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, uint32(n))
	return &treasury.DeliverResult{
		Data: data,
		Log:  fmt.Sprintf("approved by %d of %d required", n, msg.Threshold),
	}, nil
}

func (h ApproveHandler) validate(ctx treasury.Context, req *treasury.Request) (*ApproveMsg, error) {
	var msg ApproveMsg
	if err := treasury.LoadMsg(req, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	for i, a := range req.Accounts {
		if a == nil || a.Address() == nil {
			return nil, errors.Wrapf(errors.ErrEmpty, "account %d", i)
		}
	}
	if err := Approve(ctx, h.auth, treasury.Addresses(req.Accounts), msg.Threshold); err != nil {
		return nil, err
	}
	return &msg, nil
}
