package gov

import (
	"encoding/binary"
	"fmt"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// RegisterRoutes registers the vote handler.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator, conf Configuration) {
	r.Handle(PathVote, NewVoteHandler(NewVoteTally(auth, conf)))
}

// VoteHandler records the vote of the first request account.
type VoteHandler struct {
	tally *VoteTally
}

var _ treasury.Handler = VoteHandler{}

// NewVoteHandler returns a handler recording votes in tally.
func NewVoteHandler(tally *VoteTally) VoteHandler {
	return VoteHandler{tally: tally}
}

func (h VoteHandler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	msg, voter, err := h.validate(req)
	if err != nil {
		return nil, err
	}
	if err := h.tally.canVote(ctx, db, voter, msg.ProposalID); err != nil {
		return nil, err
	}
	return &treasury.CheckResult{Log: fmt.Sprintf("vote on %d", msg.ProposalID)}, nil
}

func (h VoteHandler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	msg, voter, err := h.validate(req)
	if err != nil {
		return nil, err
	}
	count, err := h.tally.Vote(ctx, db, voter, msg.ProposalID)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, count)
	return &treasury.DeliverResult{
		Data: data,
		Log:  fmt.Sprintf("proposal %d has %d votes", msg.ProposalID, count),
	}, nil
}

func (h VoteHandler) validate(req *treasury.Request) (*VoteMsg, treasury.Account, error) {
	var msg VoteMsg
	if err := treasury.LoadMsg(req, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if len(req.Accounts) == 0 {
		return nil, nil, errors.Wrap(errors.ErrInvalidVote, "no voter")
	}
	return &msg, req.Accounts[0], nil
}
