package gov

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
	"github.com/iov-one/treasury/x"
)

// VoteTally records votes in the store passed to every call.
type VoteTally struct {
	auth      x.Authenticator
	proposals *ProposalBucket
	votes     *VoteBucket
	conf      Configuration
}

// NewVoteTally returns a tally accepting votes of signers verified by
// auth.
func NewVoteTally(auth x.Authenticator, conf Configuration) *VoteTally {
	return &VoteTally{
		auth:      auth,
		proposals: NewProposalBucket(),
		votes:     NewVoteBucket(),
		conf:      conf,
	}
}

// Vote increments the tally of the proposal by one and returns the new
// count. It fails with ErrInvalidVote unless the voter is a verified
// signer, or if the voter already voted while duplicates are rejected.
func (t *VoteTally) Vote(ctx treasury.Context, db treasury.KVStore, voter treasury.Account, proposalID uint64) (uint64, error) {
	if err := t.canVote(ctx, db, voter, proposalID); err != nil {
		return 0, err
	}

	p, err := t.proposals.GetProposal(db, proposalID)
	if err != nil {
		return 0, err
	}
	if p.VoteCount, err = coin.Add(p.VoteCount, 1); err != nil {
		return 0, errors.Wrapf(err, "proposal %d", proposalID)
	}
	if err := t.proposals.Save(db, p); err != nil {
		return 0, errors.Wrap(err, "save proposal")
	}
	if t.conf.RejectDuplicateVotes {
		if err := t.votes.Record(db, proposalID, voter.Address()); err != nil {
			return 0, errors.Wrap(err, "record vote")
		}
	}
	return p.VoteCount, nil
}

func (t *VoteTally) canVote(ctx treasury.Context, db treasury.ReadOnlyKVStore, voter treasury.Account, proposalID uint64) error {
	if voter == nil || voter.Address() == nil {
		return errors.Wrap(errors.ErrInvalidVote, "missing voter")
	}
	if !voter.IsSigner() || !t.auth.HasAddress(ctx, voter.Address()) {
		return errors.Wrapf(errors.ErrInvalidVote, "%s did not sign", voter.Address())
	}
	if !t.conf.RejectDuplicateVotes {
		return nil
	}
	voted, err := t.votes.HasVoted(db, proposalID, voter.Address())
	if err != nil {
		return errors.Wrap(err, "vote record")
	}
	if voted {
		return errors.Wrapf(errors.ErrInvalidVote, "%s already voted on %d", voter.Address(), proposalID)
	}
	return nil
}

// Tally returns the vote count of a proposal.
func (t *VoteTally) Tally(db treasury.ReadOnlyKVStore, proposalID uint64) (uint64, error) {
	p, err := t.proposals.GetProposal(db, proposalID)
	if err != nil {
		return 0, err
	}
	return p.VoteCount, nil
}

// Proposals returns all proposals that received a vote, ordered by ID.
func (t *VoteTally) Proposals(db treasury.ReadOnlyKVStore) ([]*Proposal, error) {
	var res []*Proposal
	newModel := func() orm.Model { return &Proposal{} }
	err := t.proposals.Each(db, newModel, func(key []byte, m orm.Model) error {
		res = append(res, m.(*Proposal))
		return nil
	})
	return res, err
}
