package gov

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// Proposal is the vote tally of a proposal.
type Proposal struct {
	ID        uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	VoteCount uint64 `protobuf:"varint,2,opt,name=vote_count,json=voteCount,proto3" json:"vote_count,omitempty"`
}

func (m *Proposal) Reset()         { *m = Proposal{} }
func (m *Proposal) String() string { return proto.CompactTextString(m) }
func (*Proposal) ProtoMessage()    {}

func (m *Proposal) Validate() error {
	return nil
}

// VoteRecord marks that a voter voted on a proposal.
type VoteRecord struct {
	ProposalID uint64           `protobuf:"varint,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	Voter      treasury.Address `protobuf:"bytes,2,opt,name=voter,proto3" json:"voter,omitempty"`
}

func (m *VoteRecord) Reset()         { *m = VoteRecord{} }
func (m *VoteRecord) String() string { return proto.CompactTextString(m) }
func (*VoteRecord) ProtoMessage()    {}

func (m *VoteRecord) Validate() error {
	if err := m.Voter.Validate(); err != nil {
		return errors.Field("Voter", err, "invalid voter")
	}
	return nil
}

// ProposalBucket stores proposals keyed by their ID.
type ProposalBucket struct {
	orm.ModelBucket
}

// NewProposalBucket returns a bucket for managing proposals.
func NewProposalBucket() *ProposalBucket {
	return &ProposalBucket{
		ModelBucket: orm.NewModelBucket("proposals"),
	}
}

// GetProposal returns the proposal with given ID. A proposal that received
// no votes yet is returned with a zero count.
func (b *ProposalBucket) GetProposal(db treasury.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	p := Proposal{ID: id}
	switch err := b.One(db, orm.SequenceKey(id), &p); {
	case errors.ErrNotFound.Is(err):
		return &Proposal{ID: id}, nil
	case err != nil:
		return nil, errors.Wrapf(err, "proposal %d", id)
	}
	return &p, nil
}

// Save stores the proposal under its ID.
func (b *ProposalBucket) Save(db treasury.KVStore, p *Proposal) error {
	return b.Put(db, orm.SequenceKey(p.ID), p)
}

// VoteBucket stores vote records keyed by the proposal ID followed by the
// voter address.
type VoteBucket struct {
	orm.ModelBucket
}

// NewVoteBucket returns a bucket for managing vote records.
func NewVoteBucket() *VoteBucket {
	return &VoteBucket{
		ModelBucket: orm.NewModelBucket("votes"),
	}
}

func voteKey(id uint64, voter treasury.Address) []byte {
	return append(orm.SequenceKey(id), voter...)
}

// HasVoted returns true if a vote record exists.
func (b *VoteBucket) HasVoted(db treasury.ReadOnlyKVStore, id uint64, voter treasury.Address) (bool, error) {
	switch err := b.Has(db, voteKey(id, voter)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Record stores a vote record.
func (b *VoteBucket) Record(db treasury.KVStore, id uint64, voter treasury.Address) error {
	return b.Put(db, voteKey(id, voter), &VoteRecord{ProposalID: id, Voter: voter})
}
