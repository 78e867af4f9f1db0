package gov

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
)

// PathVote is the route of the vote request.
const PathVote = "gov/vote"

var _ treasury.Msg = (*VoteMsg)(nil)

// VoteMsg casts a vote of the first request account on a proposal.
type VoteMsg struct {
	ProposalID uint64 `protobuf:"varint,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
}

func (m *VoteMsg) Reset()         { *m = VoteMsg{} }
func (m *VoteMsg) String() string { return proto.CompactTextString(m) }
func (*VoteMsg) ProtoMessage()    {}

func (VoteMsg) Path() string {
	return PathVote
}

// Validate accepts any proposal ID.
func (m *VoteMsg) Validate() error {
	return nil
}
