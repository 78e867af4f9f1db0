package multisig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// PathApprove is the route of the approval request.
const PathApprove = "multisig/approve"

// maxThreshold limits the number of signatures a request may require.
const maxThreshold = 255

var _ treasury.Msg = (*ApproveMsg)(nil)

// ApproveMsg requests an approval by at least Threshold of the request
// accounts.
type ApproveMsg struct {
	Threshold uint32 `protobuf:"varint,1,opt,name=threshold,proto3" json:"threshold,omitempty"`
}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()    {}

func (ApproveMsg) Path() string {
	return PathApprove
}

func (m *ApproveMsg) Validate() error {
	switch {
	case m.Threshold == 0:
		return errors.Field("Threshold", errors.ErrInput, "threshold must be greater than 0")
	case m.Threshold > maxThreshold:
		return errors.Field("Threshold", errors.ErrInput, "threshold must not be greater than %d", maxThreshold)
	}
	return nil
}
