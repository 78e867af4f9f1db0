package distribution

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// PathDispatch is the route of both the mint initialization and the
// distribution requests.
const PathDispatch = "treasury/dispatch"

const maxMemoLength = 128

var _ treasury.Msg = (*DistributeMsg)(nil)

// DistributeMsg is the payload the client sends with a distribution
// request. The dispatch handler does not require it: any non empty
// payload distributes. A required memo keeps the encoded message from
// being empty, which would turn the request into a mint initialization.
type DistributeMsg struct {
	Memo string `protobuf:"bytes,1,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *DistributeMsg) Reset()         { *m = DistributeMsg{} }
func (m *DistributeMsg) String() string { return proto.CompactTextString(m) }
func (*DistributeMsg) ProtoMessage()    {}

func (DistributeMsg) Path() string {
	return PathDispatch
}

func (m *DistributeMsg) Validate() error {
	switch n := len(m.Memo); {
	case n == 0:
		return errors.Field("Memo", errors.ErrEmpty, "memo is required")
	case n > maxMemoLength:
		return errors.Field("Memo", errors.ErrInput, "memo longer than %d characters", maxMemoLength)
	}
	return nil
}

// Memo returns the memo of a payload encoded as DistributeMsg, or an
// empty string for any other payload.
func Memo(req *treasury.Request) string {
	var msg DistributeMsg
	if err := proto.Unmarshal(req.Payload, &msg); err != nil {
		return ""
	}
	if len(msg.Memo) > maxMemoLength {
		return ""
	}
	return msg.Memo
}
