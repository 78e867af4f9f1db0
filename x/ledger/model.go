package ledger

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/orm"
)

// NativeBalance is the native currency balance of an address. It is used
// to pay for the account storage.
type NativeBalance struct {
	Lamports uint64 `protobuf:"varint,1,opt,name=lamports,proto3" json:"lamports,omitempty"`
}

func (m *NativeBalance) Reset()         { *m = NativeBalance{} }
func (m *NativeBalance) String() string { return proto.CompactTextString(m) }
func (*NativeBalance) ProtoMessage()    {}

func (m *NativeBalance) Validate() error {
	return nil
}

func newMintBucket() orm.ModelBucket {
	return orm.NewModelBucket("mints")
}

func newTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokens")
}

func newNativeBucket() orm.ModelBucket {
	return orm.NewModelBucket("native")
}

var (
	_ orm.Model = (*treasury.MintData)(nil)
	_ orm.Model = (*treasury.TokenAccountData)(nil)
	_ orm.Model = (*NativeBalance)(nil)
)
