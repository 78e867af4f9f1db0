package treasury

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury/errors"
)

// MintData is the layout of the mint account data. It describes a fungible
// token supply and its decimal precision.
type MintData struct {
	Supply          uint64  `protobuf:"varint,1,opt,name=supply,proto3" json:"supply,omitempty"`
	Decimals        uint32  `protobuf:"varint,2,opt,name=decimals,proto3" json:"decimals,omitempty"`
	MintAuthority   Address `protobuf:"bytes,3,opt,name=mint_authority,json=mintAuthority,proto3" json:"mint_authority,omitempty"`
	FreezeAuthority Address `protobuf:"bytes,4,opt,name=freeze_authority,json=freezeAuthority,proto3" json:"freeze_authority,omitempty"`
	Initialized     bool    `protobuf:"varint,5,opt,name=initialized,proto3" json:"initialized,omitempty"`
}

func (m *MintData) Reset()         { *m = MintData{} }
func (m *MintData) String() string { return proto.CompactTextString(m) }
func (*MintData) ProtoMessage()    {}

// Validate ensures the mint data is consistent.
func (m *MintData) Validate() error {
	var errs error
	if !m.Initialized {
		errs = errors.AppendField(errs, "Initialized", errors.ErrState)
	}
	if err := m.MintAuthority.Validate(); err != nil {
		errs = errors.AppendField(errs, "MintAuthority", err)
	}
	if len(m.FreezeAuthority) != 0 {
		errs = errors.AppendField(errs, "FreezeAuthority", m.FreezeAuthority.Validate())
	}
	return errs
}

// TokenAccountData is the layout of a token account data. A token account
// holds an amount of a single mint on behalf of its owner.
type TokenAccountData struct {
	Mint   Address `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	Owner  Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Amount uint64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TokenAccountData) Reset()         { *m = TokenAccountData{} }
func (m *TokenAccountData) String() string { return proto.CompactTextString(m) }
func (*TokenAccountData) ProtoMessage()    {}

// Validate ensures the token account references a mint and an owner.
func (m *TokenAccountData) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

// LoadMintData decodes the data of a mint account.
func LoadMintData(acc Account) (*MintData, error) {
	var m MintData
	if err := decodeAccount(acc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadTokenAccount decodes the data of a token account.
func LoadTokenAccount(acc Account) (*TokenAccountData, error) {
	var t TokenAccountData
	if err := decodeAccount(acc, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

type validMessage interface {
	proto.Message
	Validate() error
}

func decodeAccount(acc Account, dst validMessage) error {
	if acc.DataLen() == 0 {
		return errors.Wrapf(errors.ErrEmpty, "account %s has no data", acc.Address())
	}
	if err := proto.Unmarshal(acc.Data(), dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "account %s: %s", acc.Address(), err)
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrapf(err, "account %s", acc.Address())
	}
	return nil
}
