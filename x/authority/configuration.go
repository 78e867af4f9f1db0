package authority

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
)

// PkgName is the configuration key of this extension.
const PkgName = "authority"

// Configuration holds the address of the only identity allowed to
// initialize the mint and to dispatch the treasury.
type Configuration struct {
	Authority treasury.Address `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	if err := c.Authority.Validate(); err != nil {
		return errors.Field("Authority", err, "invalid authority address")
	}
	return nil
}

// LoadConfiguration returns the configuration stored in the database.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, PkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
