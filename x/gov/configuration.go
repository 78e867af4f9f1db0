package gov

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
)

// PkgName is the configuration key of this extension.
const PkgName = "gov"

// Configuration of the vote tally.
type Configuration struct {
	// RejectDuplicateVotes allows a voter to vote only once on a
	// proposal.
	RejectDuplicateVotes bool `protobuf:"varint,1,opt,name=reject_duplicate_votes,json=rejectDuplicateVotes,proto3" json:"reject_duplicate_votes,omitempty"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
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
