package distribution

import (
	"encoding/json"
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
)

// PkgName is the configuration key of this extension.
const PkgName = "distribution"

// BasisPoints is the weight of the whole supply.
const BasisPoints = 10000

// ReferenceTierTable returns the default tier weights.
func ReferenceTierTable() []uint32 {
	return []uint32{5000, 2000, 2000, 800, 200}
}

// Policy decides how destinations beyond the tier table length are
// handled.
type Policy int32

const (
	// PolicyCap reuses the tier table cyclically, but never distributes
	// more than the total supply. Once the supply is exhausted, the
	// remaining destinations receive nothing.
	PolicyCap Policy = 0
	// PolicyReject refuses to distribute to more destinations than the
	// tier table has entries.
	PolicyReject Policy = 1
)

var policyNames = map[Policy]string{
	PolicyCap:    "cap",
	PolicyReject: "reject",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int32(p))
}

// Validate returns an error if this is not a known policy.
func (p Policy) Validate() error {
	if _, ok := policyNames[p]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown policy %d", int32(p))
	}
	return nil
}

// MarshalJSON encodes the policy by its name.
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either the policy name or its numeric value.
func (p *Policy) UnmarshalJSON(raw []byte) error {
	var n int32
	if err := json.Unmarshal(raw, &n); err == nil {
		*p = Policy(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "policy must be a name or a number")
	}
	for val, s := range policyNames {
		if s == name {
			*p = val
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown policy %q", name)
}

// Configuration of the distribution.
type Configuration struct {
	// TierTable holds the weight, in basis points, of every tier. The
	// destination at position i belongs to the tier i modulo the table
	// length.
	TierTable []uint32 `protobuf:"varint,1,rep,packed,name=tier_table,json=tierTable,proto3" json:"tier_table,omitempty"`
	// Policy for destinations beyond the tier table length.
	Policy Policy `protobuf:"varint,2,opt,name=policy,proto3" json:"policy"`
	// OncePerPeriod allows only one distribution of a mint in a calendar
	// month.
	OncePerPeriod bool `protobuf:"varint,3,opt,name=once_per_period,json=oncePerPeriod,proto3" json:"once_per_period,omitempty"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TierTable", ValidateTierTable(c.TierTable))
	errs = errors.AppendField(errs, "Policy", c.Policy.Validate())
	return errs
}

// DefaultConfiguration returns the reference tier table with the cap
// policy and no period restriction.
func DefaultConfiguration() Configuration {
	return Configuration{
		TierTable: ReferenceTierTable(),
		Policy:    PolicyCap,
	}
}

// ValidateTierTable ensures the table is not empty and that all weights
// together do not exceed the whole supply.
func ValidateTierTable(table []uint32) error {
	if len(table) == 0 {
		return errors.Wrap(errors.ErrEmpty, "tier table")
	}
	var total uint64
	for _, w := range table {
		total += uint64(w)
	}
	if total > BasisPoints {
		return errors.Wrapf(errors.ErrInput, "tier weights sum to %d basis points", total)
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
