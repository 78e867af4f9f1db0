package distribution

import (
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// PeriodRecord remembers the last calendar month a mint was distributed
// in.
type PeriodRecord struct {
	// Period in the YYYY-MM format.
	Period string `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	// Height of the block the distribution was executed in.
	Height int64 `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *PeriodRecord) Reset()         { *m = PeriodRecord{} }
func (m *PeriodRecord) String() string { return proto.CompactTextString(m) }
func (*PeriodRecord) ProtoMessage()    {}

func (m *PeriodRecord) Validate() error {
	if _, err := treasury.ParsePeriod(m.Period); err != nil {
		return errors.Field("Period", err, "invalid period")
	}
	if m.Height < 0 {
		return errors.Field("Height", errors.ErrModel, "negative height")
	}
	return nil
}

// PeriodBucket stores period records keyed by the mint address.
type PeriodBucket struct {
	orm.ModelBucket
}

// NewPeriodBucket returns a bucket for managing period records.
func NewPeriodBucket() *PeriodBucket {
	return &PeriodBucket{
		ModelBucket: orm.NewModelBucket("periods"),
	}
}

// CheckPeriod returns ErrAlreadyDistributed if the mint was distributed
// in the same calendar month as now.
func (b *PeriodBucket) CheckPeriod(db treasury.ReadOnlyKVStore, mint treasury.Address, now time.Time) error {
	var rec PeriodRecord
	switch err := b.One(db, mint, &rec); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "load period")
	}
	if period := treasury.PeriodOf(now); rec.Period == period {
		return errors.Wrapf(errors.ErrAlreadyDistributed, "mint %s in %s at height %d", mint, period, rec.Height)
	}
	return nil
}

// RecordPeriod stores now as the last distribution period of the mint.
func (b *PeriodBucket) RecordPeriod(db treasury.KVStore, mint treasury.Address, now time.Time, height int64) error {
	rec := PeriodRecord{
		Period: treasury.PeriodOf(now),
		Height: height,
	}
	return b.Put(db, mint, &rec)
}
