package treasury

import (
	"time"

	"github.com/iov-one/treasury/errors"
)

// Clock provides the current wall clock time. Implementations may fail, for
// example when the time source is not available for the current request.
type Clock interface {
	Now(ctx Context) (time.Time, error)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func(Context) (time.Time, error)

// Now calls the wrapped function.
func (fn ClockFunc) Now(ctx Context) (time.Time, error) {
	return fn(ctx)
}

// BlockClock reads the time declared by the block header in the context.
type BlockClock struct{}

var _ Clock = BlockClock{}

// Now returns the header time in UTC.
func (BlockClock) Now(ctx Context) (time.Time, error) {
	t, err := BlockTime(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "block clock")
	}
	return t.UTC(), nil
}

// FixedClock always returns the same moment. Use it in tests and in offline
// command line execution.
type FixedClock time.Time

var _ Clock = FixedClock{}

// Now returns the fixed time.
func (c FixedClock) Now(Context) (time.Time, error) {
	t := time.Time(c)
	if t.IsZero() {
		return time.Time{}, errors.Wrap(errors.ErrState, "clock not set")
	}
	return t, nil
}

// RentOracle decides whether an account holding given native balance and
// data of given length is exempt from rent collection.
type RentOracle interface {
	IsExempt(balance uint64, dataLen int) bool
}
