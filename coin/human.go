package coin

import (
	"math"
	"math/big"
	"regexp"

	"github.com/iov-one/treasury/errors"
	"github.com/shopspring/decimal"
)

var humanAmountRx = regexp.MustCompile(`^\d+(\.\d+)?$`)

// maxBaseUnits is the largest representable amount.
var maxBaseUnits = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ParseHuman converts a human readable amount, for example "12.5", into base
// units of a token with given decimals. Values with more fractional digits
// than decimals are rejected.
func ParseHuman(h string, decimals uint32) (uint64, error) {
	if !humanAmountRx.MatchString(h) {
		return 0, errors.Wrapf(errors.ErrInput, "invalid amount format %q", h)
	}
	d, err := decimal.NewFromString(h)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "invalid amount %q: %s", h, err)
	}
	base := d.Shift(int32(decimals))
	if !base.Equal(base.Truncate(0)) {
		return 0, errors.Wrapf(errors.ErrInput, "%q has more than %d decimal places", h, decimals)
	}
	if base.GreaterThan(maxBaseUnits) {
		return 0, errors.Wrapf(errors.ErrOverflow, "amount %q", h)
	}
	return base.BigInt().Uint64(), nil
}

// FormatHuman returns the human readable representation of an amount of
// base units, with exactly decimals fractional digits.
func FormatHuman(amount uint64, decimals uint32) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
	return d.StringFixed(int32(decimals))
}
