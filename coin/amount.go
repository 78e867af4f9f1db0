package coin

import (
	"math"
	"math/bits"

	"github.com/iov-one/treasury/errors"
)

// Add returns a + b. ErrOverflow is returned if the result does not fit in
// uint64.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

// Sub returns a - b. ErrAmount is returned if b is greater than a.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrAmount, "%d - %d is negative", a, b)
	}
	return a - b, nil
}

// Mul returns a * b. ErrOverflow is returned if the result does not fit in
// uint64.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return lo, nil
}

// Div returns floor(a / b). Division by zero results in ErrOverflow.
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "division by zero")
	}
	return a / b, nil
}

// MulDiv returns floor(a * b / c). The product must fit in uint64, even if
// the final result would.
func MulDiv(a, b, c uint64) (uint64, error) {
	p, err := Mul(a, b)
	if err != nil {
		return 0, err
	}
	return Div(p, c)
}

// Pow10 returns 10^n.
func Pow10(n uint32) (uint64, error) {
	res := uint64(1)
	for i := uint32(0); i < n; i++ {
		if res > math.MaxUint64/10 {
			return 0, errors.Wrapf(errors.ErrOverflow, "10^%d", n)
		}
		res *= 10
	}
	return res, nil
}

// Sum adds all values together.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var err error
		if total, err = Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
