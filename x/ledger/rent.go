package ledger

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
)

// RentSchedule computes the minimum native balance that makes an account
// exempt from rent collection. An account must hold enough to pay for its
// storage for ExemptionYears years.
type RentSchedule struct {
	// OverheadBytes is charged for every account, regardless of its data.
	OverheadBytes uint64
	// LamportsPerByteYear is the storage cost of a single byte for a year.
	LamportsPerByteYear uint64
	// ExemptionYears is how many years of rent must be prepaid.
	ExemptionYears uint64
}

var _ treasury.RentOracle = RentSchedule{}

// DefaultRentSchedule returns the schedule used by the reference host.
func DefaultRentSchedule() RentSchedule {
	return RentSchedule{
		OverheadBytes:       128,
		LamportsPerByteYear: 3480,
		ExemptionYears:      2,
	}
}

// MinimumBalance returns the smallest exempt balance for an account
// holding dataLen bytes.
func (r RentSchedule) MinimumBalance(dataLen int) (uint64, error) {
	size, err := coin.Add(r.OverheadBytes, uint64(dataLen))
	if err != nil {
		return 0, err
	}
	perYear, err := coin.Mul(size, r.LamportsPerByteYear)
	if err != nil {
		return 0, err
	}
	return coin.Mul(perYear, r.ExemptionYears)
}

// IsExempt returns true if the balance covers the minimum balance. An
// account whose minimum balance cannot be computed is never exempt.
func (r RentSchedule) IsExempt(balance uint64, dataLen int) bool {
	if dataLen < 0 {
		return false
	}
	min, err := r.MinimumBalance(dataLen)
	if err != nil {
		return false
	}
	return balance >= min
}
