package treasury

import (
	"time"

	"github.com/iov-one/treasury/errors"
)

// periodLayout formats a calendar month.
const periodLayout = "2006-01"

// PeriodOf returns the calendar month, in UTC, that given time belongs to.
// The format is YYYY-MM.
func PeriodOf(t time.Time) string {
	return t.UTC().Format(periodLayout)
}

// ParsePeriod validates a YYYY-MM period string.
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInput, "period %q", period)
	}
	return t, nil
}
