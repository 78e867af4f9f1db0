package distribution

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// MinDestinations is the smallest number of destination accounts a
// distribution accepts.
const MinDestinations = 5

// ValidateDestinationCount returns ErrInsufficientAccounts if there are
// fewer than MinDestinations destinations. There is no upper bound.
func ValidateDestinationCount(dests []treasury.Account) error {
	if n := len(dests); n < MinDestinations {
		return errors.Wrapf(errors.ErrInsufficientAccounts, "got %d, need at least %d", n, MinDestinations)
	}
	return nil
}

// ValidateWalletSigner returns ErrUnauthorized unless the treasury wallet
// signed the request.
func ValidateWalletSigner(ctx treasury.Context, auth x.Authenticator, wallet treasury.Account) error {
	if wallet == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing treasury wallet")
	}
	if !wallet.IsSigner() || !auth.HasAddress(ctx, wallet.Address()) {
		return errors.Wrapf(errors.ErrUnauthorized, "treasury wallet %s did not sign", wallet.Address())
	}
	return nil
}

// ValidateSourceMint returns ErrInvalidAccount unless source is a token
// account of the given mint.
func ValidateSourceMint(source, mint treasury.Account) error {
	if err := validateTokenMint(source, mint.Address()); err != nil {
		return errors.Wrap(err, "source")
	}
	return nil
}

// ValidateDestinationMints returns ErrInvalidAccount unless every
// destination is a token account of the given mint.
func ValidateDestinationMints(dests []treasury.Account, mint treasury.Account) error {
	for i, d := range dests {
		if err := validateTokenMint(d, mint.Address()); err != nil {
			return errors.Wrapf(err, "destination %d", i)
		}
	}
	return nil
}

func validateTokenMint(acc treasury.Account, mint treasury.Address) error {
	data, err := treasury.LoadTokenAccount(acc)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidAccount, "not a token account: %s", err)
	}
	if !data.Mint.Equals(mint) {
		return errors.Wrapf(errors.ErrInvalidAccount, "%s holds mint %s, not %s", acc.Address(), data.Mint, mint)
	}
	return nil
}

// ValidateRentExemption returns ErrNotRentExempt for the first account
// that is not rent exempt. The source is checked before the destinations.
func ValidateRentExemption(oracle treasury.RentOracle, source treasury.Account, dests []treasury.Account) error {
	if !oracle.IsExempt(source.Balance(), source.DataLen()) {
		return errors.Wrapf(errors.ErrNotRentExempt, "source %s", source.Address())
	}
	for i, d := range dests {
		if !oracle.IsExempt(d.Balance(), d.DataLen()) {
			return errors.Wrapf(errors.ErrNotRentExempt, "destination %d: %s", i, d.Address())
		}
	}
	return nil
}

// ValidateDistributionDay returns ErrNotFirstOfMonth unless the clock
// reports the first day of a month, in UTC.
func ValidateDistributionDay(ctx treasury.Context, clock treasury.Clock) error {
	now, err := clock.Now(ctx)
	if err != nil {
		return errors.Wrap(err, "current time")
	}
	if day := now.UTC().Day(); day != 1 {
		return errors.Wrapf(errors.ErrNotFirstOfMonth, "day %d of %s", day, now.UTC().Month())
	}
	return nil
}
