package distribution

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestValidateDestinationCount(t *testing.T) {
	for n := 0; n < 8; n++ {
		dests := make([]treasury.Account, n)
		for i := range dests {
			dests[i] = treasurytest.Account(treasurytest.SequenceAddr(uint64(i)))
		}
		err := ValidateDestinationCount(dests)
		if n < MinDestinations {
			assert.IsErr(t, errors.ErrInsufficientAccounts, err)
			assert.HasCode(t, 2, err)
		} else {
			assert.Nil(t, err)
		}
	}
}

func TestValidateMints(t *testing.T) {
	mint := treasurytest.SequenceAddr(1)
	otherMint := treasurytest.SequenceAddr(2)
	owner := treasurytest.SequenceAddr(3)
	mintAcc := treasurytest.Account(mint)

	good := treasurytest.TokenAccount(t, treasurytest.SequenceAddr(10), mint, owner, 5)
	wrongMint := treasurytest.TokenAccount(t, treasurytest.SequenceAddr(11), otherMint, owner, 5)
	noData := treasurytest.Account(treasurytest.SequenceAddr(12))
	garbage := &treasury.AccountInfo{Key: treasurytest.SequenceAddr(13), RawData: []byte{0xff, 0xff}}

	cases := map[string]struct {
		source  treasury.Account
		dests   []treasury.Account
		wantErr *errors.Error
	}{
		"all good": {
			source: good,
			dests:  treasurytest.Accounts(good, good),
		},
		"source of another mint": {
			source:  wrongMint,
			dests:   treasurytest.Accounts(good),
			wantErr: errors.ErrInvalidAccount,
		},
		"source without data": {
			source:  noData,
			dests:   treasurytest.Accounts(good),
			wantErr: errors.ErrInvalidAccount,
		},
		"source with invalid data": {
			source:  garbage,
			dests:   treasurytest.Accounts(good),
			wantErr: errors.ErrInvalidAccount,
		},
		"destination of another mint": {
			source:  good,
			dests:   treasurytest.Accounts(good, wrongMint),
			wantErr: errors.ErrInvalidAccount,
		},
		"destination without data": {
			source:  good,
			dests:   treasurytest.Accounts(noData),
			wantErr: errors.ErrInvalidAccount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateSourceMint(tc.source, mintAcc)
			if err == nil {
				err = ValidateDestinationMints(tc.dests, mintAcc)
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				assert.HasCode(t, 3, err)
			}
		})
	}
}

// minBalanceOracle is exempt when the balance is at least the data length.
type minBalanceOracle struct{}

func (minBalanceOracle) IsExempt(balance uint64, dataLen int) bool {
	return balance >= uint64(dataLen)
}

func TestValidateRentExemption(t *testing.T) {
	rich := &treasury.AccountInfo{Key: treasurytest.SequenceAddr(1), Lamports: 10, RawData: []byte("data")}
	poor := &treasury.AccountInfo{Key: treasurytest.SequenceAddr(2), Lamports: 3, RawData: []byte("data")}

	cases := map[string]struct {
		source  treasury.Account
		dests   []treasury.Account
		wantErr *errors.Error
	}{
		"all exempt": {
			source: rich,
			dests:  treasurytest.Accounts(rich, rich),
		},
		"source not exempt": {
			source:  poor,
			dests:   treasurytest.Accounts(rich),
			wantErr: errors.ErrNotRentExempt,
		},
		"last destination not exempt": {
			source:  rich,
			dests:   treasurytest.Accounts(rich, rich, poor),
			wantErr: errors.ErrNotRentExempt,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateRentExemption(minBalanceOracle{}, tc.source, tc.dests)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestValidateDistributionDay(t *testing.T) {
	cases := map[string]struct {
		now     time.Time
		wantErr *errors.Error
	}{
		"first of january":  {now: treasurytest.Date(2024, time.January, 1)},
		"first, late night": {now: time.Date(2024, time.March, 1, 23, 59, 59, 0, time.UTC)},
		"second":            {now: treasurytest.Date(2024, time.March, 2), wantErr: errors.ErrNotFirstOfMonth},
		"28th":              {now: treasurytest.Date(2023, time.February, 28), wantErr: errors.ErrNotFirstOfMonth},
		"29th of leap year": {now: treasurytest.Date(2024, time.February, 29), wantErr: errors.ErrNotFirstOfMonth},
		"30th":              {now: treasurytest.Date(2024, time.April, 30), wantErr: errors.ErrNotFirstOfMonth},
		"31st":              {now: treasurytest.Date(2024, time.December, 31), wantErr: errors.ErrNotFirstOfMonth},
		"first in another zone is last day in UTC": {
			now:     time.Date(2024, time.May, 1, 1, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			wantErr: errors.ErrNotFirstOfMonth,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateDistributionDay(context.Background(), treasury.FixedClock(tc.now))
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				assert.HasCode(t, 1, err)
			}
		})
	}

	// Without a clock reading there is no distribution day.
	err := ValidateDistributionDay(context.Background(), treasury.BlockClock{})
	assert.IsErr(t, errors.ErrState, err)
}

func TestValidateWalletSigner(t *testing.T) {
	wallet := treasurytest.SequenceAddr(3)
	other := treasurytest.SequenceAddr(4)
	ctx := context.Background()

	cases := map[string]struct {
		wallet  treasury.Account
		signers []treasury.Address
		wantErr *errors.Error
	}{
		"signed": {
			wallet:  treasurytest.Signer(wallet),
			signers: []treasury.Address{other, wallet},
		},
		"account not flagged as signer": {
			wallet:  treasurytest.Account(wallet),
			signers: []treasury.Address{wallet},
			wantErr: errors.ErrUnauthorized,
		},
		"signature not authenticated": {
			wallet:  treasurytest.Signer(wallet),
			signers: []treasury.Address{other},
			wantErr: errors.ErrUnauthorized,
		},
		"missing wallet": {
			signers: []treasury.Address{wallet},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ValidateWalletSigner(ctx, &treasurytest.Auth{Signers: tc.signers}, tc.wallet)
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
			assert.HasCode(t, 5, err)
		})
	}
}
