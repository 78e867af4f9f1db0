package treasury

import (
	"fmt"
	"testing"

	"github.com/iov-one/treasury/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accounts(n int) []Account {
	res := make([]Account, n)
	for i := range res {
		res[i] = &AccountInfo{Key: NewAddress([]byte(fmt.Sprintf("acc-%d", i)))}
	}
	return res
}

func TestDispatchAccounts(t *testing.T) {
	cases := map[string]struct {
		accounts  []Account
		wantDests int
		wantErr   *errors.Error
	}{
		"not enough keys": {
			accounts: accounts(4),
			wantErr:  errors.ErrInput,
		},
		"no destinations": {
			accounts:  accounts(5),
			wantDests: 0,
		},
		"seven destinations": {
			accounts:  accounts(12),
			wantDests: 7,
		},
		"nil account": {
			accounts: append(accounts(5), nil),
			wantErr:  errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			req := &Request{Path: "treasury/dispatch", Accounts: tc.accounts}
			got, err := req.DispatchAccounts()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Len(t, got.Destinations, tc.wantDests)
			assert.Equal(t, tc.accounts[0], got.Authority)
			assert.Equal(t, tc.accounts[1], got.Mint)
			assert.Equal(t, tc.accounts[2], got.Source)
			assert.Equal(t, tc.accounts[3], got.TreasuryWallet)
			assert.Equal(t, tc.accounts[len(tc.accounts)-1], got.TokenProgram)
		})
	}
}

func TestIsInitialize(t *testing.T) {
	req := &Request{Path: "treasury/dispatch"}
	assert.True(t, req.IsInitialize())
	req.Payload = []byte{0x0a, 0x01, 'x'}
	assert.False(t, req.IsInitialize())
}

func TestLoadMintData(t *testing.T) {
	authority := NewAddress([]byte("authority"))
	raw := MustMarshal(t, &MintData{
		Supply:        1000,
		Decimals:      6,
		MintAuthority: authority,
		Initialized:   true,
	})

	got, err := LoadMintData(&AccountInfo{Key: NewAddress([]byte("mint")), RawData: raw})
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got.Supply)
	assert.Equal(t, uint32(6), got.Decimals)
	assert.Equal(t, authority, got.MintAuthority)

	_, err = LoadMintData(&AccountInfo{Key: NewAddress([]byte("mint"))})
	assert.True(t, errors.ErrEmpty.Is(err))

	_, err = LoadMintData(&AccountInfo{Key: NewAddress([]byte("mint")), RawData: []byte{0xff, 0xff}})
	assert.True(t, errors.ErrModel.Is(err))

	notInit := MustMarshal(t, &MintData{Supply: 1, MintAuthority: authority})
	_, err = LoadMintData(&AccountInfo{Key: NewAddress([]byte("mint")), RawData: notInit})
	assert.True(t, errors.ErrState.Is(err))
}

func TestLoadTokenAccount(t *testing.T) {
	mint := NewAddress([]byte("mint"))
	owner := NewAddress([]byte("owner"))
	raw := MustMarshal(t, &TokenAccountData{Mint: mint, Owner: owner, Amount: 42})

	got, err := LoadTokenAccount(&AccountInfo{Key: NewAddress([]byte("src")), RawData: raw})
	require.NoError(t, err)
	assert.Equal(t, mint, got.Mint)
	assert.Equal(t, owner, got.Owner)
	assert.Equal(t, uint64(42), got.Amount)

	noMint := MustMarshal(t, &TokenAccountData{Owner: owner, Amount: 1})
	_, err = LoadTokenAccount(&AccountInfo{Key: NewAddress([]byte("src")), RawData: noMint})
	assert.True(t, errors.ErrEmpty.Is(err))
}
