package treasurytest

import (
	"context"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DefaultBalance is a native balance large enough for any account in the
// tests to be rent exempt.
const DefaultBalance = 10000000000

// Account returns a non signing account with no data.
func Account(addr treasury.Address) *treasury.AccountInfo {
	return &treasury.AccountInfo{Key: addr, Lamports: DefaultBalance}
}

// Signer returns an account flagged as a verified signer.
func Signer(addr treasury.Address) *treasury.AccountInfo {
	return &treasury.AccountInfo{Key: addr, Signer: true, Lamports: DefaultBalance}
}

// MintAccount returns an account holding the serialized mint data.
func MintAccount(t testing.TB, addr treasury.Address, data *treasury.MintData) *treasury.AccountInfo {
	t.Helper()
	return &treasury.AccountInfo{
		Key:      addr,
		Lamports: DefaultBalance,
		RawData:  mustMarshal(t, data),
	}
}

// TokenAccount returns an account holding amount tokens of mint.
func TokenAccount(t testing.TB, addr, mint, owner treasury.Address, amount uint64) *treasury.AccountInfo {
	t.Helper()
	data := &treasury.TokenAccountData{Mint: mint, Owner: owner, Amount: amount}
	return &treasury.AccountInfo{
		Key:      addr,
		Lamports: DefaultBalance,
		RawData:  mustMarshal(t, data),
	}
}

// Accounts converts the list into the treasury.Account interface list.
func Accounts(list ...*treasury.AccountInfo) []treasury.Account {
	res := make([]treasury.Account, len(list))
	for i, a := range list {
		res[i] = a
	}
	return res
}

// Date returns midnight UTC of given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// BlockCtx returns a context with a block header declaring given time and
// height.
func BlockCtx(now time.Time, height int64) treasury.Context {
	ctx := treasury.WithHeader(context.Background(), abci.Header{Height: height, Time: now})
	return treasury.WithHeight(ctx, height)
}

func mustMarshal(t testing.TB, msg proto.Message) []byte {
	t.Helper()
	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("cannot marshal %T: %s", msg, err)
	}
	return raw
}
