package treasury

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/iov-one/treasury/errors"
	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// test height - uninitialized
	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	// set
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetHeight(ctx)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { GetChainID(ctx) })
	ctx2 = WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", GetChainID(ctx2))
	assert.Panics(t, func() { WithChainID(ctx2, "my-chain") })

	_, ok = GetRequestID(ctx)
	assert.False(t, ok)
	id, ok := GetRequestID(WithRequestID(ctx, "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)
}

func TestHeaderAndBlockTime(t *testing.T) {
	bg := context.Background()

	_, err := BlockTime(bg)
	assert.True(t, errors.ErrState.Is(err))

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	ctx := WithHeader(bg, abci.Header{Height: 3, Time: now})
	header, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(3), header.Height)
	assert.Panics(t, func() { WithHeader(ctx, abci.Header{}) })

	got, err := BlockTime(ctx)
	assert.NoError(t, err)
	assert.Equal(t, now, got)

	zero := WithHeader(bg, abci.Header{Height: 1})
	_, err = BlockTime(zero)
	assert.True(t, errors.ErrState.Is(err))
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidChainID(tc.chainID), tc.chainID)
	}
}
