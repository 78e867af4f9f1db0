package treasury

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/treasury/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestBlockClock(t *testing.T) {
	warsaw := time.FixedZone("CET", 60*60)
	local := time.Date(2024, time.June, 1, 0, 30, 0, 0, warsaw)
	ctx := WithHeader(context.Background(), abci.Header{Time: local})

	now, err := BlockClock{}.Now(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if now.Location() != time.UTC {
		t.Fatalf("want UTC, got %s", now.Location())
	}
	if now.Day() != 31 {
		t.Fatalf("want day 31 in UTC, got %d", now.Day())
	}

	if _, err := (BlockClock{}).Now(context.Background()); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %v", err)
	}
}

func TestFixedClock(t *testing.T) {
	var empty FixedClock
	if _, err := empty.Now(context.Background()); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %v", err)
	}

	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	got, err := FixedClock(want).Now(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !got.Equal(want) {
		t.Fatalf("want %s, got %s", want, got)
	}
}
