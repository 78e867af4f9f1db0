package app

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/stretchr/testify/assert"
)

func TestRouterDispatch(t *testing.T) {
	var (
		dispatch treasurytest.Handler
		vote     = treasurytest.Handler{DeliverErr: errors.ErrUnauthorized}
	)
	r := NewRouter()
	r.Handle("treasury/dispatch", &dispatch)
	r.Handle("gov/vote", &vote)

	ctx := context.Background()
	_, err := r.Check(ctx, nil, &treasury.Request{Path: "treasury/dispatch"})
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, &treasury.Request{Path: "treasury/dispatch"})
	assert.NoError(t, err)
	assert.Equal(t, 2, dispatch.CallCount())

	_, err = r.Deliver(ctx, nil, &treasury.Request{Path: "gov/vote"})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 1, vote.DeliverCallCount())

	_, err = r.Check(ctx, nil, &treasury.Request{Path: "gov/unknown"})
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, nil, &treasury.Request{Path: "gov/unknown"})
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterHandlePanics(t *testing.T) {
	cases := map[string]string{
		"empty path":      "",
		"no module":       "dispatch",
		"upper case":      "Treasury/dispatch",
		"too many levels": "treasury/dispatch/now",
	}
	for testName, path := range cases {
		t.Run(testName, func(t *testing.T) {
			r := NewRouter()
			assert.Panics(t, func() { r.Handle(path, &treasurytest.Handler{}) })
		})
	}

	r := NewRouter()
	r.Handle("gov/vote", &treasurytest.Handler{})
	assert.Panics(t, func() { r.Handle("gov/vote", &treasurytest.Handler{}) })
}
