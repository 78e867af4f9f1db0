package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	derr := fmt.Errorf("something went wrong")

	cases := map[string]struct {
		save    treasury.Decorator
		handler treasury.Handler
		check   bool // whether to call Check or Deliver
		isError bool

		written [][]byte
		missing [][]byte
	}{
		"savepoint deactivated, both written": {
			save:    NewSavepoint(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok, nk},
		},
		"savepoint activated on check": {
			save:    NewSavepoint().OnCheck(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			check:   true,
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint activated on deliver": {
			save:    NewSavepoint().OnDeliver(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on check does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv, Err: derr},
			isError: true,
			written: [][]byte{ok, nk},
		},
		"no rollback on success": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: treasurytest.WriteHandler{Key: nk, Value: nv},
			check:   true,
			written: [][]byte{ok, nk},
		},
		"panic inside savepoint is recovered outside and rolled back": {
			save:    NewSavepoint().OnDeliver(),
			handler: treasurytest.PanicHandler{Value: "boom"},
			isError: true,
			written: [][]byte{ok},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))

			stack := treasurytest.Decorate(treasurytest.Decorate(tc.handler, tc.save), NewRecovery())
			var err error
			if tc.check {
				_, err = stack.Check(ctx, kv, &treasury.Request{})
			} else {
				_, err = stack.Deliver(ctx, kv, &treasury.Request{})
			}
			assert.Equal(t, tc.isError, err != nil, "%+v", err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%x", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%x", k)
			}
		})
	}
}
