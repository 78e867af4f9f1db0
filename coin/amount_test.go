package coin

import (
	"math"
	"testing"

	"github.com/iov-one/treasury/errors"
)

func TestCheckedMath(t *testing.T) {
	cases := map[string]struct {
		fn      func() (uint64, error)
		want    uint64
		wantErr *errors.Error
	}{
		"add": {
			fn:   func() (uint64, error) { return Add(2, 3) },
			want: 5,
		},
		"add overflow": {
			fn:      func() (uint64, error) { return Add(math.MaxUint64, 1) },
			wantErr: errors.ErrOverflow,
		},
		"sub": {
			fn:   func() (uint64, error) { return Sub(5, 3) },
			want: 2,
		},
		"sub below zero": {
			fn:      func() (uint64, error) { return Sub(3, 5) },
			wantErr: errors.ErrAmount,
		},
		"mul": {
			fn:   func() (uint64, error) { return Mul(1000000000, 1000000) },
			want: 1000000000000000,
		},
		"mul overflow": {
			fn:      func() (uint64, error) { return Mul(math.MaxUint64/2, 3) },
			wantErr: errors.ErrOverflow,
		},
		"div by zero": {
			fn:      func() (uint64, error) { return Div(1, 0) },
			wantErr: errors.ErrOverflow,
		},
		"mul div floors": {
			fn:   func() (uint64, error) { return MulDiv(999, 5000, 10000) },
			want: 499,
		},
		"mul div product overflow": {
			fn:      func() (uint64, error) { return MulDiv(math.MaxUint64, 5000, 10000) },
			wantErr: errors.ErrOverflow,
		},
		"pow10": {
			fn:   func() (uint64, error) { return Pow10(6) },
			want: 1000000,
		},
		"pow10 max": {
			fn:   func() (uint64, error) { return Pow10(19) },
			want: 10000000000000000000,
		},
		"pow10 overflow": {
			fn:      func() (uint64, error) { return Pow10(20) },
			wantErr: errors.ErrOverflow,
		},
		"sum": {
			fn:   func() (uint64, error) { return Sum(1, 2, 3) },
			want: 6,
		},
		"sum overflow": {
			fn:      func() (uint64, error) { return Sum(math.MaxUint64, 0, 1) },
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.fn()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
