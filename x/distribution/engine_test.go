package distribution

import (
	"math"
	"testing"

	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestReferenceTierTable(t *testing.T) {
	var total uint32
	for _, w := range ReferenceTierTable() {
		total += w
	}
	assert.Equal(t, uint32(BasisPoints), total)
	assert.Nil(t, ValidateTierTable(ReferenceTierTable()))
}

func TestValidateTierTable(t *testing.T) {
	cases := map[string]struct {
		table   []uint32
		wantErr *errors.Error
	}{
		"reference":      {table: ReferenceTierTable()},
		"below whole":    {table: []uint32{1000, 1000}},
		"single tier":    {table: []uint32{10000}},
		"empty":          {table: nil, wantErr: errors.ErrEmpty},
		"above whole":    {table: []uint32{5000, 5001}, wantErr: errors.ErrInput},
		"huge weights":   {table: []uint32{math.MaxUint32, math.MaxUint32}, wantErr: errors.ErrInput},
		"all zero is ok": {table: []uint32{0, 0, 0}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := ValidateTierTable(tc.table); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	const million = 1000000000000 // 1,000,000 tokens with 6 decimals

	cases := map[string]struct {
		supply  uint64
		n       int
		table   []uint32
		policy  Policy
		want    []uint64
		wantErr *errors.Error
	}{
		"five destinations": {
			supply: million,
			n:      5,
			table:  ReferenceTierTable(),
			want:   []uint64{500000000000, 200000000000, 200000000000, 80000000000, 20000000000},
		},
		"seven destinations are capped": {
			supply: million,
			n:      7,
			table:  ReferenceTierTable(),
			want:   []uint64{500000000000, 200000000000, 200000000000, 80000000000, 20000000000, 0, 0},
		},
		"seven destinations rejected": {
			supply:  million,
			n:       7,
			table:   ReferenceTierTable(),
			policy:  PolicyReject,
			wantErr: errors.ErrInvalidAccount,
		},
		"five destinations with reject policy": {
			supply: million,
			n:      5,
			table:  ReferenceTierTable(),
			policy: PolicyReject,
			want:   []uint64{500000000000, 200000000000, 200000000000, 80000000000, 20000000000},
		},
		"floor rounding": {
			supply: 999,
			n:      5,
			table:  ReferenceTierTable(),
			want:   []uint64{499, 199, 199, 79, 19},
		},
		"partial table reused until the supply is used": {
			supply: 100,
			n:      4,
			table:  []uint32{4000},
			want:   []uint64{40, 40, 20, 0},
		},
		"overflow": {
			supply:  math.MaxUint64,
			n:       5,
			table:   ReferenceTierTable(),
			wantErr: errors.ErrOverflow,
		},
		"empty table": {
			supply:  million,
			n:       5,
			wantErr: errors.ErrInput,
		},
		"unknown policy": {
			supply:  million,
			n:       5,
			table:   ReferenceTierTable(),
			policy:  Policy(42),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Plan(tc.supply, tc.n, tc.table, tc.policy)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanNeverOverDistributes(t *testing.T) {
	supplies := []uint64{0, 1, 7, 999, 1000000, 1000000000000000, math.MaxUint64 / BasisPoints}
	for _, supply := range supplies {
		for n := MinDestinations; n <= 23; n++ {
			amounts, err := Plan(supply, n, ReferenceTierTable(), PolicyCap)
			assert.Nil(t, err)
			total, err := coin.Sum(amounts...)
			assert.Nil(t, err)
			if total > supply {
				t.Fatalf("supply %d, %d destinations: distributed %d", supply, n, total)
			}
		}
	}
}

func TestNaiveCyclicReuseOverDistributes(t *testing.T) {
	const supply = 1000000000000
	table := ReferenceTierTable()

	// Without tracking the remaining balance, destinations 6 and 7 reuse
	// the 5000 and 2000 weights.
	var naive uint64
	for i := 0; i < 7; i++ {
		a, err := coin.MulDiv(supply, uint64(table[i%len(table)]), BasisPoints)
		assert.Nil(t, err)
		naive += a
	}
	if naive <= supply {
		t.Fatalf("naive distribution of %d does not exceed the supply", naive)
	}

	amounts, err := Plan(supply, 7, table, PolicyCap)
	assert.Nil(t, err)
	total, err := coin.Sum(amounts...)
	assert.Nil(t, err)
	assert.Equal(t, uint64(supply), total)
}
