package distribution

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/coin"
	"github.com/iov-one/treasury/errors"
)

// Plan returns the amount of base units each of n destinations receives
// from totalSupply.
//
// The destination at position i receives floor(totalSupply * w / 10000),
// where w is table[i % len(table)]. The rounding remainder is never
// distributed. Destinations beyond the table length are handled according
// to the policy.
func Plan(totalSupply uint64, n int, table []uint32, policy Policy) ([]uint64, error) {
	if len(table) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "empty tier table")
	}
	if policy == PolicyReject && n > len(table) {
		return nil, errors.Wrapf(errors.ErrInvalidAccount,
			"%d destinations, tier table holds %d", n, len(table))
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	amounts := make([]uint64, n)
	remaining := totalSupply
	for i := range amounts {
		w := table[i%len(table)]
		amount, err := coin.MulDiv(totalSupply, uint64(w), BasisPoints)
		if err != nil {
			return nil, errors.Wrapf(err, "destination %d", i)
		}
		if amount > remaining {
			amount = remaining
		}
		remaining -= amount
		amounts[i] = amount
	}
	return amounts, nil
}

// Engine requests the distribution transfers from the ledger.
type Engine struct {
	ledger treasury.TokenLedger
	table  []uint32
	policy Policy
}

// NewEngine returns an engine distributing according to the
// configuration.
func NewEngine(ledger treasury.TokenLedger, conf Configuration) *Engine {
	table := make([]uint32, len(conf.TierTable))
	copy(table, conf.TierTable)
	return &Engine{
		ledger: ledger,
		table:  table,
		policy: conf.Policy,
	}
}

// Prepare returns the amounts each destination receives, in destination
// order. It fails if the source does not hold enough tokens for the whole
// plan. Nothing is transferred.
func (e *Engine) Prepare(mint, source treasury.Account, destinations int) ([]uint64, uint64, error) {
	mintData, err := treasury.LoadMintData(mint)
	if err != nil {
		return nil, 0, errors.Wrapf(errors.ErrInvalidAccount, "mint: %s", err)
	}
	amounts, err := Plan(mintData.Supply, destinations, e.table, e.policy)
	if err != nil {
		return nil, 0, errors.Wrap(err, "plan")
	}
	total, err := coin.Sum(amounts...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "plan total")
	}

	sourceData, err := treasury.LoadTokenAccount(source)
	if err != nil {
		return nil, 0, errors.Wrapf(errors.ErrInvalidAccount, "source: %s", err)
	}
	if sourceData.Amount < total {
		return nil, 0, errors.Wrapf(errors.ErrInsufficientBalance,
			"source holds %d, distribution requires %d", sourceData.Amount, total)
	}
	return amounts, total, nil
}

// Distribute transfers the tiered share of the total supply of mint from
// source to every destination, authorized by the treasury authority.
//
// The source must hold enough tokens for the whole plan before any
// transfer is requested. The returned amounts are in destination order.
func (e *Engine) Distribute(ctx treasury.Context, db treasury.KVStore, mint, source, treasuryAuthority treasury.Account, dests []treasury.Account) ([]uint64, error) {
	amounts, total, err := e.Prepare(mint, source, len(dests))
	if err != nil {
		return nil, err
	}

	for i, d := range dests {
		if amounts[i] == 0 {
			continue
		}
		if err := e.ledger.Transfer(db, source.Address(), d.Address(), amounts[i], treasuryAuthority.Address()); err != nil {
			return nil, errors.Wrapf(err, "transfer to destination %d", i)
		}
	}

	treasury.GetLogger(ctx).Info("Treasury distributed",
		"mint", mint.Address(),
		"destinations", len(dests),
		"total", total)
	return amounts, nil
}
