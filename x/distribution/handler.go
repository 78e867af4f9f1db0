package distribution

import (
	"encoding/binary"
	"fmt"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/mint"
)

// RegisterRoutes registers the dispatch handler. h must be a
// DispatchHandler guarded by the authority decorator.
func RegisterRoutes(r treasury.Registry, h treasury.Handler) {
	r.Handle(PathDispatch, h)
}

// DispatchHandler initializes the mint or distributes the treasury,
// depending on the request payload. Any non empty payload is a
// distribution; its content is not interpreted. Both modes require the
// treasury wallet signature.
type DispatchHandler struct {
	auth    x.Authenticator
	boot    *mint.Bootstrapper
	engine  *Engine
	clock   treasury.Clock
	rent    treasury.RentOracle
	periods *PeriodBucket
	conf    Configuration
}

var _ treasury.Handler = (*DispatchHandler)(nil)

// NewDispatchHandler returns a handler using ledger for all token
// operations.
func NewDispatchHandler(auth x.Authenticator, ledger treasury.TokenLedger, clock treasury.Clock, rent treasury.RentOracle, conf Configuration) *DispatchHandler {
	return &DispatchHandler{
		auth:    auth,
		boot:    mint.NewBootstrapper(ledger),
		engine:  NewEngine(ledger, conf),
		clock:   clock,
		rent:    rent,
		periods: NewPeriodBucket(),
		conf:    conf,
	}
}

func (h *DispatchHandler) Check(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.CheckResult, error) {
	accts, err := req.DispatchAccounts()
	if err != nil {
		return nil, err
	}
	if req.IsInitialize() {
		if err := ValidateWalletSigner(ctx, h.auth, accts.TreasuryWallet); err != nil {
			return nil, err
		}
		return &treasury.CheckResult{Log: "initialize mint"}, nil
	}
	if err := h.validate(ctx, db, accts); err != nil {
		return nil, err
	}
	_, total, err := h.engine.Prepare(accts.Mint, accts.Source, len(accts.Destinations))
	if err != nil {
		return nil, err
	}
	return &treasury.CheckResult{Log: fmt.Sprintf("distribute %d", total)}, nil
}

func (h *DispatchHandler) Deliver(ctx treasury.Context, db treasury.KVStore, req *treasury.Request) (*treasury.DeliverResult, error) {
	accts, err := req.DispatchAccounts()
	if err != nil {
		return nil, err
	}
	if req.IsInitialize() {
		if err := ValidateWalletSigner(ctx, h.auth, accts.TreasuryWallet); err != nil {
			return nil, err
		}
		if err := h.boot.InitializeMint(ctx, db, accts.Mint, accts.TreasuryWallet); err != nil {
			return nil, err
		}
		return &treasury.DeliverResult{Log: fmt.Sprintf("mint %s initialized", accts.Mint.Address())}, nil
	}

	if err := h.validate(ctx, db, accts); err != nil {
		return nil, err
	}
	amounts, err := h.engine.Distribute(ctx, db, accts.Mint, accts.Source, accts.TreasuryWallet, accts.Destinations)
	if err != nil {
		return nil, err
	}
	if h.conf.OncePerPeriod {
		now, err := h.clock.Now(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "current time")
		}
		height, _ := treasury.GetHeight(ctx)
		if err := h.periods.RecordPeriod(db, accts.Mint.Address(), now, height); err != nil {
			return nil, errors.Wrap(err, "record period")
		}
	}
	return &treasury.DeliverResult{
		Data: encodeAmounts(amounts),
		Log:  distributionLog(req, len(amounts)),
	}, nil
}

// validate runs all distribution preconditions. The first failure stops
// the chain.
func (h *DispatchHandler) validate(ctx treasury.Context, db treasury.KVStore, accts *treasury.DispatchAccounts) error {
	if err := ValidateDestinationCount(accts.Destinations); err != nil {
		return err
	}
	if err := ValidateWalletSigner(ctx, h.auth, accts.TreasuryWallet); err != nil {
		return err
	}
	if err := ValidateSourceMint(accts.Source, accts.Mint); err != nil {
		return err
	}
	if err := ValidateDestinationMints(accts.Destinations, accts.Mint); err != nil {
		return err
	}
	if err := ValidateRentExemption(h.rent, accts.Source, accts.Destinations); err != nil {
		return err
	}
	if err := ValidateDistributionDay(ctx, h.clock); err != nil {
		return err
	}
	if h.conf.OncePerPeriod {
		now, err := h.clock.Now(ctx)
		if err != nil {
			return errors.Wrap(err, "current time")
		}
		if err := h.periods.CheckPeriod(db, accts.Mint.Address(), now); err != nil {
			return err
		}
	}
	return nil
}

func distributionLog(req *treasury.Request, n int) string {
	if memo := Memo(req); memo != "" {
		return fmt.Sprintf("distributed to %d destinations: %s", n, memo)
	}
	return fmt.Sprintf("distributed to %d destinations", n)
}

// encodeAmounts serializes the distributed amounts as consecutive 8 byte
// big endian numbers.
func encodeAmounts(amounts []uint64) []byte {
	raw := make([]byte, 8*len(amounts))
	for i, a := range amounts {
		binary.BigEndian.PutUint64(raw[i*8:], a)
	}
	return raw
}

// DecodeAmounts parses the data of a successful distribution result.
func DecodeAmounts(raw []byte) ([]uint64, error) {
	if len(raw)%8 != 0 {
		return nil, errors.Wrapf(errors.ErrInput, "invalid length %d", len(raw))
	}
	amounts := make([]uint64, len(raw)/8)
	for i := range amounts {
		amounts[i] = binary.BigEndian.Uint64(raw[i*8:])
	}
	return amounts, nil
}
