package app

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/authority"
	"github.com/iov-one/treasury/x/distribution"
	"github.com/iov-one/treasury/x/gov"
	"github.com/iov-one/treasury/x/ledger"
	"github.com/iov-one/treasury/x/multisig"
	"github.com/iov-one/treasury/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Host holds the external collaborators of the treasury.
type Host struct {
	Ledger treasury.TokenLedger
	Clock  treasury.Clock
	Rent   treasury.RentOracle
}

// DefaultHost returns the in-store ledger with the block clock.
func DefaultHost() Host {
	return Host{
		Ledger: ledger.NewLedger(),
		Clock:  treasury.BlockClock{},
		Rent:   ledger.DefaultRentSchedule(),
	}
}

// Initializers returns the genesis initializer of all extensions. The
// authority configuration is required, the others fall back to their
// defaults when missing.
func Initializers() treasury.Initializer {
	return ChainInitializers(
		gconf.NewInitializer().
			Register(authority.PkgName, func() gconf.Configuration { return &authority.Configuration{} }),
		optionalConf{
			pkg:     distribution.PkgName,
			newConf: func() gconf.Configuration { return &distribution.Configuration{} },
		},
		optionalConf{
			pkg:     gov.PkgName,
			newConf: func() gconf.Configuration { return &gov.Configuration{} },
		},
		&ledger.Initializer{},
	)
}

// optionalConf stores the package configuration only if the genesis
// declares one.
type optionalConf struct {
	pkg     string
	newConf func() gconf.Configuration
}

func (o optionalConf) FromGenesis(opts treasury.Options, db treasury.KVStore) error {
	var confOptions treasury.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[o.pkg] == nil {
		return nil
	}
	return gconf.InitConfig(db, opts, o.pkg, o.newConf())
}

// TreasuryHandler returns a factory of the full treasury stack, configured
// from the stored genesis configuration.
func TreasuryHandler(host Host) HandlerFactory {
	return func(db treasury.ReadOnlyKVStore) (treasury.Handler, error) {
		authConf, err := authority.LoadConfiguration(db)
		if err != nil {
			return nil, err
		}

		distConf := distribution.DefaultConfiguration()
		switch c, err := distribution.LoadConfiguration(db); {
		case err == nil:
			distConf = *c
		case !errors.ErrNotFound.Is(err):
			return nil, err
		}

		var govConf gov.Configuration
		switch c, err := gov.LoadConfiguration(db); {
		case err == nil:
			govConf = *c
		case !errors.ErrNotFound.Is(err):
			return nil, err
		}

		auth := x.AccountAuth{}
		gate := authority.NewGate(auth, authConf.Authority)

		r := NewRouter()
		distribution.RegisterRoutes(r, ChainDecorators(
			authority.NewDecorator(gate),
		).WithHandler(
			distribution.NewDispatchHandler(auth, host.Ledger, host.Clock, host.Rent, distConf),
		))
		multisig.RegisterRoutes(r, auth)
		gov.RegisterRoutes(r, auth, govConf)

		return ChainDecorators(
			utils.NewLogging(),
			utils.NewRecovery(),
			auth,
			utils.NewSavepoint().OnCheck(),
		).WithHandler(r), nil
	}
}

// NewTreasury returns the treasury application running on the store.
func NewTreasury(kv treasury.CommitKVStore, host Host, logger log.Logger) (*Application, error) {
	return NewApplication("treasury", kv, Initializers(), TreasuryHandler(host), logger)
}
