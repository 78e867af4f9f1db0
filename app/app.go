package app

import (
	"context"
	"sync"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// HandlerFactory builds the request handler from the stored state, for
// example from the configuration saved at genesis.
type HandlerFactory func(db treasury.ReadOnlyKVStore) (treasury.Handler, error)

// Application processes requests one at a time against a committed store.
type Application struct {
	mu sync.Mutex

	logger log.Logger

	// name is used for logging only
	name string

	// Database state (committed, check, deliver....)
	store *CommitStore

	// Code to initialize from a genesis file
	initializer treasury.Initializer

	// newHandler builds handler once the chain is initialized
	newHandler HandlerFactory
	handler    treasury.Handler

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// baseContext contains context info that is valid for
	// lifetime of this app (eg. chainID)
	baseContext treasury.Context

	// blockContext contains context info that is valid for the
	// current block (eg. height, header), reset on BeginBlock
	blockContext treasury.Context

	debug bool
}

// NewApplication loads the latest state of the store. If the chain was
// already initialized, the handler is built right away.
func NewApplication(name string, kv treasury.CommitKVStore, init treasury.Initializer, newHandler HandlerFactory, logger log.Logger) (*Application, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	cs, err := NewCommitStore(kv)
	if err != nil {
		return nil, err
	}
	a := &Application{
		logger:      logger.With("module", name),
		name:        name,
		store:       cs,
		initializer: init,
		newHandler:  newHandler,
	}
	a.baseContext = treasury.WithLogger(context.Background(), a.logger)

	if a.chainID, err = loadChainID(cs.DeliverStore()); err != nil {
		return nil, err
	}
	if a.chainID != "" {
		a.baseContext = treasury.WithChainID(a.baseContext, a.chainID)
		if err := a.buildHandler(); err != nil {
			return nil, err
		}
	}

	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	a.blockContext = treasury.WithHeight(a.baseContext, info.Version)
	return a, nil
}

// WithDebug enables returning the full error information to the caller.
func (a *Application) WithDebug(debug bool) *Application {
	a.debug = debug
	return a
}

// ChainID returns the chain id, empty before the chain is initialized.
func (a *Application) ChainID() string {
	return a.chainID
}

// InitChain stores the chain id and loads the genesis state of all
// extensions. It can be called only once.
func (a *Application) InitChain(gen *Genesis) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "chain %s already initialized", a.chainID)
	}
	cache := a.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if a.initializer != nil {
		if err := a.initializer.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis")
	}

	a.chainID = gen.ChainID
	a.baseContext = treasury.WithChainID(a.baseContext, a.chainID)
	a.blockContext = treasury.WithChainID(a.blockContext, a.chainID)
	a.logger.Info("Chain initialized", "chain_id", a.chainID)
	return a.buildHandler()
}

func (a *Application) buildHandler() error {
	h, err := a.newHandler(a.store.DeliverStore())
	if err != nil {
		return errors.Wrap(err, "build handler")
	}
	a.handler = h
	return nil
}

// BeginBlock sets the block header used by all following requests.
func (a *Application) BeginBlock(header abci.Header) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if header.ChainID == "" {
		header.ChainID = a.chainID
	}
	ctx := treasury.WithHeader(a.baseContext, header)
	a.blockContext = treasury.WithHeight(ctx, header.Height)
}

// Check validates the request against the check state. Changes made by
// a successful check are visible to the following checks only.
func (a *Application) Check(req *treasury.Request) (*treasury.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler == nil {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	ctx := treasury.WithLogInfo(a.blockContext, "call", "check", "path", req.GetPath())
	res, err := a.handler.Check(ctx, a.store.CheckStore(), req)
	return res, errors.Redact(err, a.debug)
}

// Execute runs the request. All its changes are kept only if the request
// succeeds, otherwise the state is left untouched.
func (a *Application) Execute(ctx treasury.Context, req *treasury.Request) (*treasury.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handler == nil {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	if id, ok := treasury.GetRequestID(ctx); ok {
		ctx = treasury.WithRequestID(a.blockContext, id)
	} else {
		ctx = a.blockContext
	}
	ctx = treasury.WithLogInfo(ctx, "call", "execute", "path", req.GetPath())

	cache := a.store.DeliverStore().CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, req)
	if err != nil {
		cache.Discard()
		return nil, errors.Redact(err, a.debug)
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write request changes")
	}
	return res, nil
}

// Update applies host side changes, for example funding an account, that
// do not go through a handler. Changes are kept only if fn succeeds.
func (a *Application) Update(fn func(db treasury.KVStore) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.DeliverStore().CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

// Query returns the deliver state for read only access. It must not be
// used concurrently with Execute.
func (a *Application) Query() treasury.ReadOnlyKVStore {
	return a.store.DeliverStore()
}

// Commit persists all executed requests.
func (a *Application) Commit() (treasury.CommitID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	a.logger.Debug("Commit synced", "version", id.Version, "hash", id.Hash)
	return id, nil
}

// LatestVersion returns the last committed version.
func (a *Application) LatestVersion() (treasury.CommitID, error) {
	return a.store.CommitInfo()
}

// Close releases the store. Uncommitted changes are lost.
func (a *Application) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Close()
}
