package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/app"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store/iavl"
	"github.com/iov-one/treasury/store/pebble"
	"github.com/iov-one/treasury/x/ledger"
	"github.com/spf13/viper"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	backendIAVL   = "iavl"
	backendPebble = "pebble"
)

// environment opens the node state for a single command run.
type environment struct {
	logger log.Logger
}

// node is an opened application together with the ledger it runs on.
type node struct {
	app    *app.Application
	ledger *ledger.Ledger
	logger log.Logger
}

func (e *environment) open() (*node, error) {
	home := viper.GetString(flagHome)
	dataDir := filepath.Join(home, "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "data directory: %s", err)
	}

	var kv treasury.CommitKVStore
	switch b := viper.GetString(flagBackend); b {
	case backendIAVL:
		s, err := iavl.NewCommitStore(dataDir, "treasury")
		if err != nil {
			return nil, err
		}
		kv = s
	case backendPebble:
		s, err := pebble.NewCommitStore(filepath.Join(dataDir, "treasury.pebble"))
		if err != nil {
			return nil, err
		}
		kv = s
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown backend %q", b)
	}

	l := ledger.NewLedger()
	host := app.DefaultHost()
	host.Ledger = l
	a, err := app.NewTreasury(kv, host, e.logger)
	if err != nil {
		return nil, err
	}
	a.WithDebug(viper.GetBool(flagDebug))
	return &node{app: a, ledger: l, logger: e.logger}, nil
}

// beginBlock starts the next block at the configured time.
func (n *node) beginBlock() error {
	now := time.Now().UTC()
	if raw := viper.GetString(flagTime); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "time: %s", err)
		}
		now = t
	}
	last, err := n.app.LatestVersion()
	if err != nil {
		return err
	}
	n.app.BeginBlock(abci.Header{Height: last.Version + 1, Time: now})
	return nil
}

// execute runs the request in a new block and commits the result.
func (n *node) execute(req *treasury.Request) (*treasury.DeliverResult, error) {
	if err := n.beginBlock(); err != nil {
		return nil, err
	}
	if _, err := n.app.Check(req); err != nil {
		return nil, err
	}
	ctx := treasury.WithRequestID(context.Background(), uuid.New().String())
	res, err := n.app.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := n.app.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

// update applies host side changes and commits them.
func (n *node) update(fn func(db treasury.KVStore) error) error {
	if err := n.app.Update(fn); err != nil {
		return err
	}
	_, err := n.app.Commit()
	return err
}

// accounts returns the current state of all addresses. Addresses listed
// in signers are marked as signed.
func (n *node) accounts(signers []treasury.Address, addrs ...treasury.Address) ([]treasury.Account, error) {
	res := make([]treasury.Account, 0, len(addrs))
	for _, a := range addrs {
		var signed bool
		for _, s := range signers {
			if s.Equals(a) {
				signed = true
			}
		}
		acc, err := n.ledger.Snapshot(n.app.Query(), a, signed)
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", a)
		}
		res = append(res, acc)
	}
	return res, nil
}

func (n *node) close() {
	if err := n.app.Close(); err != nil {
		n.logger.Error("Cannot close store", "err", err)
	}
}

func parseAddresses(raw []string) ([]treasury.Address, error) {
	res := make([]treasury.Address, 0, len(raw))
	for _, r := range raw {
		a, err := treasury.ParseAddress(r)
		if err != nil {
			return nil, errors.Wrapf(err, "address %q", r)
		}
		if err := a.Validate(); err != nil {
			return nil, errors.Wrapf(err, "address %q", r)
		}
		res = append(res, a)
	}
	return res, nil
}

func parseAddress(raw string) (treasury.Address, error) {
	res, err := parseAddresses([]string{raw})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}
