/*
Package pebble provides a CommitKVStore persisted in a Pebble database.

Application data lives under a dedicated key prefix and the commit metadata
(version and rolling hash) is written atomically with every commit.
*/
package pebble

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
)

var (
	dataPrefix = []byte{'d'}
	dataEnd    = []byte{'e'}
	metaKey    = []byte("m:commit")
)

// CommitStore keeps the working state in a pebble batch until Commit is
// called.
type CommitStore struct {
	db    *pebble.DB
	state *commitState
}

type commitState struct {
	version int64
	hash    []byte
	batch   *pebble.Batch
	work    store.BTreeCacheWrap
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore opens (or creates) a database in the given directory.
func NewCommitStore(path string) (CommitStore, error) {
	return open(path, &pebble.Options{
		Cache:        pebble.NewCache(32 << 20),
		MemTableSize: 16 << 20,
	})
}

// MemCommitStore returns a store backed by an in-memory filesystem.
func MemCommitStore() (CommitStore, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(path string, opts *pebble.Options) (CommitStore, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return CommitStore{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	s := CommitStore{db: db, state: &commitState{}}
	s.resetWork()
	return s, nil
}

func (s CommitStore) resetWork() {
	b := s.db.NewBatch()
	s.state.batch = b
	s.state.work = store.NewBTreeCacheWrap(reader{s.db}, batchWriter{b}, nil)
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	return reader{s.db}.Get(key)
}

// CacheWrap gives us a savepoint on top of the uncommitted working state.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.state.work.CacheWrap()
}

// Commit writes the working state to disk together with the next version
// number. The hash chains the previous hash with the serialized batch.
func (s CommitStore) Commit() (store.CommitID, error) {
	st := s.state
	h := sha256.New()
	h.Write(st.hash)
	h.Write(st.batch.Repr())
	hash := h.Sum(nil)
	version := st.version + 1

	if err := st.batch.Set(metaKey, encodeMeta(version, hash), nil); err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := st.batch.Commit(pebble.Sync); err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	st.batch.Close()

	st.version = version
	st.hash = hash
	s.resetWork()
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion reads the commit metadata persisted by the last commit.
func (s CommitStore) LoadLatestVersion() error {
	raw, closer, err := s.db.Get(metaKey)
	if err == pebble.ErrNotFound {
		s.state.version, s.state.hash = 0, nil
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer closer.Close()

	version, hash, err := decodeMeta(raw)
	if err != nil {
		return err
	}
	s.state.version, s.state.hash = version, hash
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.state.version,
		Hash:    s.state.hash,
	}, nil
}

// Close drops any uncommitted state and closes the database.
func (s CommitStore) Close() error {
	s.state.batch.Close()
	if err := s.db.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func encodeMeta(version int64, hash []byte) []byte {
	raw := make([]byte, 8+len(hash))
	binary.BigEndian.PutUint64(raw, uint64(version))
	copy(raw[8:], hash)
	return raw
}

func decodeMeta(raw []byte) (int64, []byte, error) {
	if len(raw) < 8 {
		return 0, nil, errors.Wrap(errors.ErrDatabase, "corrupted commit metadata")
	}
	hash := make([]byte, len(raw)-8)
	copy(hash, raw[8:])
	return int64(binary.BigEndian.Uint64(raw)), hash, nil
}

func dataKey(key []byte) []byte {
	k := make([]byte, 0, len(dataPrefix)+len(key))
	k = append(k, dataPrefix...)
	return append(k, key...)
}
