package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest/assert"
)

type Model = store.Model
type Op = store.Op

func makeCommitStore(t testing.TB) (CommitStore, func()) {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	commit, err := NewCommitStore(tmpDir, "base")
	assert.Nil(t, err)
	cleanup := func() {
		commit.Close()
		os.RemoveAll(tmpDir)
	}
	return commit, cleanup
}

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// TestCacheGetSet does basic sanity checks on our cache
func TestCacheGetSet(t *testing.T) {
	commit, cleanup := makeCommitStore(t)
	defer cleanup()
	base := commit.Adapter()

	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	assertGetHas(t, base, k2, v2, true)

	c2 := base.CacheWrap()
	assert.Nil(t, c2.Delete(k))
	c2.Discard()
	assertGetHas(t, base, k, v, true)
}

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next adapter
func TestCommitOverwrite(t *testing.T) {
	commit, cleanup := makeCommitStore(t)
	defer cleanup()
	commit = commit.WithHistory(1)

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)
	if len(id.Hash) != 0 {
		t.Fatal("hash is not empty")
	}

	k1, k2, k3 := []byte("alpha"), []byte("beta"), []byte("gamma")

	parent := commit.CacheWrap()
	for _, op := range []Op{store.SetOp(k1, []byte("1")), store.SetOp(k2, []byte("2"))} {
		assert.Nil(t, op.Apply(parent))
	}
	assert.Nil(t, parent.Write())

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("hash is empty")
	}

	child := commit.CacheWrap()
	for _, op := range []Op{store.SetOp(k1, []byte("11")), store.SetOp(k3, []byte("3")), store.DelOp(k2)} {
		assert.Nil(t, op.Apply(child))
	}
	side := commit.CacheWrap()

	assertGetHas(t, side, k1, []byte("1"), true)
	assertGetHas(t, side, k2, []byte("2"), true)
	assertGetHas(t, side, k3, nil, false)
	assertGetHas(t, child, k1, []byte("11"), true)
	assertGetHas(t, child, k2, nil, false)

	assert.Nil(t, child.Write())

	// committed state only changes on Commit
	got, err := commit.Get(k1)
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), got)

	id2, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), id2.Version)
	got, err = commit.Get(k1)
	assert.Nil(t, err)
	assert.Equal(t, []byte("11"), got)
	got, err = commit.Get(k2)
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestIterateCommitted(t *testing.T) {
	commit := MemCommitStore()
	defer commit.Close()

	cache := commit.CacheWrap()
	for _, k := range []string{"d", "a", "c", "b"} {
		assert.Nil(t, cache.Set([]byte(k), []byte(k+k)))
	}
	assert.Nil(t, cache.Write())
	_, err := commit.Commit()
	assert.Nil(t, err)

	adapter := commit.Adapter()
	cases := map[string]struct {
		reverse    bool
		start, end []byte
		want       []string
	}{
		"ascending":          {want: []string{"a", "b", "c", "d"}},
		"ascending bounded":  {start: []byte("b"), end: []byte("d"), want: []string{"b", "c"}},
		"descending":         {reverse: true, want: []string{"d", "c", "b", "a"}},
		"descending bounded": {reverse: true, start: []byte("a"), end: []byte("c"), want: []string{"b", "a"}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  store.Iterator
				err error
			)
			if tc.reverse {
				it, err = adapter.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = adapter.Iterator(tc.start, tc.end)
			}
			assert.Nil(t, err)
			defer it.Release()

			var keys []string
			for {
				k, v, err := it.Next()
				if errors.ErrIteratorDone.Is(err) {
					break
				}
				assert.Nil(t, err)
				assert.Equal(t, string(k)+string(k), string(v))
				keys = append(keys, string(k))
			}
			assert.Equal(t, tc.want, keys)
		})
	}
}

func TestLoadLatestVersion(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-reload-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	commit, err := NewCommitStore(tmpDir, "state")
	assert.Nil(t, err)
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("key"), []byte("value")))
	assert.Nil(t, cache.Write())
	first, err := commit.Commit()
	assert.Nil(t, err)
	assert.Nil(t, commit.Close())

	reopened, err := NewCommitStore(tmpDir, "state")
	assert.Nil(t, err)
	defer reopened.Close()
	assert.Nil(t, reopened.LoadLatestVersion())
	latest, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, first, latest)

	got, err := reopened.Get([]byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), got)
}
