package pebble

import (
	"github.com/cockroachdb/pebble"

	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
)

// reader exposes the committed content of the database.
type reader struct {
	db *pebble.DB
}

var _ store.ReadOnlyKVStore = reader{}

func (r reader) Get(key []byte) ([]byte, error) {
	value, closer, err := r.db.Get(dataKey(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer closer.Close()

	// The value is invalid after closer.Close()
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (r reader) Has(key []byte) (bool, error) {
	v, err := r.Get(key)
	return v != nil, err
}

func (r reader) Iterator(start, end []byte) (store.Iterator, error) {
	return r.collect(start, end, true)
}

func (r reader) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return r.collect(start, end, false)
}

func (r reader) collect(start, end []byte, ascending bool) (store.Iterator, error) {
	opts := &pebble.IterOptions{
		LowerBound: dataPrefix,
		UpperBound: dataEnd,
	}
	if start != nil {
		opts.LowerBound = dataKey(start)
	}
	if end != nil {
		opts.UpperBound = dataKey(end)
	}
	iter, err := r.db.NewIter(opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer iter.Close()

	var res []store.Model
	add := func() error {
		value, err := iter.ValueAndErr()
		if err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
		k := iter.Key()[len(dataPrefix):]
		m := store.Model{
			Key:   append([]byte(nil), k...),
			Value: append([]byte(nil), value...),
		}
		res = append(res, m)
		return nil
	}

	if ascending {
		for iter.First(); iter.Valid(); iter.Next() {
			if err := add(); err != nil {
				return nil, err
			}
		}
	} else {
		for iter.Last(); iter.Valid(); iter.Prev() {
			if err := add(); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.NewSliceIterator(res), nil
}

// batchWriter collects writes in a pebble batch. Write is a no-op, the batch
// is only committed by CommitStore.Commit.
type batchWriter struct {
	b *pebble.Batch
}

var _ store.Batch = batchWriter{}

func (w batchWriter) Set(key, value []byte) error {
	if err := w.b.Set(dataKey(key), value, nil); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (w batchWriter) Delete(key []byte) error {
	if err := w.b.Delete(dataKey(key), nil); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (w batchWriter) Write() error {
	return nil
}
