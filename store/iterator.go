package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/treasury/errors"
)

// ascendBtree returns all cached items within [start, end) in ascending
// order. A nil bound means no limit.
func ascendBtree(bt *btree.BTree, start, end []byte) []entry {
	var res []entry
	collect := func(item btree.Item) bool {
		res = append(res, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		bt.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	return res
}

// descendBtree returns all cached items within [start, end) in descending
// order.
func descendBtree(bt *btree.BTree, start, end []byte) []entry {
	items := ascendBtree(bt, start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// mergeIterator combines cached writes with the iterator of the store that
// is being wrapped. Cached deletes hide parent entries and cached sets
// override them.
type mergeIterator struct {
	cache []entry
	idx   int

	parent  Iterator
	pKey    []byte
	pVal    []byte
	pLoaded bool
	pDone   bool

	ascending bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(cache []entry, parent Iterator, ascending bool) *mergeIterator {
	return &mergeIterator{
		cache:     cache,
		parent:    parent,
		ascending: ascending,
	}
}

func (m *mergeIterator) loadParent() error {
	if m.pLoaded || m.pDone {
		return nil
	}
	k, v, err := m.parent.Next()
	switch {
	case err == nil:
		m.pKey, m.pVal, m.pLoaded = k, v, true
	case errors.ErrIteratorDone.Is(err):
		m.pDone = true
	default:
		return err
	}
	return nil
}

// Next returns the next key/value pair or ErrIteratorDone.
func (m *mergeIterator) Next() ([]byte, []byte, error) {
	for {
		if err := m.loadParent(); err != nil {
			return nil, nil, err
		}

		hasCache := m.idx < len(m.cache)
		if !hasCache && m.pDone {
			return nil, nil, errors.ErrIteratorDone
		}

		if !hasCache {
			m.pLoaded = false
			return m.pKey, m.pVal, nil
		}

		item := m.cache[m.idx]
		if !m.pDone {
			cmp := bytes.Compare(item.key, m.pKey)
			if !m.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				m.pLoaded = false
				return m.pKey, m.pVal, nil
			}
			if cmp == 0 {
				// Cached value overrides the parent entry.
				m.pLoaded = false
			}
		}

		m.idx++
		if !item.deleted {
			return item.key, item.value, nil
		}
		// Deleted entries are skipped.
	}
}

// Release releases the Iterator.
func (m *mergeIterator) Release() {
	m.cache = nil
	m.parent.Release()
}

// sliceIterator iterates over a static list of models.
type sliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}

// Model is a key/value pair.
type Model struct {
	Key   []byte
	Value []byte
}
