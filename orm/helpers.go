package orm

import (
	"encoding/binary"

	"github.com/iov-one/treasury/errors"
)

// ValidateSequence returns an error if this is not an 8-byte
// sequence as returned by SequenceKey
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}

// SequenceKey encodes a numeric identifier as an 8 byte big endian key, so
// that the key order matches the numeric order.
func SequenceKey(n uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, n)
	return k
}

// ParseSequence decodes a key created by SequenceKey.
func ParseSequence(key []byte) (uint64, error) {
	if err := ValidateSequence(key); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(key), nil
}
