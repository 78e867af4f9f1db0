package treasurytest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/treasury"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// treasury.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) treasury.Address {
	t.Helper()

	addr, err := treasury.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// RandomAddr returns a valid address that was generated from random data.
func RandomAddr(t testing.TB) treasury.Address {
	t.Helper()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot read random data: %s", err)
	}
	return treasury.NewAddress(raw)
}

// SequenceAddr returns an address deterministically derived from n.
func SequenceAddr(n uint64) treasury.Address {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, n)
	return treasury.NewAddress(raw)
}
