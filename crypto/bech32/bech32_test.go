package bech32

import (
	"bytes"
	"testing"

	"github.com/iov-one/treasury/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("treasury-wallet-0001")

	raw, err := Encode("tres", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	hrp, got, err := Decode(string(raw))
	if err != nil {
		t.Fatalf("cannot decode %q: %s", raw, err)
	}
	if hrp != "tres" {
		t.Fatalf("unexpected human readable part: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Logf("want %d", payload)
		t.Logf("got  %d", got)
		t.Fatal("invalid decode")
	}
}

func TestDecodeInvalidChecksum(t *testing.T) {
	raw, err := Encode("tres", []byte("treasury"))
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	// Flip the last checksum character.
	broken := raw[:len(raw)-1]
	if raw[len(raw)-1] == 'q' {
		broken = append(broken, 'p')
	} else {
		broken = append(broken, 'q')
	}
	if _, _, err := Decode(string(broken)); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}
