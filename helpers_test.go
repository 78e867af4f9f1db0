package treasury

import (
	"testing"

	"github.com/gogo/protobuf/proto"
)

// MustMarshal encodes given message or fails the test.
func MustMarshal(t testing.TB, msg proto.Message) []byte {
	t.Helper()
	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("cannot marshal %T: %s", msg, err)
	}
	return raw
}
