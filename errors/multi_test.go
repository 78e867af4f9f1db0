package errors

import "testing"

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
	if err := Append(nil, ErrEmpty); err != ErrEmpty {
		t.Fatalf("single error must be returned unchanged, got %+v", err)
	}

	err := Append(ErrEmpty, Append(ErrModel, ErrInput))
	m, ok := err.(*multiErr)
	if !ok {
		t.Fatalf("want a multi error, got %T", err)
	}
	if n := len(m.Unpack()); n != 3 {
		t.Fatalf("nested multi errors must be flattened, got %d errors", n)
	}
	if code := Code(err); code != ErrEmpty.Code() {
		t.Fatalf("want the first error code, got %d", code)
	}
}
