// Package assert provides small test helpers used across the treasury
// packages. Failures always stop the test.
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/treasury/errors"
)

// Tester is the part of testing.TB used by the helpers.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Typed nil pointers, maps,
// slices and functions are nil too.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	// %+v prints the stack trace of errors that carry one.
	t.Fatalf("want nil, got %+v", value)
}

// Equal fails the test unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("want panic")
		}
	}()
	fn()
}

// IsErr fails the test unless got is want or wraps it.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// HasCode fails the test unless err resolves to the code. Zero expects a
// nil error.
func HasCode(t Tester, want uint32, err error) {
	t.Helper()
	if got := errors.Code(err); got != want {
		t.Fatalf("want code %d, got %d: %+v", want, got, err)
	}
}

// FieldError fails the test unless err holds exactly one error for the
// field and that error is of the wanted kind. A nil want expects no error
// for the field.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, fieldName)
	for i, e := range errs {
		t.Logf("field %s error %d: %q", fieldName, i+1, e)
	}
	switch {
	case want == nil && len(errs) != 0:
		t.Fatalf("want no %s error, got %d", fieldName, len(errs))
	case want == nil:
	case len(errs) == 0:
		t.Fatalf("no %s error found", fieldName)
	case len(errs) > 1:
		t.Fatalf("want one %s error, got %d", fieldName, len(errs))
	case !want.Is(errs[0]):
		t.Fatalf("want %s error %q, got %q", fieldName, want, errs[0])
	}
}
