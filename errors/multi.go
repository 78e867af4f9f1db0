package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no non-nil errors are provided, nil is returned.
// If only one non-nil error is provided, it is returned unchanged.
// Nested multi errors are flattened.
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			flat = append(flat, m.errs...)
			continue
		}
		flat = append(flat, e)
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiErr{errs: flat}
	}
}

// multiErr represents a group of errors. The first error decides about the
// code.
type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	points := make([]string, len(m.errs))
	for i, err := range m.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m.errs), strings.Join(points, "\n\t"))
}

// Unpack returns all errors grouped by this instance.
func (m *multiErr) Unpack() []error {
	return m.errs
}

// Code returns the code of the first error, consistent with fail-fast
// approach.
func (m *multiErr) Code() uint32 {
	return Code(m.errs[0])
}

// unpacker is implemented by errors that group other errors.
type unpacker interface {
	Unpack() []error
}

var (
	_ coder    = (*multiErr)(nil)
	_ unpacker = (*multiErr)(nil)
)
