package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field name and a description to err. It returns nil
// for a nil err.
//
// Field names follow the Go name of the model attribute, for example
// TierTable or Authority. Nested fields use dot notation and list elements
// their index, for example TierTable.2.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	// The stack trace is recorded once, at the innermost wrap.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField adds the error of the field, if any, to errs.
func AppendField(errs error, fieldName string, fieldErr error) error {
	return Append(errs, Field(fieldName, fieldErr, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error { return e.parent }

func (e *fieldError) Field() string { return e.field }

type fielder interface {
	Field() string
}

// FieldErrors returns all errors declared for the field. The search stops
// at the outermost match of each branch, so a field error wrapping another
// error of the same field is returned once.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(found, err)
		}
		// Unpack returns every child, so the cause is already covered.
		if u, ok := err.(unpacker); ok {
			for _, child := range u.Unpack() {
				found = append(found, FieldErrors(child, fieldName)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
