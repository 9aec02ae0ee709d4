package valueobject

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound a field or key is not present in the value object
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidDate day, month and year do not form a calendar date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTimestamp timestamp is not an integer number of seconds
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

type Code int

const (
	MissingField     Code = 1
	InvalidDate      Code = 2
	InvalidTimestamp Code = 3
)

type Error struct {
	Code  Code
	Field string
	Value string
	err   error
}

func (e *Error) Error() string {
	switch e.Code {
	case MissingField:
		return fmt.Sprintf("valueobject: field (%s) does not exist", e.Field)
	case InvalidDate:
		return fmt.Sprintf("valueobject: invalid date error, value(%s), %v", e.Value, e.err)
	case InvalidTimestamp:
		if e.err == nil {
			return fmt.Sprintf("valueobject: invalid timestamp error, value(%s)", e.Value)
		}
		return fmt.Sprintf("valueobject: invalid timestamp error, value(%s), %v", e.Value, e.err)
	default:
		return ""
	}
}

func (e *Error) Unwrap() []error {
	var sentinel error
	switch e.Code {
	case MissingField:
		sentinel = ErrFieldNotFound
	case InvalidDate:
		sentinel = ErrInvalidDate
	case InvalidTimestamp:
		sentinel = ErrInvalidTimestamp
	}
	errs := make([]error, 0, 2)
	if sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.err != nil {
		errs = append(errs, e.err)
	}
	return errs
}

func newMissingFieldError(field string) error {
	return &Error{Code: MissingField, Field: field}
}

func newInvalidDateError(value string, err error) error {
	return &Error{Code: InvalidDate, Value: value, err: err}
}

func newInvalidTimestampError(value string, err error) error {
	return &Error{Code: InvalidTimestamp, Value: value, err: err}
}
