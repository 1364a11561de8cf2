package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSource     = errors.New("publicdata: unknown source")
	ErrResponseTooLarge  = errors.New("publicdata: response too large")
	ErrMalformedResponse = errors.New("publicdata: malformed response")
	ErrFieldTypeMismatch = errors.New("publicdata: field type mismatch")
	ErrTransport         = errors.New("publicdata: transport failure")
)

// FieldTypeMismatchError names the field whose value could not be coerced.
type FieldTypeMismatchError struct {
	Field string
	Value string
	Want  string
}

func (e *FieldTypeMismatchError) Error() string {
	return fmt.Sprintf("%v: field %q: cannot use %s as %s", ErrFieldTypeMismatch, e.Field, e.Value, e.Want)
}

func (e *FieldTypeMismatchError) Is(target error) bool { return target == ErrFieldTypeMismatch }

// StatusError is a non-2xx upstream reply. It counts as a transport failure.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: bad status %d", ErrTransport, e.Code)
	}
	return fmt.Sprintf("%v: bad status %d: %s", ErrTransport, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrTransport }
