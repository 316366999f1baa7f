package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the presented bearer token does not match.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when no document matches a key or a query.
	ErrNotFound = errors.New("not found")
	// ErrDecode is returned when an image record lacks a usable type or payload.
	ErrDecode = errors.New("can not decode image data")
)

// InternalError wraps a database or decoding fault that callers cannot act on.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func internal(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
