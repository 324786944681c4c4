package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Handlers map them to HTTP statuses with errors.Is;
// anything that matches none of them is treated as a store failure.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNotFound        = errors.New("not found")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// InvalidArgument returns an ErrInvalidArgument with a caller-facing message.
func InvalidArgument(msg string) error {
	return &kindError{kind: ErrInvalidArgument, msg: msg}
}

// InvalidArgumentf is InvalidArgument with formatting.
func InvalidArgumentf(format string, args ...any) error {
	return &kindError{kind: ErrInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// DuplicateKey returns an ErrDuplicateKey with a caller-facing message.
func DuplicateKey(msg string) error {
	return &kindError{kind: ErrDuplicateKey, msg: msg}
}

// NotFound returns an ErrNotFound with a caller-facing message.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}
