package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateID rejects adding a shift whose id is already stored.
var ErrDuplicateID = errors.New("shift id already exists")

// ValidationError rejects a shift before it reaches the repository.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shift %q not found", e.ID)
}

// StorageCorruptError means a stored record could not be decoded.
type StorageCorruptError struct {
	Key string
	Err error
}

func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("record %q is corrupt: %v", e.Key, e.Err)
}

func (e *StorageCorruptError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
