package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound means the referenced user id has no account. Balance
	// and history are undefined for unknown users, never zero or empty.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidAmount means the caller supplied a negative or non-finite
	// amount. Callers always submit non-negative values; the expense sign
	// flip happens inside the service.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDescription means the description is empty.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrConflict is returned by a UserStore when an insert hits the
	// uniqueness constraint on the user id. The directory resolves it by
	// re-fetching; it never reaches API callers.
	ErrConflict = errors.New("already exists")
)

// StorageError wraps a persistence failure. It is propagated unchanged so
// the gateway can answer 500 and the client can decide to resubmit.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// WrapStorage tags err as a storage failure, preserving the original error
// for errors.Is/As. A nil err stays nil.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err is (or wraps) a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
