package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors classifying every failure the store surfaces. Callers
// branch with errors.Is; the original cause stays wrapped underneath.
var (
	// ErrNotFound reports that the target of a read, update, or delete does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation reports a broken uniqueness or foreign-key
	// constraint: a duplicate association pair, a duplicated unique name, or
	// a reference to a missing row.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrValidation reports a malformed payload, rejected before any
	// statement runs.
	ErrValidation = errors.New("invalid payload")

	// ErrTransactionFailure reports an unexpected failure inside a
	// transaction; every write of that transaction was rolled back.
	ErrTransactionFailure = errors.New("transaction failed")
)

// classify maps GORM and driver errors onto the store taxonomy. Errors that
// already carry a sentinel pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{ErrNotFound, ErrConstraintViolation, ErrValidation, ErrTransactionFailure} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", ErrTransactionFailure, err)
	}
}
