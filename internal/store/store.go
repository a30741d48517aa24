package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Store is the data access layer. It is the only component that holds the
// database handle or opens a transaction; callers get models and classified
// errors, never connections.
type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

// New returns a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		validate: validator.New(),
	}
}

// withTx runs fn inside one scoped transaction: commit when fn returns nil,
// roll back when it returns an error or panics. The unit's error is never
// swallowed; it comes back classified onto the store taxonomy.
func (s *Store) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return classify(s.db.WithContext(ctx).Transaction(fn))
}

// checkPayload validates a payload before any statement executes.
func (s *Store) checkPayload(payload any) error {
	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
