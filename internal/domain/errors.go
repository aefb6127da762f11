package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound = "item not found"
	ErrMsgInvalidInput = "invalid input"
	ErrMsgEmptyUpdate  = "no fields to update"
	ErrMsgDatabase     = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound is returned when no row matches an id-keyed operation.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrInvalidInput covers malformed or missing client input.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrEmptyUpdate is returned when an update carries no assignable fields.
	ErrEmptyUpdate = errors.New(ErrMsgEmptyUpdate)

	// ErrDatabase tags failures raised by the store (connectivity, constraints, bad SQL).
	ErrDatabase = errors.New(ErrMsgDatabase)
)

// DatabaseError keeps the driver error reachable while matching ErrDatabase.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDatabase) succeed for any DatabaseError.
func (e *DatabaseError) Is(target error) bool {
	return target == ErrDatabase
}

// NewDatabaseError wraps err with the failing operation. A nil err stays nil.
func NewDatabaseError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Op: op, Err: err}
}
