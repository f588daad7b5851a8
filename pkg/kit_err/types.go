// pkg/kit_err/types.go

package kit_err

import "errors"

// UserError marks an error as expected and recoverable by the user.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	if errors.As(err, &e) {
		return true
	}
	var c *ClassifiedError
	return errors.As(err, &c) && (c.Category == CategoryValidation || c.Category == CategoryUser)
}
