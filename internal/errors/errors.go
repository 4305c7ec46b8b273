package gerr

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("resource not found")
	ErrValidation      = errors.New("validation failed")
	ErrTooLarge        = errors.New("payload too large")

	WaitlistNotFound = fmt.Errorf("waitlist %w", ErrNotFound)
	AccountNotFound  = fmt.Errorf("account %w", ErrNotFound)

	// ErrAlreadyJoined is returned by the store when the (waitlist, email) pair is taken.
	ErrAlreadyJoined = errors.New("email already on the waitlist")

	MailApiLimitReached = errors.New("mail api limit reached")
)

// Validation wraps a user-facing validation message so that errors.Is(err, ErrValidation) holds.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

// TooLarge wraps a user-facing size message so that errors.Is(err, ErrTooLarge) holds.
func TooLarge(msg string) error {
	return &tooLargeError{msg: msg}
}

type tooLargeError struct {
	msg string
}

func (e *tooLargeError) Error() string { return e.msg }

func (e *tooLargeError) Unwrap() error { return ErrTooLarge }
