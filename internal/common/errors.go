// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rule store errors.
	ErrStorageUnavailable  = errors.New("rule storage unavailable")
	ErrDuplicateCategory   = errors.New("duplicate category")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrMalformedKeyword    = errors.New("malformed keyword")

	// Audit log errors.
	ErrLogWriteFailed = errors.New("audit log write failed")

	// Classification errors.
	ErrNoFeedback           = errors.New("no feedback to classify")
	ErrClassificationFailed = errors.New("classification failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
