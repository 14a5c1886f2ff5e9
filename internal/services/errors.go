package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "does not exist" and "exists but is owned by
// someone else". The two are deliberately indistinguishable so that a
// request can never confirm another user's resource exists.
var ErrNotFound = errors.New("not found")

// ErrValidation marks malformed or rejected input. Wrap it with detail:
// fmt.Errorf("%w: priority must be LOW, MEDIUM or HIGH", ErrValidation).
var ErrValidation = errors.New("validation failed")

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}
