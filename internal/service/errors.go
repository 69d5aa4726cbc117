package service

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrTabNotFound      = errors.New("tab not found")
	ErrTabItemNotFound  = errors.New("tab item not found")
	ErrServiceNotFound  = errors.New("service not found")
)

// ValidationError reports input the caller has to correct before retrying.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a slug already taken by another group of the same kind.
type ConflictError struct {
	Kind Kind
	Slug string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with slug %q already exists", e.Kind, e.Slug)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict reports whether err carries a *ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
