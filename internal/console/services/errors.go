package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrNoSession          = errors.New("not logged in")

	// ErrInvalidID means a caller-supplied record id was non-positive or
	// non-numeric. Rejected before any lookup is attempted.
	ErrInvalidID = errors.New("invalid record id")
)

// FieldError is one failed form-field check.
type FieldError struct {
	Field string
	Msg   string
}

// ValidationErrors collects all failed checks for a submitted form.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
