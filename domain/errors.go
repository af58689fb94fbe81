package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	ErrPropertyNotFound = NewError(ErrCodeNotFound, "property not found")
	ErrPlotNotFound     = NewError(ErrCodeNotFound, "plot not found")
	ErrVisitNotFound    = NewError(ErrCodeNotFound, "site visit not found")
	ErrProfileNotFound  = NewError(ErrCodeNotFound, "profile not found")
	ErrReceiptNotFound  = NewError(ErrCodeNotFound, "receipt not found")
	ErrContentNotFound  = NewError(ErrCodeNotFound, "content not found")
	ErrSessionNotFound  = NewError(ErrCodeNotFound, "session not found")

	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized")
	ErrAdminRequired    = NewError(ErrCodeForbidden, "access denied, admin privileges required")
	ErrInvalidPayload   = NewError(ErrCodeInvalid, "invalid payload")
	ErrExportInProgress = NewError(ErrCodeConflict, "receipt export already in progress")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
