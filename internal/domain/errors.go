package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeProvisioning       = "PROVISIONING_ERROR"
	ErrCodeVendorCall         = "VENDOR_CALL_FAILURE"
	ErrCodeAuthorizationLink  = "AUTHORIZATION_FAILED"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeAccountExists      = "ACCOUNT_EXISTS"
)

func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

func NewProvisioningError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeProvisioning,
		Message: message,
		Err:     err,
	}
}

// NewVendorCallFailure wraps a vendor fault. The original error stays
// reachable through errors.As.
func NewVendorCallFailure(vendor, operation string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeVendorCall,
		Message: fmt.Sprintf("%s %s failed", vendor, operation),
		Err:     err,
	}
}

func NewAuthorizationFailedError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeAuthorizationLink,
		Message: "could not obtain on-demand transfer authorization",
		Err:     err,
	}
}

func NewUnauthenticatedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthenticated,
		Message: "no active session",
	}
}

func NewInvalidCredentialsError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCredentials,
		Message: "invalid email or password",
		Err:     err,
	}
}

func NewAccountExistsError(email string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountExists,
		Message: fmt.Sprintf("an account with email %s already exists", email),
	}
}

// IsErrorCode reports whether err carries a DomainError with the given code.
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
