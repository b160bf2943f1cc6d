package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

const ErrCodeInternal = "INTERNAL_ERROR"

// ErrorCategory describes who can fix an error.
type ErrorCategory string

const (
	CategoryClientError ErrorCategory = "CLIENT_ERROR"
	CategoryVendor      ErrorCategory = "VENDOR"
	CategoryTransient   ErrorCategory = "TRANSIENT"
	CategoryInternal    ErrorCategory = "INTERNAL"
)

// CategorizeError determines the error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if vendorErr, ok := IsVendorError(err); ok {
		if vendorErr.StatusCode >= 500 {
			return CategoryTransient
		}
		return CategoryVendor
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeValidation, domain.ErrCodeUnauthenticated,
			domain.ErrCodeInvalidCredentials, domain.ErrCodeAccountExists,
			domain.ErrCodeProvisioning:
			return CategoryClientError
		case domain.ErrCodeVendorCall, domain.ErrCodeAuthorizationLink:
			return CategoryVendor
		}
	}

	return CategoryInternal
}

// ToHTTPStatus maps an error to the status the REST layer answers with.
func ToHTTPStatus(err error) int {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeUnauthenticated, domain.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.ErrCodeAccountExists:
		return http.StatusConflict
	case domain.ErrCodeProvisioning:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeVendorCall, domain.ErrCodeAuthorizationLink:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode returns the machine readable code for err.
func ToErrorCode(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrCodeInternal
}

// ToErrorMessage returns the client facing message. Internal errors are not
// echoed back.
func ToErrorMessage(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return "An internal error occurred"
}
