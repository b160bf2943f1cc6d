package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is one entry of a vendor's structured validation payload.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// VendorError is a non-2xx answer from one of the external vendors.
type VendorError struct {
	Vendor     string
	StatusCode int
	Code       string
	Message    string
	Fields     []FieldError
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s error [%s]: %s (status: %d)", e.Vendor, e.Code, e.Message, e.StatusCode)
}

// IsValidation reports whether the vendor rejected the payload field by field.
func (e *VendorError) IsValidation() bool {
	return len(e.Fields) > 0
}

// FieldMessages joins the field errors as "path: message, path: message".
func (e *VendorError) FieldMessages() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return strings.Join(parts, ", ")
}

func (e *VendorError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *VendorError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

func IsVendorError(err error) (*VendorError, bool) {
	var vendorErr *VendorError
	ok := errors.As(err, &vendorErr)
	return vendorErr, ok
}
