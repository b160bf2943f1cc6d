package domain

import (
	"regexp"
	"strings"
)

// CustomerType is the kind of customer registered with the payment network.
type CustomerType string

const (
	CustomerTypePersonal   CustomerType = "personal"
	CustomerTypeUnverified CustomerType = "unverified"
)

// NewCustomerRecord holds the identity fields submitted once per sign-up.
// It is not retained locally; ownership moves to the payment network.
type NewCustomerRecord struct {
	FirstName   string
	LastName    string
	Email       string
	Type        CustomerType
	Address1    string
	City        string
	State       string
	PostalCode  string
	DateOfBirth string
	SSN         string
}

var (
	ssnPattern        = regexp.MustCompile(`^\d{9}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}(\d{4})?$`)
	postalSeparators  = regexp.MustCompile(`[\s-]`)
)

// NormalizeSSN strips hyphens and requires exactly nine digits.
func NormalizeSSN(ssn string) (string, error) {
	clean := strings.ReplaceAll(ssn, "-", "")
	if !ssnPattern.MatchString(clean) {
		return "", NewValidationError("ssn", "SSN must be 9 digits")
	}
	return clean, nil
}

// NormalizePostalCode strips whitespace and hyphens and requires a 5 or 9
// digit ZIP code.
func NormalizePostalCode(postalCode string) (string, error) {
	clean := postalSeparators.ReplaceAllString(postalCode, "")
	if !postalCodePattern.MatchString(clean) {
		return "", NewValidationError("postalCode", "Postal code must be 5 digits or 9 digits")
	}
	return clean, nil
}

// NormalizeCustomerRecord returns a corrected copy of rec. Empty SSN and
// postal code are optional and left as-is.
func NormalizeCustomerRecord(rec NewCustomerRecord) (NewCustomerRecord, error) {
	out := rec

	if rec.SSN != "" {
		ssn, err := NormalizeSSN(rec.SSN)
		if err != nil {
			return NewCustomerRecord{}, err
		}
		out.SSN = ssn
	}

	if rec.PostalCode != "" {
		postalCode, err := NormalizePostalCode(rec.PostalCode)
		if err != nil {
			return NewCustomerRecord{}, err
		}
		out.PostalCode = postalCode
	}

	if out.Type == "" {
		out.Type = CustomerTypePersonal
	}

	return out, nil
}
