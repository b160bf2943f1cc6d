package domain

import (
	"errors"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// TransferCurrency is the only currency the payment network moves.
const TransferCurrency = "USD"

// ResourceLocator is the opaque URI a vendor returns for a created entity.
type ResourceLocator string

func (l ResourceLocator) String() string {
	return string(l)
}

func (l ResourceLocator) IsZero() bool {
	return strings.TrimSpace(string(l)) == ""
}

var resourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ID returns the last path segment of the locator. Query and fragment are
// ignored. It is empty when the locator has no usable segment.
func (l ResourceLocator) ID() string {
	u, err := url.Parse(strings.TrimSpace(string(l)))
	if err != nil {
		return ""
	}
	id := path.Base(u.Path)
	if !resourceIDPattern.MatchString(id) {
		return ""
	}
	return id
}

// Link is a single HAL link.
type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// AuthorizationLink is a one-time grant to attach a funding source. It is
// consumed by exactly one funding source registration.
type AuthorizationLink struct {
	Links      map[string]Link
	BodyText   string
	ButtonText string
}

// Self returns the href identifying the authorization itself.
func (a *AuthorizationLink) Self() string {
	if a == nil {
		return ""
	}
	return a.Links["self"].Href
}

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, NewValidationError("amount", "amount must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, NewValidationError("amount", "amount must have at most 2 decimal places")
	}
	if currency == "" {
		return Money{}, NewValidationError("currency", "currency is required")
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Value renders the amount the way the payment network expects it. NewMoney
// guarantees no more than two decimal places, so nothing is rounded.
func (m Money) Value() string {
	return m.Amount.StringFixed(2)
}

// TransferRequest is built fresh per transfer and never persisted.
type TransferRequest struct {
	Source      ResourceLocator
	Destination ResourceLocator
	Amount      Money
}

func NewTransferRequest(source, destination ResourceLocator, amount decimal.Decimal) (TransferRequest, error) {
	if source.IsZero() {
		return TransferRequest{}, NewValidationError("source", "source funding source is required")
	}
	if destination.IsZero() {
		return TransferRequest{}, NewValidationError("destination", "destination funding source is required")
	}
	if source == destination {
		return TransferRequest{}, NewValidationError("destination", "source and destination must differ")
	}

	money, err := NewMoney(amount, TransferCurrency)
	if err != nil {
		return TransferRequest{}, err
	}

	return TransferRequest{
		Source:      source,
		Destination: destination,
		Amount:      money,
	}, nil
}

// FundingSourceRequest registers a linked bank account with a customer.
type FundingSourceRequest struct {
	Customer       ResourceLocator
	BankName       string
	ProcessorToken string
	Authorization  *AuthorizationLink
}

var ErrMissingAuthorization = errors.New("on-demand authorization has no self link")

func (r FundingSourceRequest) Validate() error {
	if r.Customer.IsZero() {
		return NewValidationError("customer", "customer locator is required")
	}
	if r.Customer.ID() == "" {
		return NewValidationError("customer", "customer locator does not name a customer")
	}
	if strings.TrimSpace(r.BankName) == "" {
		return NewValidationError("bankName", "bank name is required")
	}
	if r.ProcessorToken == "" {
		return NewValidationError("processorToken", "processor token is required")
	}
	return nil
}

// Authorized reports whether the request carries a usable authorization.
func (r FundingSourceRequest) Authorized() bool {
	return r.Authorization.Self() != ""
}
