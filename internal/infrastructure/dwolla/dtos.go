package dwolla

import (
	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

type CustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Type        string `json:"type,omitempty"`
	Address1    string `json:"address1,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	SSN         string `json:"ssn,omitempty"`
}

type FundingSourceRequest struct {
	Name       string                 `json:"name"`
	PlaidToken string                 `json:"plaidToken"`
	Links      map[string]domain.Link `json:"_links,omitempty"`
}

type OnDemandAuthorizationResponse struct {
	Links      map[string]domain.Link `json:"_links"`
	BodyText   string                 `json:"bodyText"`
	ButtonText string                 `json:"buttonText"`
}

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type TransferRequest struct {
	Links  map[string]domain.Link `json:"_links"`
	Amount Amount                 `json:"amount"`
}

type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Embedded struct {
		Errors []application.FieldError `json:"errors"`
	} `json:"_embedded"`
}

// empty stands in for endpoints that answer with headers only.
type empty struct{}

func toCustomerRequest(rec domain.NewCustomerRecord) CustomerRequest {
	return CustomerRequest{
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       rec.Email,
		Type:        string(rec.Type),
		Address1:    rec.Address1,
		City:        rec.City,
		State:       rec.State,
		PostalCode:  rec.PostalCode,
		DateOfBirth: rec.DateOfBirth,
		SSN:         rec.SSN,
	}
}

func toFundingSourceRequest(req domain.FundingSourceRequest) FundingSourceRequest {
	return FundingSourceRequest{
		Name:       req.BankName,
		PlaidToken: req.ProcessorToken,
		Links: map[string]domain.Link{
			"on-demand-authorization": {Href: req.Authorization.Self()},
		},
	}
}

func toTransferRequest(req domain.TransferRequest) TransferRequest {
	return TransferRequest{
		Links: map[string]domain.Link{
			"source":      {Href: req.Source.String()},
			"destination": {Href: req.Destination.String()},
		},
		Amount: Amount{
			Currency: req.Amount.Currency,
			Value:    req.Amount.Value(),
		},
	}
}
