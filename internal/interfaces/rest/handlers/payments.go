package handlers

import (
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application/services"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Type        string `json:"type" validate:"omitempty,oneof=personal unverified"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	DateOfBirth string `json:"dateOfBirth"`
	SSN         string `json:"ssn"`
}

type AddFundingSourceRequest struct {
	CustomerURL    string `json:"customerUrl" validate:"required,url"`
	BankName       string `json:"bankName" validate:"required"`
	ProcessorToken string `json:"processorToken" validate:"required"`
}

type CreateTransferRequest struct {
	SourceFundingSourceURL      string `json:"sourceFundingSourceUrl" validate:"required,url"`
	DestinationFundingSourceURL string `json:"destinationFundingSourceUrl" validate:"required,url"`
	Amount                      string `json:"amount" validate:"required"`
}

type LocationResponse struct {
	Location domain.ResourceLocator `json:"location"`
}

func (h *Handlers) HandleCreateCustomer(w http.ResponseWriter, r *http.Request, _ *domain.UserProfile) {
	var req CreateCustomerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	locator, err := h.customers.CreateCustomer(r.Context(), domain.NewCustomerRecord{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Type:        domain.CustomerType(req.Type),
		Address1:    req.Address1,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		DateOfBirth: req.DateOfBirth,
		SSN:         req.SSN,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, LocationResponse{Location: locator})
}

func (h *Handlers) HandleAddFundingSource(w http.ResponseWriter, r *http.Request, _ *domain.UserProfile) {
	var req AddFundingSourceRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	locator, err := h.funding.AddFundingSource(r.Context(), services.AddFundingSourceCommand{
		CustomerLocator: domain.ResourceLocator(req.CustomerURL),
		BankName:        req.BankName,
		ProcessorToken:  req.ProcessorToken,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, LocationResponse{Location: locator})
}

func (h *Handlers) HandleCreateTransfer(w http.ResponseWriter, r *http.Request, _ *domain.UserProfile) {
	var req CreateTransferRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		rest.WriteError(w, domain.NewValidationError("amount", "amount must be a decimal number"))
		return
	}
	if _, err := domain.NewMoney(amount, domain.TransferCurrency); err != nil {
		rest.WriteError(w, err)
		return
	}

	locator, err := h.transfers.CreateTransfer(r.Context(), services.TransferCommand{
		Source:      domain.ResourceLocator(req.SourceFundingSourceURL),
		Destination: domain.ResourceLocator(req.DestinationFundingSourceURL),
		Amount:      amount,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, LocationResponse{Location: locator})
}
