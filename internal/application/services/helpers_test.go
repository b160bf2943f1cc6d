package services_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authLink() *domain.AuthorizationLink {
	return &domain.AuthorizationLink{
		Links: map[string]domain.Link{
			"self": {Href: "https://api-sandbox.dwolla.com/on-demand-authorizations/30e7c028-0bdf-e511-80de-0aa34a9b2388"},
		},
		BodyText:   "I agree that future payments to Company ABC inc. will be processed by the Dwolla payment system.",
		ButtonText: "Agree & Continue",
	}
}

func unauthorized(vendor string) *application.VendorError {
	return &application.VendorError{
		Vendor:     vendor,
		StatusCode: http.StatusUnauthorized,
		Code:       "general_unauthorized",
		Message:    "User (role: guests) missing scope (account)",
	}
}
