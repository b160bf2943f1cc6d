// Package server wires the vendor clients, services and HTTP surface into
// one handler.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/api"
	"github.com/DanielPopoola/horizon-banking/internal/application/services"
	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/appwrite"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/dwolla"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/observability"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/plaid"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest/middleware"
)

// NewHandler builds every dependency once and returns the middleware-wrapped
// router. Vendor clients are shared by all requests. OpenAPI validation is
// installed per route so session-bound routes check the session first.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	paymentNetwork, err := dwolla.NewClient(cfg.Dwolla)
	if err != nil {
		return nil, err
	}
	identity := appwrite.NewClient(cfg.Appwrite)
	bankData := plaid.NewClient(cfg.Plaid)

	fundingService := services.NewFundingService(paymentNetwork, logger)

	h := handlers.NewHandlers(
		services.NewSessionService(identity, logger),
		services.NewCustomerService(paymentNetwork, logger),
		fundingService,
		services.NewTransferService(paymentNetwork, logger),
		services.NewBankService(bankData, fundingService, logger),
		logger,
	)

	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	validateRequests, err := middleware.OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	h.UseRequestValidator(validateRequests)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.Handler())

	handler := middleware.Timeout(cfg.Server.RequestTimeout)(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	return handler, nil
}
