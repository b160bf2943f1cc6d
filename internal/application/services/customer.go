package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

type CustomerService struct {
	network application.PaymentNetwork
	logger  *slog.Logger
}

func NewCustomerService(network application.PaymentNetwork, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		network: network,
		logger:  logger,
	}
}

// CreateCustomer normalizes rec and provisions it with the payment network.
func (s *CustomerService) CreateCustomer(ctx context.Context, rec domain.NewCustomerRecord) (domain.ResourceLocator, error) {
	normalized, err := domain.NormalizeCustomerRecord(rec)
	if err != nil {
		return "", err
	}

	locator, err := s.network.CreateCustomer(ctx, normalized)
	if err != nil {
		s.logger.ErrorContext(ctx, "create customer failed",
			"vendor", vendorPayments,
			"category", application.CategorizeError(err),
			"error", err,
		)

		if vendorErr, ok := application.IsVendorError(err); ok && vendorErr.IsValidation() {
			return "", domain.NewProvisioningError("Validation failed: "+vendorErr.FieldMessages(), err)
		}
		return "", domain.NewVendorCallFailure(vendorPayments, "create customer", err)
	}

	if locator.IsZero() {
		s.logger.ErrorContext(ctx, "no location header in create customer response", "vendor", vendorPayments)
		return "", domain.NewProvisioningError("Failed to create Dwolla customer: No location returned", nil)
	}

	return locator, nil
}
