package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

type FundingService struct {
	network application.PaymentNetwork
	logger  *slog.Logger
}

func NewFundingService(network application.PaymentNetwork, logger *slog.Logger) *FundingService {
	return &FundingService{
		network: network,
		logger:  logger,
	}
}

// AddFundingSource obtains an on-demand authorization and then registers the
// bank account with it. The second call is never made when the first fails.
func (s *FundingService) AddFundingSource(ctx context.Context, cmd AddFundingSourceCommand) (domain.ResourceLocator, error) {
	req := domain.FundingSourceRequest{
		Customer:       cmd.CustomerLocator,
		BankName:       cmd.BankName,
		ProcessorToken: cmd.ProcessorToken,
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	auth, err := s.network.CreateOnDemandAuthorization(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "create on-demand authorization failed",
			"vendor", vendorPayments,
			"category", application.CategorizeError(err),
			"error", err,
		)
		return "", domain.NewAuthorizationFailedError(err)
	}

	req.Authorization = auth
	if !req.Authorized() {
		s.logger.ErrorContext(ctx, "on-demand authorization returned without self link", "vendor", vendorPayments)
		return "", domain.NewAuthorizationFailedError(domain.ErrMissingAuthorization)
	}

	locator, err := s.network.CreateFundingSource(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "create funding source failed",
			"vendor", vendorPayments,
			"customer", cmd.CustomerLocator.ID(),
			"category", application.CategorizeError(err),
			"error", err,
		)
		return "", domain.NewVendorCallFailure(vendorPayments, "create funding source", err)
	}

	if locator.IsZero() {
		s.logger.ErrorContext(ctx, "no location header in funding source response", "vendor", vendorPayments)
		return "", domain.NewVendorCallFailure(vendorPayments, "create funding source", errNoLocation)
	}

	return locator, nil
}

var errNoLocation = errors.New("no location returned")
