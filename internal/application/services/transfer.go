package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

type TransferService struct {
	network application.PaymentNetwork
	logger  *slog.Logger
}

func NewTransferService(network application.PaymentNetwork, logger *slog.Logger) *TransferService {
	return &TransferService{
		network: network,
		logger:  logger,
	}
}

func (s *TransferService) CreateTransfer(ctx context.Context, cmd TransferCommand) (domain.ResourceLocator, error) {
	req, err := domain.NewTransferRequest(cmd.Source, cmd.Destination, cmd.Amount)
	if err != nil {
		return "", err
	}

	locator, err := s.network.CreateTransfer(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "transfer funds failed",
			"vendor", vendorPayments,
			"amount", req.Amount.Value(),
			"category", application.CategorizeError(err),
			"error", err,
		)
		return "", domain.NewVendorCallFailure(vendorPayments, "create transfer", err)
	}

	if locator.IsZero() {
		s.logger.ErrorContext(ctx, "no location header in transfer response", "vendor", vendorPayments)
		return "", domain.NewVendorCallFailure(vendorPayments, "create transfer", errNoLocation)
	}

	return locator, nil
}
