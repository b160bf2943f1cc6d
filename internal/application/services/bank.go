package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

// BankService links bank accounts through the bank-data vendor and reads
// their balances.
type BankService struct {
	bankData application.BankDataProvider
	funding  *FundingService
	logger   *slog.Logger
}

func NewBankService(bankData application.BankDataProvider, funding *FundingService, logger *slog.Logger) *BankService {
	return &BankService{
		bankData: bankData,
		funding:  funding,
		logger:   logger,
	}
}

func (s *BankService) CreateLinkToken(ctx context.Context, user *domain.UserProfile) (*domain.LinkToken, error) {
	if user == nil {
		return nil, domain.NewUnauthenticatedError()
	}

	token, err := s.bankData.CreateLinkToken(ctx, user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "create link token failed", "vendor", vendorBankData, "error", err)
		return nil, domain.NewVendorCallFailure(vendorBankData, "create link token", err)
	}
	return token, nil
}

// LinkBank exchanges the public token from the link flow, picks the first
// account of the item and registers it as a funding source of the customer.
func (s *BankService) LinkBank(ctx context.Context, user *domain.UserProfile, cmd LinkBankCommand) (*domain.LinkedBank, error) {
	if user == nil {
		return nil, domain.NewUnauthenticatedError()
	}
	if cmd.PublicToken == "" {
		return nil, domain.NewValidationError("publicToken", "public token is required")
	}
	if cmd.CustomerLocator.IsZero() {
		return nil, domain.NewValidationError("customer", "customer locator is required")
	}

	item, err := s.bankData.ExchangePublicToken(ctx, cmd.PublicToken)
	if err != nil {
		s.logger.ErrorContext(ctx, "exchange public token failed", "vendor", vendorBankData, "error", err)
		return nil, domain.NewVendorCallFailure(vendorBankData, "exchange public token", err)
	}

	accounts, err := s.bankData.GetAccounts(ctx, item.AccessToken)
	if err != nil {
		s.logger.ErrorContext(ctx, "get accounts failed", "vendor", vendorBankData, "item", item.ItemID, "error", err)
		return nil, domain.NewVendorCallFailure(vendorBankData, "get accounts", err)
	}
	if len(accounts) == 0 {
		return nil, domain.NewValidationError("publicToken", "linked item has no accounts")
	}
	account := accounts[0]

	processorToken, err := s.bankData.CreateProcessorToken(ctx, item.AccessToken, account.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "create processor token failed", "vendor", vendorBankData, "item", item.ItemID, "error", err)
		return nil, domain.NewVendorCallFailure(vendorBankData, "create processor token", err)
	}

	fundingSource, err := s.funding.AddFundingSource(ctx, AddFundingSourceCommand{
		CustomerLocator: cmd.CustomerLocator,
		BankName:        account.Name,
		ProcessorToken:  processorToken,
	})
	if err != nil {
		return nil, err
	}

	return &domain.LinkedBank{
		ItemID:        item.ItemID,
		AccessToken:   item.AccessToken,
		AccountID:     account.ID,
		BankName:      account.Name,
		FundingSource: fundingSource,
	}, nil
}

// Dashboard collects balances for every access token in order. Any failing
// item fails the whole summary.
func (s *BankService) Dashboard(ctx context.Context, user *domain.UserProfile, accessTokens []string) (*domain.Dashboard, error) {
	var accounts []domain.BankAccount

	for _, token := range accessTokens {
		itemAccounts, err := s.bankData.GetAccounts(ctx, token)
		if err != nil {
			s.logger.ErrorContext(ctx, "get balances failed", "vendor", vendorBankData, "error", err)
			return nil, domain.NewVendorCallFailure(vendorBankData, "get balances", err)
		}
		accounts = append(accounts, itemAccounts...)
	}

	return domain.NewDashboard(user, accounts), nil
}
