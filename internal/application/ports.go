package application

import (
	"context"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

// PaymentNetwork is the port for the money-movement vendor.
type PaymentNetwork interface {
	// CreateCustomer returns the Location of the new customer. An empty
	// locator with a nil error means the vendor sent no Location header.
	CreateCustomer(ctx context.Context, rec domain.NewCustomerRecord) (domain.ResourceLocator, error)
	CreateOnDemandAuthorization(ctx context.Context) (*domain.AuthorizationLink, error)
	CreateFundingSource(ctx context.Context, req domain.FundingSourceRequest) (domain.ResourceLocator, error)
	CreateTransfer(ctx context.Context, req domain.TransferRequest) (domain.ResourceLocator, error)
}

// IdentityProvider is the port for the authentication backend.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, userID, email, password, name string) (*domain.UserProfile, error)
	CreateEmailPasswordSession(ctx context.Context, email, password string) (*domain.Session, error)
	GetAccount(ctx context.Context, token domain.SessionToken) (*domain.UserProfile, error)
	DeleteSession(ctx context.Context, token domain.SessionToken, sessionID string) error
}

// BankDataProvider is the port for the bank-data aggregator.
type BankDataProvider interface {
	CreateLinkToken(ctx context.Context, clientUserID string) (*domain.LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*domain.BankItem, error)
	GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error)
	CreateProcessorToken(ctx context.Context, accessToken, accountID string) (string, error)
}
