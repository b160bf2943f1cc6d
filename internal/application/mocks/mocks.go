// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"context"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentNetwork struct {
	mock.Mock
}

var _ application.PaymentNetwork = (*MockPaymentNetwork)(nil)

func NewMockPaymentNetwork(t *testing.T) *MockPaymentNetwork {
	m := &MockPaymentNetwork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentNetwork) CreateCustomer(ctx context.Context, rec domain.NewCustomerRecord) (domain.ResourceLocator, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(domain.ResourceLocator), args.Error(1)
}

func (m *MockPaymentNetwork) CreateOnDemandAuthorization(ctx context.Context) (*domain.AuthorizationLink, error) {
	args := m.Called(ctx)
	link, _ := args.Get(0).(*domain.AuthorizationLink)
	return link, args.Error(1)
}

func (m *MockPaymentNetwork) CreateFundingSource(ctx context.Context, req domain.FundingSourceRequest) (domain.ResourceLocator, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ResourceLocator), args.Error(1)
}

func (m *MockPaymentNetwork) CreateTransfer(ctx context.Context, req domain.TransferRequest) (domain.ResourceLocator, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ResourceLocator), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

var _ application.IdentityProvider = (*MockIdentityProvider)(nil)

func NewMockIdentityProvider(t *testing.T) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, userID, email, password, name string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID, email, password, name)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *MockIdentityProvider) CreateEmailPasswordSession(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*domain.Session)
	return session, args.Error(1)
}

func (m *MockIdentityProvider) GetAccount(ctx context.Context, token domain.SessionToken) (*domain.UserProfile, error) {
	args := m.Called(ctx, token)
	profile, _ := args.Get(0).(*domain.UserProfile)
	return profile, args.Error(1)
}

func (m *MockIdentityProvider) DeleteSession(ctx context.Context, token domain.SessionToken, sessionID string) error {
	args := m.Called(ctx, token, sessionID)
	return args.Error(0)
}

type MockBankDataProvider struct {
	mock.Mock
}

var _ application.BankDataProvider = (*MockBankDataProvider)(nil)

func NewMockBankDataProvider(t *testing.T) *MockBankDataProvider {
	m := &MockBankDataProvider{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBankDataProvider) CreateLinkToken(ctx context.Context, clientUserID string) (*domain.LinkToken, error) {
	args := m.Called(ctx, clientUserID)
	token, _ := args.Get(0).(*domain.LinkToken)
	return token, args.Error(1)
}

func (m *MockBankDataProvider) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.BankItem, error) {
	args := m.Called(ctx, publicToken)
	item, _ := args.Get(0).(*domain.BankItem)
	return item, args.Error(1)
}

func (m *MockBankDataProvider) GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, accessToken)
	accounts, _ := args.Get(0).([]domain.BankAccount)
	return accounts, args.Error(1)
}

func (m *MockBankDataProvider) CreateProcessorToken(ctx context.Context, accessToken, accountID string) (string, error) {
	args := m.Called(ctx, accessToken, accountID)
	return args.String(0), args.Error(1)
}
