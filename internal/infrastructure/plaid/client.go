// Package plaid is the bank-data aggregator client.
package plaid

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/httpx"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/observability"
)

const processorDwolla = "dwolla"

var (
	linkProducts     = []string{"auth", "transactions"}
	linkCountryCodes = []string{"US"}
)

type Client struct {
	api        *httpx.Client
	clientName string
}

var _ application.BankDataProvider = (*Client)(nil)

func NewClient(cfg config.PlaidConfig) *Client {
	return &Client{
		api: httpx.NewClient(cfg.BaseURL, observability.NewHTTPClient(vendorName, cfg.Timeout),
			httpx.WithHeader("PLAID-CLIENT-ID", cfg.ClientID),
			httpx.WithHeader("PLAID-SECRET", cfg.Secret),
			httpx.WithErrorDecoder(decodeError),
		),
		clientName: cfg.ClientName,
	}
}

func (c *Client) CreateLinkToken(ctx context.Context, clientUserID string) (*domain.LinkToken, error) {
	body := LinkTokenCreateRequest{
		ClientName:   c.clientName,
		User:         LinkTokenUser{ClientUserID: clientUserID},
		Products:     linkProducts,
		CountryCodes: linkCountryCodes,
		Language:     "en",
	}
	resp, err := httpx.Do[LinkTokenCreateRequest, LinkTokenCreateResponse](c.api, ctx, http.MethodPost, "link/token/create", &body, nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return &domain.LinkToken{
		Token:      resp.Body.LinkToken,
		Expiration: resp.Body.Expiration,
	}, nil
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.BankItem, error) {
	body := PublicTokenExchangeRequest{PublicToken: publicToken}
	resp, err := httpx.Do[PublicTokenExchangeRequest, PublicTokenExchangeResponse](c.api, ctx, http.MethodPost, "item/public_token/exchange", &body, nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return &domain.BankItem{
		ItemID:      resp.Body.ItemID,
		AccessToken: resp.Body.AccessToken,
	}, nil
}

func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	body := AccessTokenRequest{AccessToken: accessToken}
	resp, err := httpx.Do[AccessTokenRequest, AccountsBalanceResponse](c.api, ctx, http.MethodPost, "accounts/balance/get", &body, nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return resp.Body.toDomain(), nil
}

func (c *Client) CreateProcessorToken(ctx context.Context, accessToken, accountID string) (string, error) {
	body := ProcessorTokenCreateRequest{
		AccessToken: accessToken,
		AccountID:   accountID,
		Processor:   processorDwolla,
	}
	resp, err := httpx.Do[ProcessorTokenCreateRequest, ProcessorTokenCreateResponse](c.api, ctx, http.MethodPost, "processor/token/create", &body, nil)
	if err != nil {
		return "", err
	}
	if resp.Body == nil {
		return "", errEmptyResponse
	}
	return resp.Body.ProcessorToken, nil
}
