// Package dwolla is the payment network client.
package dwolla

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/httpx"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/observability"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	SandboxURL    = "https://api-sandbox.dwolla.com"
	ProductionURL = "https://api.dwolla.com"

	halMediaType = "application/vnd.dwolla.v1.hal+json"
)

var (
	ErrInvalidEnvironment     = errors.New("dwolla environment should either be set to `sandbox` or `production`")
	ErrInvalidCustomerLocator = errors.New("customer locator does not name a customer")
)

// EnvironmentURL maps the configured environment to its API root.
func EnvironmentURL(env string) (string, error) {
	switch env {
	case "sandbox":
		return SandboxURL, nil
	case "production":
		return ProductionURL, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidEnvironment, env)
	}
}

type Client struct {
	api *httpx.Client
}

var _ application.PaymentNetwork = (*Client)(nil)

// NewClient authenticates with client credentials against {base}/token and
// refreshes the bearer token as it expires.
func NewClient(cfg config.DwollaConfig) (*Client, error) {
	baseURL, err := EnvironmentURL(cfg.Env)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	base := observability.NewHTTPClient(vendorName, cfg.Timeout)
	credentials := clientcredentials.Config{
		ClientID:     cfg.Key,
		ClientSecret: cfg.Secret,
		TokenURL:     baseURL + "/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	httpClient := credentials.Client(context.WithValue(context.Background(), oauth2.HTTPClient, base))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		api: httpx.NewClient(baseURL, httpClient,
			httpx.WithMediaType(halMediaType),
			httpx.WithErrorDecoder(decodeError),
		),
	}, nil
}

func (c *Client) CreateCustomer(ctx context.Context, rec domain.NewCustomerRecord) (domain.ResourceLocator, error) {
	body := toCustomerRequest(rec)
	resp, err := httpx.Do[CustomerRequest, empty](c.api, ctx, http.MethodPost, "customers", &body, nil)
	if err != nil {
		return "", err
	}
	return domain.ResourceLocator(resp.Location), nil
}

func (c *Client) CreateOnDemandAuthorization(ctx context.Context) (*domain.AuthorizationLink, error) {
	resp, err := httpx.Do[any, OnDemandAuthorizationResponse](c.api, ctx, http.MethodPost, "on-demand-authorizations", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return &domain.AuthorizationLink{}, nil
	}
	return &domain.AuthorizationLink{
		Links:      resp.Body.Links,
		BodyText:   resp.Body.BodyText,
		ButtonText: resp.Body.ButtonText,
	}, nil
}

func (c *Client) CreateFundingSource(ctx context.Context, req domain.FundingSourceRequest) (domain.ResourceLocator, error) {
	body := toFundingSourceRequest(req)
	customerID := req.Customer.ID()
	if customerID == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidCustomerLocator, req.Customer)
	}
	path := fmt.Sprintf("customers/%s/funding-sources", url.PathEscape(customerID))
	resp, err := httpx.Do[FundingSourceRequest, empty](c.api, ctx, http.MethodPost, path, &body, nil)
	if err != nil {
		return "", err
	}
	return domain.ResourceLocator(resp.Location), nil
}

func (c *Client) CreateTransfer(ctx context.Context, req domain.TransferRequest) (domain.ResourceLocator, error) {
	body := toTransferRequest(req)
	resp, err := httpx.Do[TransferRequest, empty](c.api, ctx, http.MethodPost, "transfers", &body, nil)
	if err != nil {
		return "", err
	}
	return domain.ResourceLocator(resp.Location), nil
}
