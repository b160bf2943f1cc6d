// Package appwrite is the identity backend client. Admin calls carry the
// server key; session calls carry the caller's session secret instead.
package appwrite

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/httpx"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/observability"
)

const (
	headerProject = "X-Appwrite-Project"
	headerKey     = "X-Appwrite-Key"
	headerSession = "X-Appwrite-Session"
)

type Client struct {
	api      *httpx.Client
	adminKey string
}

var _ application.IdentityProvider = (*Client)(nil)

func NewClient(cfg config.AppwriteConfig) *Client {
	return &Client{
		api: httpx.NewClient(cfg.Endpoint, observability.NewHTTPClient(vendorName, cfg.Timeout),
			httpx.WithHeader(headerProject, cfg.Project),
			httpx.WithErrorDecoder(decodeError),
		),
		adminKey: cfg.Key,
	}
}

func (c *Client) admin() http.Header {
	return http.Header{headerKey: {c.adminKey}}
}

func session(token domain.SessionToken) http.Header {
	return http.Header{headerSession: {string(token)}}
}

func (c *Client) CreateAccount(ctx context.Context, userID, email, password, name string) (*domain.UserProfile, error) {
	body := CreateAccountRequest{
		UserID:   userID,
		Email:    email,
		Password: password,
		Name:     name,
	}
	resp, err := httpx.Do[CreateAccountRequest, AccountResponse](c.api, ctx, http.MethodPost, "account", &body, c.admin())
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return resp.Body.toDomain(), nil
}

func (c *Client) CreateEmailPasswordSession(ctx context.Context, email, password string) (*domain.Session, error) {
	body := EmailSessionRequest{Email: email, Password: password}
	resp, err := httpx.Do[EmailSessionRequest, SessionResponse](c.api, ctx, http.MethodPost, "account/sessions/email", &body, c.admin())
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return resp.Body.toDomain(), nil
}

func (c *Client) GetAccount(ctx context.Context, token domain.SessionToken) (*domain.UserProfile, error) {
	resp, err := httpx.Do[any, AccountResponse](c.api, ctx, http.MethodGet, "account", nil, session(token))
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return nil, errEmptyResponse
	}
	return resp.Body.toDomain(), nil
}

func (c *Client) DeleteSession(ctx context.Context, token domain.SessionToken, sessionID string) error {
	_, err := httpx.Do[any, struct{}](c.api, ctx, http.MethodDelete, "account/sessions/"+sessionID, nil, session(token))
	return err
}
