package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application/services"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/go-playground/validator"
)

type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*domain.Authenticated, error)
	SignUp(ctx context.Context, params domain.SignUpParams) (*domain.Authenticated, error)
	GetLoggedInUser(ctx context.Context, token domain.SessionToken) (*domain.UserProfile, error)
	Logout(ctx context.Context, token domain.SessionToken) error
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, rec domain.NewCustomerRecord) (domain.ResourceLocator, error)
}

type FundingService interface {
	AddFundingSource(ctx context.Context, cmd services.AddFundingSourceCommand) (domain.ResourceLocator, error)
}

type TransferService interface {
	CreateTransfer(ctx context.Context, cmd services.TransferCommand) (domain.ResourceLocator, error)
}

type BankService interface {
	CreateLinkToken(ctx context.Context, user *domain.UserProfile) (*domain.LinkToken, error)
	LinkBank(ctx context.Context, user *domain.UserProfile, cmd services.LinkBankCommand) (*domain.LinkedBank, error)
	Dashboard(ctx context.Context, user *domain.UserProfile, accessTokens []string) (*domain.Dashboard, error)
}

type Handlers struct {
	sessions  SessionService
	customers CustomerService
	funding   FundingService
	transfers TransferService
	banks     BankService
	validate  *validator.Validate
	logger    *slog.Logger

	validateRequest RequestValidator
}

func NewHandlers(
	sessions SessionService,
	customers CustomerService,
	funding FundingService,
	transfers TransferService,
	banks BankService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		sessions:  sessions,
		customers: customers,
		funding:   funding,
		transfers: transfers,
		banks:     banks,
		validate:  validator.New(),
		logger:    logger,
	}
}

// UseRequestValidator installs v on every route. Session-bound routes run it
// after the session check.
func (h *Handlers) UseRequestValidator(v RequestValidator) {
	h.validateRequest = v
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/sign-in", h.validated(h.HandleSignIn))
	mux.HandleFunc("POST /auth/sign-up", h.validated(h.HandleSignUp))
	mux.HandleFunc("GET /auth/me", h.validated(h.HandleMe))
	mux.HandleFunc("POST /auth/logout", h.validated(h.HandleLogout))

	mux.HandleFunc("POST /customers", h.requireUser(h.HandleCreateCustomer))
	mux.HandleFunc("POST /funding-sources", h.requireUser(h.HandleAddFundingSource))
	mux.HandleFunc("POST /transfers", h.requireUser(h.HandleCreateTransfer))

	mux.HandleFunc("POST /banks/link-token", h.requireUser(h.HandleCreateLinkToken))
	mux.HandleFunc("POST /banks/link", h.requireUser(h.HandleLinkBank))
	mux.HandleFunc("POST /dashboard", h.requireUser(h.HandleDashboard))

	mux.HandleFunc("GET /healthz", h.HandleHealth)
}
