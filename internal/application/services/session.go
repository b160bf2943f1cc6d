package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/google/uuid"
)

// currentSession is the identity backend's alias for the caller's session.
const currentSession = "current"

// SessionService resolves and mutates the signed-in user. Cookie handling is
// left to the caller: it receives a session to store and passes the stored
// token back in.
type SessionService struct {
	identity application.IdentityProvider
	logger   *slog.Logger
	newID    func() string
}

func NewSessionService(identity application.IdentityProvider, logger *slog.Logger) *SessionService {
	return &SessionService{
		identity: identity,
		logger:   logger,
		newID:    func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
	}
}

func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.Authenticated, error) {
	session, err := s.identity.CreateEmailPasswordSession(ctx, email, password)
	if err != nil {
		s.logger.ErrorContext(ctx, "error during sign in", "vendor", vendorIdentity, "error", err)
		if vendorErr, ok := application.IsVendorError(err); ok && vendorErr.IsUnauthorized() {
			return nil, domain.NewInvalidCredentialsError(err)
		}
		return nil, domain.NewVendorCallFailure(vendorIdentity, "create session", err)
	}

	profile, err := s.identity.GetAccount(ctx, session.Secret)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch account after sign in failed", "vendor", vendorIdentity, "error", err)
		s.discardSession(ctx, session)
		return nil, domain.NewVendorCallFailure(vendorIdentity, "get account", err)
	}

	return &domain.Authenticated{Session: session, Profile: profile}, nil
}

func (s *SessionService) SignUp(ctx context.Context, params domain.SignUpParams) (*domain.Authenticated, error) {
	if err := validateSignUp(params); err != nil {
		return nil, err
	}

	profile, err := s.identity.CreateAccount(ctx, s.newID(), params.Email, params.Password, params.FullName())
	if err != nil {
		s.logger.ErrorContext(ctx, "create account failed", "vendor", vendorIdentity, "error", err)
		if vendorErr, ok := application.IsVendorError(err); ok && vendorErr.IsConflict() {
			return nil, domain.NewAccountExistsError(params.Email)
		}
		return nil, domain.NewVendorCallFailure(vendorIdentity, "create account", err)
	}

	session, err := s.identity.CreateEmailPasswordSession(ctx, params.Email, params.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "create session after sign up failed", "vendor", vendorIdentity, "error", err)
		return nil, domain.NewVendorCallFailure(vendorIdentity, "create session", err)
	}

	return &domain.Authenticated{Session: session, Profile: profile}, nil
}

// GetLoggedInUser returns nil, nil when token does not name a live session.
func (s *SessionService) GetLoggedInUser(ctx context.Context, token domain.SessionToken) (*domain.UserProfile, error) {
	if token == "" {
		return nil, nil
	}

	profile, err := s.identity.GetAccount(ctx, token)
	if err != nil {
		if vendorErr, ok := application.IsVendorError(err); ok && vendorErr.IsUnauthorized() {
			s.logger.DebugContext(ctx, "session cookie no longer valid", "vendor", vendorIdentity)
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "get logged in user failed", "vendor", vendorIdentity, "error", err)
		return nil, domain.NewVendorCallFailure(vendorIdentity, "get account", err)
	}

	return profile, nil
}

// Logout invalidates the remote session. Clearing the cookie is the
// caller's job and must not depend on the outcome.
func (s *SessionService) Logout(ctx context.Context, token domain.SessionToken) error {
	if token == "" {
		return nil
	}

	if err := s.identity.DeleteSession(ctx, token, currentSession); err != nil {
		s.logger.ErrorContext(ctx, "delete session failed", "vendor", vendorIdentity, "error", err)
		if vendorErr, ok := application.IsVendorError(err); ok && vendorErr.IsUnauthorized() {
			return nil
		}
		return domain.NewVendorCallFailure(vendorIdentity, "delete session", err)
	}

	return nil
}

func (s *SessionService) discardSession(ctx context.Context, session *domain.Session) {
	if err := s.identity.DeleteSession(ctx, session.Secret, currentSession); err != nil {
		s.logger.WarnContext(ctx, "could not discard session", "vendor", vendorIdentity, "error", err)
	}
}

func validateSignUp(p domain.SignUpParams) error {
	switch {
	case strings.TrimSpace(p.FirstName) == "":
		return domain.NewValidationError("firstName", "first name is required")
	case strings.TrimSpace(p.LastName) == "":
		return domain.NewValidationError("lastName", "last name is required")
	case strings.TrimSpace(p.Email) == "":
		return domain.NewValidationError("email", "email is required")
	case len(p.Password) < 8:
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}
	return nil
}
