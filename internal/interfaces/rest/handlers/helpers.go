package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest"
)

type userHandlerFunc func(w http.ResponseWriter, r *http.Request, user *domain.UserProfile)

// RequestValidator checks a request against the API contract before its
// handler runs.
type RequestValidator func(http.Handler) http.Handler

// validated runs the configured RequestValidator, if any, in front of next.
func (h *Handlers) validated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.validateRequest == nil {
			next(w, r)
			return
		}
		h.validateRequest(next).ServeHTTP(w, r)
	}
}

// requireUser resolves the session cookie and answers 401 when there is no
// live session. Request validation only runs once a user is resolved, so an
// anonymous caller always sees 401.
func (h *Handlers) requireUser(next userHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.sessions.GetLoggedInUser(r.Context(), rest.SessionToken(r))
		if err != nil {
			rest.WriteError(w, err)
			return
		}
		if user == nil {
			h.logger.DebugContext(r.Context(), "rejected request without session", "path", r.URL.Path)
			rest.WriteError(w, domain.NewUnauthenticatedError())
			return
		}

		h.validated(func(w http.ResponseWriter, r *http.Request) {
			next(w, r, user)
		})(w, r)
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct tags.
func (h *Handlers) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "request body must be valid JSON")
	}
	if err := h.validate.Struct(dst); err != nil {
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}
