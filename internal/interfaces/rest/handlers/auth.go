package handlers

import (
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest"
)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// HandleSignIn creates a session and stores its secret in the session cookie.
func (h *Handlers) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	auth, err := h.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.SetSessionCookie(w, auth.Session)
	rest.WriteJSON(w, http.StatusOK, auth.Profile)
}

func (h *Handlers) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	auth, err := h.sessions.SignUp(r.Context(), domain.SignUpParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.SetSessionCookie(w, auth.Session)
	rest.WriteJSON(w, http.StatusCreated, auth.Profile)
}

// HandleMe answers 401 for anonymous callers instead of an empty success.
func (h *Handlers) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.GetLoggedInUser(r.Context(), rest.SessionToken(r))
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	if user == nil {
		rest.WriteError(w, domain.NewUnauthenticatedError())
		return
	}

	rest.WriteJSON(w, http.StatusOK, user)
}

// HandleLogout clears the cookie before the remote call so a vendor failure
// still logs the browser out.
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := rest.SessionToken(r)
	rest.ClearSessionCookie(w)

	if err := h.sessions.Logout(r.Context(), token); err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, map[string]bool{"loggedOut": true})
}
