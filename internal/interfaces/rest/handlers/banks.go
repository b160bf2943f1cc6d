package handlers

import (
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/application/services"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/interfaces/rest"
)

type LinkBankRequest struct {
	PublicToken string `json:"publicToken" validate:"required"`
	CustomerURL string `json:"customerUrl" validate:"required,url"`
}

type DashboardRequest struct {
	AccessTokens []string `json:"accessTokens" validate:"dive,required"`
}

func (h *Handlers) HandleCreateLinkToken(w http.ResponseWriter, r *http.Request, user *domain.UserProfile) {
	token, err := h.banks.CreateLinkToken(r.Context(), user)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, token)
}

// HandleLinkBank returns the item access token to the caller, which keeps it
// for later dashboard requests. Nothing is stored server side, so the token
// is a bearer secret: whoever holds it can read the linked balances through
// POST /dashboard. Clients must keep it out of logs and shared storage.
func (h *Handlers) HandleLinkBank(w http.ResponseWriter, r *http.Request, user *domain.UserProfile) {
	var req LinkBankRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	linked, err := h.banks.LinkBank(r.Context(), user, services.LinkBankCommand{
		PublicToken:     req.PublicToken,
		CustomerLocator: domain.ResourceLocator(req.CustomerURL),
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, linked)
}

func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request, user *domain.UserProfile) {
	var req DashboardRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		rest.WriteError(w, err)
		return
	}

	dashboard, err := h.banks.Dashboard(r.Context(), user, req.AccessTokens)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, dashboard)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
