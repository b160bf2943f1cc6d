package appwrite

import (
	"time"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

type CreateAccountRequest struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type EmailSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	ID     string    `json:"$id"`
	UserID string    `json:"userId"`
	Secret string    `json:"secret"`
	Expire time.Time `json:"expire"`
}

type AccountResponse struct {
	ID        string    `json:"$id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"$createdAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (r *AccountResponse) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}

func (r *SessionResponse) toDomain() *domain.Session {
	return &domain.Session{
		ID:     r.ID,
		UserID: r.UserID,
		Secret: domain.SessionToken(r.Secret),
		Expire: r.Expire,
	}
}
