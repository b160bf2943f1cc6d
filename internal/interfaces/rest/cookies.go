package rest

import (
	"net/http"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
)

// SetSessionCookie stores the session secret. The cookie has no Expires so
// it lives for the browser session; the vendor enforces the real expiry.
func SetSessionCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    string(session.Secret),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// SessionToken reads the session cookie. Missing cookie yields "".
func SessionToken(r *http.Request) domain.SessionToken {
	cookie, err := r.Cookie(domain.SessionCookieName)
	if err != nil {
		return ""
	}
	return domain.SessionToken(cookie.Value)
}
