package domain

import (
	"strings"
	"time"
)

// SessionCookieName is the cookie slot carrying the current session secret.
const SessionCookieName = "appwrite-session"

// SessionToken is the opaque secret carried in the session cookie.
type SessionToken string

// Session is a vendor-side session. Its lifetime is bounded by Expire, which
// is not tracked locally.
type Session struct {
	ID     string
	UserID string
	Secret SessionToken
	Expire time.Time
}

type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FirstName returns the first word of the profile name.
func (p *UserProfile) FirstName() string {
	if p == nil {
		return ""
	}
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (p SignUpParams) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Authenticated pairs a freshly created session with the user it belongs to.
type Authenticated struct {
	Session *Session
	Profile *UserProfile
}
