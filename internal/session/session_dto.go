package session

import "time"

// Session is the authenticated caller as resolved for one request.
type Session struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Valid reports whether the session still carries a usable token at now.
func (s Session) Valid(now time.Time) bool {
	return s.Token != "" && s.ExpiresAt.After(now)
}

// ==================== REQUEST STRUCTS ====================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type LoginResponse struct {
	SessionID string    `json:"-"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Next      string    `json:"next,omitempty"`
}

type StatusResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"userId,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}
