package models

// Session is an authenticated Clerk session
type Session struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}
