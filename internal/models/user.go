package models

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token. Nothing consumes the token
// server-side; the login view is a non-functional gate kept for
// interface completeness.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
