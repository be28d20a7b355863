package auth

import "encoding/json"

// Credentials is the body for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the payload inside a successful login envelope. User and
// company are kept raw, the app stores them as-is.
type LoginResult struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user,omitempty"`
	Company json.RawMessage `json:"company,omitempty"`
}
