// Package types contains the wire types shared by the client, the fake
// service and the end-to-end suite.
package types

import "time"

const (
	LoginPath     = "/api/users/login"
	LogoutPath    = "/api/users/logout"
	DashboardPath = "/api/users/dashboard"

	// TokenHeader carries the auth token in both directions. The service
	// writes it as auth-sec-token and reads AUTH-SEC-TOKEN; HTTP header
	// names are case-insensitive so one constant serves both.
	TokenHeader = "AUTH-SEC-TOKEN"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Passcode string `json:"passcode"`
}

// MessageBody is the shape of every error body and of the logout reply.
type MessageBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type LoginBody struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type DashboardBody struct {
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
