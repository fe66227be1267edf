// Package entity contains the client-side mirrors of the storefront's business objects.
// The remote API is the source of truth for every value held here.
package entity

import "time"

// User is the account record echoed back by the API.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credentials is the login and registration payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the body returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
}
