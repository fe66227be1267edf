package entity

// Session is the client's record of its authentication status.
type Session struct {
	Token string // Opaque bearer token, empty when anonymous.
	User  *User  // Optional profile echo decoded from the token.
}

// IsAuthenticated reports whether a token is held.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
