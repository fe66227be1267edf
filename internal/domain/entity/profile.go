package entity

// UserProfile is the optional per-user profile record.
type UserProfile struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UserProfileInput is a partial profile sent on create or update.
type UserProfileInput struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}
