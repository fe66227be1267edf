package entity

// AddressType distinguishes shipping from billing addresses.
type AddressType string

const (
	AddressShipping AddressType = "shipping"
	AddressBilling  AddressType = "billing"
)

// Address is a user-owned shipping or billing record.
type Address struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	AddressType   AddressType `json:"address_type"`
	StreetAddress string      `json:"street_address"`
	City          string      `json:"city"`
	PostCode      string      `json:"post_code"`
	Country       string      `json:"country"`
	IsDefault     bool        `json:"is_default"`
}

// AddressInput is the address payload without server-assigned fields.
// Unset fields are left unchanged on update.
type AddressInput struct {
	AddressType   AddressType `json:"address_type,omitempty"`
	StreetAddress string      `json:"street_address,omitempty"`
	City          string      `json:"city,omitempty"`
	PostCode      string      `json:"post_code,omitempty"`
	Country       string      `json:"country,omitempty"`
	IsDefault     *bool       `json:"is_default,omitempty"`
}
