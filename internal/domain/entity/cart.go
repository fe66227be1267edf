package entity

import "time"

// CartLine is one product line of the user's cart.
type CartLine struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PriceInPence int64  `json:"price_in_pence"`
	ImageURL     string `json:"image_url"`
	Quantity     int    `json:"quantity"`
}

// Cart is the cart header record.
type Cart struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartResponse is the body of GET /cart.
type CartResponse struct {
	Cart  *Cart      `json:"cart,omitempty"`
	Items []CartLine `json:"items"`
}

// AddCartItemInput is the body of POST /cart/items.
type AddCartItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemInput is the body of PUT /cart/items/:id.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}
