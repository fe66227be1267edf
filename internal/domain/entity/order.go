package entity

import "time"

// OrderItem is a product line snapshotted into an order.
type OrderItem struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	PriceInPence int64  `json:"price_in_pence"`
	Quantity     int    `json:"quantity"`
}

// Order is a placed order with its monetary breakdown and shipping snapshot.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	Status          string      `json:"status"`
	SubtotalInPence int64       `json:"subtotal_in_pence"`
	ShippingInPence int64       `json:"shipping_in_pence"`
	TaxInPence      int64       `json:"tax_in_pence"`
	TotalInPence    int64       `json:"total_in_pence"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// PaymentIntentInput is the body of POST /orders/intent.
type PaymentIntentInput struct {
	ShippingAddressID int64 `json:"shipping_address_id"`
}

// PaymentIntent is the body returned by POST /orders/intent.
type PaymentIntent struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmOrderInput is the body of POST /orders/confirm.
type ConfirmOrderInput struct {
	PaymentIntentID   string `json:"payment_intent_id"`
	ShippingAddressID int64  `json:"shipping_address_id"`
}
