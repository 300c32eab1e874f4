package domain

import "time"

// Order status constants.
const (
	OrderStatusPaid   = "paid"
	OrderStatusFailed = "failed"
)

// Payment method constants.
const (
	PaymentMethodMpesa = "mpesa"
)

// Order is a completed storefront purchase: a snapshot of the cart at
// checkout time plus the reconciled totals and the payment outcome.
type Order struct {
	ID             string     `json:"id"`
	SessionID      string     `json:"session_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	CustomerPhone  string     `json:"customer_phone"`
	Items          []CartItem `json:"items"`
	Subtotal       int64      `json:"subtotal"`
	Discount       int64      `json:"discount"`
	Total          int64      `json:"total"`
	Currency       string     `json:"currency"`
	PaymentMethod  string     `json:"payment_method"`
	PaymentRef     string     `json:"payment_ref,omitempty"`
	ShippingMethod string     `json:"shipping_method,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ShippingMethod is a delivery option reported by the commerce backend.
type ShippingMethod struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
