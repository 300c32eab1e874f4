package domain

import (
	"strings"
	"time"
)

// Supported currencies. Prices are stored in minor units (centavos/cents).
const (
	CurrencyMZN = "MZN"
	CurrencyEUR = "EUR"
)

// Coupon discount type constants.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Cart represents a storefront shopping cart owned by one session.
type Cart struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	Currency  string     `json:"currency"`
	Coupon    *Coupon    `json:"coupon,omitempty"`
	Version   int        `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// CartItem represents a single line item in the cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Variant   string `json:"variant,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Coupon is discount metadata attached to a cart by the commerce backend.
type Coupon struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name,omitempty"`
	DiscountType   string  `json:"discount_type"`
	DiscountNumber float64 `json:"discount_number"`
	DiscountAmount int64   `json:"discount_amount"`
}

// Active reports whether the coupon should be applied. Backends have been
// observed to echo placeholder codes for cleared coupons, so those count as
// inactive.
func (c *Coupon) Active() bool {
	if c == nil || c.ID <= 0 {
		return false
	}
	code := strings.TrimSpace(strings.ToLower(c.Code))
	switch code {
	case "", "0", "null", "false":
		return false
	}
	return true
}

// Subtotal computes the sum of price × quantity over all line items, in minor
// units. Always computed locally; see ReconcileTotals.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}

// ItemCount returns the total quantity across all line items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the line item matching the given product
// and variant label, or -1 if not present.
func (c *Cart) FindItemIndex(productID, variant string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Variant == variant {
			return i
		}
	}
	return -1
}
