package domain

import (
	"math"
	"strconv"
	"strings"
)

// BackendToleranceRatio is the maximum relative deviation at which a
// backend-reported final price is still accepted. Variant pricing has been
// observed to be misreported by the commerce API, so the backend number is
// cross-checked against the local calculation and silently discarded when it
// falls outside this band.
const BackendToleranceRatio = 0.5

// CartSummary is the backend-reported view of a cart, consumed only for
// cross-checking. FinalPrice is the raw decimal string as returned by the
// API (major units).
type CartSummary struct {
	FinalPrice string  `json:"final_price"`
	Coupon     *Coupon `json:"coupon,omitempty"`
}

// Totals is the reconciled pricing for a cart, in minor units.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`

	// BackendAccepted records whether the backend-reported final price
	// survived the tolerance check and was used as the total.
	BackendAccepted bool `json:"-"`
}

// ReconcileTotals computes trustworthy subtotal, discount, and final total for
// the given line items, active coupon, and optional backend summary.
//
// The subtotal is always the local Σ price×quantity. A backend final price is
// accepted only when it parses to a positive number, the local calculation is
// positive, and the two agree within BackendToleranceRatio; otherwise the
// local calculation wins. A clearly wrong backend number is overridden
// silently rather than surfaced as an error.
//
// The function is pure: it never errors, never mutates its inputs, and is
// deterministic for the same inputs.
func ReconcileTotals(items []CartItem, coupon *Coupon, summary *CartSummary) Totals {
	var subtotal int64
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		subtotal += item.Price * int64(item.Quantity)
	}

	var discount int64
	if coupon.Active() {
		switch {
		case coupon.DiscountAmount > 0:
			discount = coupon.DiscountAmount
		case coupon.DiscountType == DiscountTypePercentage && coupon.DiscountNumber > 0:
			discount = int64(math.Round(float64(subtotal) * coupon.DiscountNumber / 100))
		}
	}

	calculated := subtotal - discount
	total := calculated
	accepted := false

	if summary != nil {
		if backend, ok := parseBackendPrice(summary.FinalPrice); ok && calculated > 0 {
			diff := math.Abs(float64(backend - calculated))
			if diff/float64(calculated) <= BackendToleranceRatio {
				total = backend
				accepted = true
			}
		}
	}

	// Safety floor: a cart with items and a positive subtotal never shows a
	// non-positive total.
	if total <= 0 && len(items) > 0 && subtotal > 0 {
		total = subtotal - discount
		accepted = false
	}

	return Totals{
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           total,
		BackendAccepted: accepted,
	}
}

// parseBackendPrice parses a decimal major-unit price string into minor units.
// Returns false for empty, malformed, or non-positive values.
func parseBackendPrice(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return int64(math.Round(f * 100)), true
}
