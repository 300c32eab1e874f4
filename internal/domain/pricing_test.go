package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func items(prices ...int64) []CartItem {
	out := make([]CartItem, 0, len(prices))
	for i, p := range prices {
		out = append(out, CartItem{
			ProductID: string(rune('a' + i)),
			Name:      "item",
			Price:     p,
			Quantity:  1,
		})
	}
	return out
}

func TestReconcileTotals_LocalOnly(t *testing.T) {
	totals := ReconcileTotals(
		[]CartItem{{ProductID: "p1", Price: 20000, Quantity: 2}},
		nil, nil,
	)

	assert.Equal(t, int64(40000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(40000), totals.Total)
	assert.False(t, totals.BackendAccepted)
}

func TestReconcileTotals_PercentageCoupon(t *testing.T) {
	// 2 x 200.00 with a 10% coupon: 400.00 subtotal, 40.00 off.
	coupon := &Coupon{ID: 7, Code: "SAVE10", DiscountType: DiscountTypePercentage, DiscountNumber: 10}
	totals := ReconcileTotals(
		[]CartItem{{ProductID: "p1", Price: 20000, Quantity: 2}},
		coupon, nil,
	)

	assert.Equal(t, int64(40000), totals.Subtotal)
	assert.Equal(t, int64(4000), totals.Discount)
	assert.Equal(t, int64(36000), totals.Total)
}

func TestReconcileTotals_FixedAmountWinsOverPercentage(t *testing.T) {
	coupon := &Coupon{
		ID:             7,
		Code:           "FIX",
		DiscountType:   DiscountTypePercentage,
		DiscountNumber: 10,
		DiscountAmount: 5000,
	}
	totals := ReconcileTotals(items(20000, 20000), coupon, nil)

	assert.Equal(t, int64(5000), totals.Discount)
	assert.Equal(t, int64(35000), totals.Total)
}

func TestReconcileTotals_InactiveCouponIgnored(t *testing.T) {
	for _, code := range []string{"", "0", "null", "false", " NULL "} {
		coupon := &Coupon{ID: 7, Code: code, DiscountType: DiscountTypePercentage, DiscountNumber: 50}
		totals := ReconcileTotals(items(10000), coupon, nil)
		assert.Equal(t, int64(0), totals.Discount, "code %q", code)
		assert.Equal(t, int64(10000), totals.Total, "code %q", code)
	}

	coupon := &Coupon{ID: 0, Code: "REAL", DiscountType: DiscountTypePercentage, DiscountNumber: 50}
	totals := ReconcileTotals(items(10000), coupon, nil)
	assert.Equal(t, int64(0), totals.Discount)
}

func TestReconcileTotals_BackendWithinTolerance(t *testing.T) {
	// Local total 400.00; backend says 380.00 (5% off local). Within the band,
	// so the backend number wins.
	totals := ReconcileTotals(items(20000, 20000), nil, &CartSummary{FinalPrice: "380.00"})

	assert.Equal(t, int64(38000), totals.Total)
	assert.True(t, totals.BackendAccepted)
	assert.Equal(t, int64(40000), totals.Subtotal, "subtotal stays local")
}

func TestReconcileTotals_BackendOutsideTolerance(t *testing.T) {
	// Backend reports a wildly wrong price (misreported variant pricing).
	totals := ReconcileTotals(items(20000, 20000), nil, &CartSummary{FinalPrice: "20.00"})

	assert.Equal(t, int64(40000), totals.Total)
	assert.False(t, totals.BackendAccepted)
}

func TestReconcileTotals_BackendToleranceBoundary(t *testing.T) {
	// Local total 100.00. Exactly 50% deviation is still accepted; just over
	// is not.
	at := ReconcileTotals(items(10000), nil, &CartSummary{FinalPrice: "50.00"})
	assert.True(t, at.BackendAccepted)
	assert.Equal(t, int64(5000), at.Total)

	over := ReconcileTotals(items(10000), nil, &CartSummary{FinalPrice: "49.99"})
	assert.False(t, over.BackendAccepted)
	assert.Equal(t, int64(10000), over.Total)
}

func TestReconcileTotals_BackendGarbageRejected(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "NaN", "Inf", "-Inf", "0", "0.00", "-12.50"} {
		totals := ReconcileTotals(items(10000), nil, &CartSummary{FinalPrice: raw})
		assert.Equal(t, int64(10000), totals.Total, "raw %q", raw)
		assert.False(t, totals.BackendAccepted, "raw %q", raw)
	}
}

func TestReconcileTotals_ZeroQuantityLinesSkipped(t *testing.T) {
	totals := ReconcileTotals([]CartItem{
		{ProductID: "p1", Price: 10000, Quantity: 0},
		{ProductID: "p2", Price: 5000, Quantity: 3},
		{ProductID: "p3", Price: 2000, Quantity: -1},
	}, nil, nil)

	assert.Equal(t, int64(15000), totals.Subtotal)
}

func TestReconcileTotals_SafetyFloor(t *testing.T) {
	// A non-positive total with items present falls back to the local
	// subtotal-minus-discount calculation.
	coupon := &Coupon{ID: 3, Code: "BIG", DiscountAmount: 15000}
	totals := ReconcileTotals(items(10000), coupon, nil)

	assert.Equal(t, int64(10000), totals.Subtotal)
	assert.Equal(t, int64(-5000), totals.Total, "floor re-derives subtotal minus discount")
	assert.False(t, totals.BackendAccepted)
}

func TestReconcileTotals_EmptyCart(t *testing.T) {
	totals := ReconcileTotals(nil, nil, &CartSummary{FinalPrice: "99.99"})

	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Total)
	assert.False(t, totals.BackendAccepted, "backend price needs a positive local calculation")
}

func TestReconcileTotals_SubtotalProperty(t *testing.T) {
	// The subtotal is always the local sum regardless of coupon and backend
	// noise.
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(6)
		var lineItems []CartItem
		var want int64
		for j := 0; j < n; j++ {
			price := int64(rng.Intn(500000))
			qty := rng.Intn(5)
			lineItems = append(lineItems, CartItem{ProductID: "p", Price: price, Quantity: qty})
			if qty > 0 {
				want += price * int64(qty)
			}
		}

		coupon := &Coupon{ID: int64(rng.Intn(3)), Code: "C", DiscountType: DiscountTypePercentage, DiscountNumber: float64(rng.Intn(100))}
		summary := &CartSummary{FinalPrice: []string{"", "abc", "123.45", "-1"}[rng.Intn(4)]}

		totals := ReconcileTotals(lineItems, coupon, summary)
		assert.Equal(t, want, totals.Subtotal)
	}
}

func TestReconcileTotals_Deterministic(t *testing.T) {
	lineItems := items(12345, 67890)
	coupon := &Coupon{ID: 1, Code: "C", DiscountType: DiscountTypePercentage, DiscountNumber: 15}
	summary := &CartSummary{FinalPrice: "700.00"}

	first := ReconcileTotals(lineItems, coupon, summary)
	second := ReconcileTotals(lineItems, coupon, summary)
	assert.Equal(t, first, second)
}
