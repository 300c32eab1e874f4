package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCouponActive(t *testing.T) {
	tests := []struct {
		name   string
		coupon *Coupon
		want   bool
	}{
		{"nil", nil, false},
		{"zero id", &Coupon{ID: 0, Code: "SAVE"}, false},
		{"negative id", &Coupon{ID: -1, Code: "SAVE"}, false},
		{"empty code", &Coupon{ID: 1, Code: ""}, false},
		{"placeholder zero", &Coupon{ID: 1, Code: "0"}, false},
		{"placeholder null", &Coupon{ID: 1, Code: "NULL"}, false},
		{"placeholder false", &Coupon{ID: 1, Code: "false"}, false},
		{"whitespace placeholder", &Coupon{ID: 1, Code: "  null  "}, false},
		{"valid", &Coupon{ID: 1, Code: "SAVE10"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Active())
		})
	}
}

func TestCartSubtotalAndCount(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ProductID: "p1", Price: 1500, Quantity: 2},
		{ProductID: "p2", Price: 700, Quantity: 3},
	}}

	assert.Equal(t, int64(5100), cart.Subtotal())
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartFindItemIndex(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ProductID: "p1", Variant: "M"},
		{ProductID: "p1", Variant: "L"},
		{ProductID: "p2"},
	}}

	assert.Equal(t, 0, cart.FindItemIndex("p1", "M"))
	assert.Equal(t, 1, cart.FindItemIndex("p1", "L"))
	assert.Equal(t, 2, cart.FindItemIndex("p2", ""))
	assert.Equal(t, -1, cart.FindItemIndex("p1", "XL"))
	assert.Equal(t, -1, cart.FindItemIndex("p3", ""))
}
