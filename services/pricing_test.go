package services

import (
	"testing"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice int64
		quantity  int
		want      int64
		wantErr   error
	}{
		{name: "simple", unitPrice: 1000, quantity: 2, want: 2000},
		{name: "quantity_one", unitPrice: 750, quantity: 1, want: 750},
		{name: "zero_quantity", unitPrice: 1000, quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative_quantity", unitPrice: 1000, quantity: -3, wantErr: ErrInvalidQuantity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LineTotal(tc.unitPrice, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAggregateCartTotal(t *testing.T) {
	assert.Equal(t, int64(0), AggregateCartTotal(nil))
	assert.Equal(t, int64(0), AggregateCartTotal([]entity.CartItem{}))

	items := []entity.CartItem{
		{TotalPrice: 2000},
		{TotalPrice: 500},
		{TotalPrice: 1250},
	}
	assert.Equal(t, int64(3750), AggregateCartTotal(items))
}

func TestAggregateOrderTotal(t *testing.T) {
	assert.Equal(t, int64(0), AggregateOrderTotal(nil))

	items := []entity.OrderItem{{TotalPrice: 900}, {TotalPrice: 100}}
	assert.Equal(t, int64(1000), AggregateOrderTotal(items))
}
