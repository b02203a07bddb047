package services

import (
	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
)

// Pricing is pure arithmetic over line items. No state, safe to call
// from any goroutine.

// LineTotal returns unitPrice * quantity.
func LineTotal(unitPrice int64, quantity int) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	return unitPrice * int64(quantity), nil
}

// AggregateCartTotal sums the line totals of the cart items. An empty
// collection aggregates to 0.
func AggregateCartTotal(items []entity.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

// AggregateOrderTotal sums the line totals of the order items.
func AggregateOrderTotal(items []entity.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}
