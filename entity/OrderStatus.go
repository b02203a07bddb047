package entity

// Order status tokens. PENDING is the initial state; DELIVERED and
// COMPLETED are terminal. Transitions are validated by membership in
// this set only — callers are trusted on ordering.
const (
	OrderStatusPending        = "PENDING"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCompleted      = "COMPLETED"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:        true,
	OrderStatusOutForDelivery: true,
	OrderStatusDelivered:      true,
	OrderStatusCompleted:      true,
}

func ValidOrderStatus(status string) bool {
	return orderStatuses[status]
}
