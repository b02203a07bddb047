package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of a cart line, decoupled from the source
// CartItem so later cart mutations cannot touch a placed order.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"food"`

	Quantity    int        `json:"quantity"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`
	TotalPrice  int64      `json:"totalPrice"`
}
