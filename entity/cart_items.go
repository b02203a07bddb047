package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodID uint `json:"foodId"`
	Food   Food `json:"food"`

	Quantity    int        `json:"quantity"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`

	// derived: food price * quantity
	TotalPrice int64 `json:"totalPrice"`
}
