package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable record of a placed purchase. Items and TotalPrice
// are snapshots taken at checkout; only OrderStatus changes afterwards.
type Order struct {
	gorm.Model
	CustomerID uint `json:"customerId"`
	Customer   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	DeliveryAddressID uint    `json:"deliveryAddressId"`
	DeliveryAddress   Address `json:"deliveryAddress"`

	OrderStatus string `gorm:"not null;default:PENDING" json:"orderStatus"`

	TotalItem  int   `json:"totalItem"`
	TotalPrice int64 `json:"totalPrice"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
