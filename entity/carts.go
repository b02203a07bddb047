package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-customer staging area for prospective order items.
// Total must always equal the sum of the items' line totals.
type Cart struct {
	gorm.Model
	CustomerID uint `json:"customerId" gorm:"uniqueIndex"`
	Customer   User `json:"-"`

	Total int64 `json:"total"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
