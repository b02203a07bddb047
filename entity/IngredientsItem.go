package entity

import (
	"gorm.io/gorm"
)

type IngredientsItem struct {
	gorm.Model
	Name         string `json:"name"`
	CategoryID   uint   `json:"categoryId"`
	RestaurantID uint   `json:"restaurantId"`
	InStock      bool   `gorm:"default:true" json:"inStock"`
}
