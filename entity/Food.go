package entity

import (
	"time"

	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	// smallest currency unit
	Price int64 `json:"price"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Vegetarian   bool      `json:"vegetarian"`
	Seasonal     bool      `json:"seasonal"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreationDate time.Time `json:"creationDate"`

	Ingredients []IngredientsItem `gorm:"many2many:food_ingredients;" json:"ingredients"`
}
