package entity

import (
	"gorm.io/gorm"
)

type IngredientCategory struct {
	gorm.Model
	Name         string `json:"name"`
	RestaurantID uint   `json:"restaurantId"`

	Items []IngredientsItem `gorm:"foreignKey:CategoryID" json:"items"`
}
