package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `json:"name"`
	RestaurantID uint   `json:"restaurantId"`
}
