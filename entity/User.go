package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses"`

	// favorite restaurants
	Favorites []Restaurant `gorm:"many2many:user_favorites;" json:"favorites"`

	// Relations — preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
	Orders           []Order      `gorm:"foreignKey:CustomerID" json:"-"`
}
