package entity

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	CuisineType        string    `json:"cuisineType"`
	OpeningHours       string    `json:"openingHours"`
	ContactInformation string    `json:"contactInformation"`
	Open               bool      `json:"open"`
	RegistrationDate   time.Time `json:"registrationDate"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"address"`

	// preload only on detail endpoints
	Foods  []Food  `gorm:"foreignKey:RestaurantID" json:"-"`
	Orders []Order `gorm:"foreignKey:RestaurantID" json:"-"`
}
