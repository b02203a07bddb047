package entity

import (
	"strings"

	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID     uint   `json:"userId"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// EqualValue compares two addresses field by field, ignoring case and
// surrounding whitespace. Used for dedup against a user's saved addresses.
func (a Address) EqualValue(b Address) bool {
	eq := func(x, y string) bool {
		return strings.EqualFold(strings.TrimSpace(x), strings.TrimSpace(y))
	}
	return eq(a.Street, b.Street) &&
		eq(a.City, b.City) &&
		eq(a.State, b.State) &&
		eq(a.PostalCode, b.PostalCode) &&
		eq(a.Country, b.Country)
}
