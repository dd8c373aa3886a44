package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnonymousUserID is the only user the API ever acts as.
const AnonymousUserID = "user_001"

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Preferences struct {
	LikedCategories []string   `json:"likedCategories"`
	CuisineTypes    []string   `json:"cuisineTypes"`
	PriceRange      PriceRange `json:"priceRange"`
}

// DefaultPreferences is what a freshly created user starts with
func DefaultPreferences() Preferences {
	return Preferences{
		LikedCategories: []string{},
		CuisineTypes:    []string{},
		PriceRange:      PriceRange{Min: 0, Max: 1000},
	}
}

type User struct {
	ID          string                          `json:"id" gorm:"primaryKey"`
	Preferences datatypes.JSONType[Preferences] `json:"preferences"`
	CreatedAt   time.Time                       `json:"createdAt"`
}
