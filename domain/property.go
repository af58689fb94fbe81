package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property types and listing statuses as stored in the database.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeCommercial = "commercial"
	PropertyTypeLand       = "land"

	ListingStatusAvailable = "available"
	ListingStatusSold      = "sold"
	ListingStatusReserved  = "reserved"
)

// Property represents a marketed real-estate listing.
type Property struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Location       string          `json:"location"`
	Area           string          `json:"area,omitempty"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Images         []string        `json:"images,omitempty"`
	VirtualTourURL string          `json:"virtual_tour_url,omitempty"`
	Bedrooms       *int            `json:"bedrooms,omitempty"`
	Bathrooms      *int            `json:"bathrooms,omitempty"`
	Sqft           *int            `json:"sqft,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (p *Property) IsAvailable() bool {
	return p != nil && p.Status == ListingStatusAvailable
}

// ValidPropertyType reports whether t is one of the persisted property types.
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial, PropertyTypeLand:
		return true
	}
	return false
}

// ValidListingStatus reports whether s is a persisted listing status.
func ValidListingStatus(s string) bool {
	switch s {
	case ListingStatusAvailable, ListingStatusSold, ListingStatusReserved:
		return true
	}
	return false
}
