package models

import "time"

// Hotel is a bookable hotel listing with a single bounded image list.
type Hotel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	Rating        float64   `json:"rating"`
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`
	Images        []string  `gorm:"serializer:json" json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
