package models

import "time"

// Activity is one itinerary entry of a travel package. Activities are
// embedded in the package record, not rows of their own; their images are
// reconciled per activity on update.
type Activity struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Package is a bookable travel package with a thumbnail, a bounded image
// gallery, and an itinerary of activities.
type Package struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Days        int        `json:"days"`
	Nights      int        `json:"nights"`
	Featured    bool       `json:"featured"`
	Thumbnail   string     `json:"thumbnail"`
	Images      []string   `gorm:"serializer:json" json:"images"`
	Activities  []Activity `gorm:"serializer:json" json:"activities"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
