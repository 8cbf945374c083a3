package models

import "time"

// Visa is a visa service offering with a single optional image.
type Visa struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Country           string    `json:"country"`
	VisaType          string    `json:"visa_type"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	ProcessingTime    string    `json:"processing_time"`
	RequiredDocuments []string  `gorm:"serializer:json" json:"required_documents"`
	Image             string    `json:"image"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
