package models

import "time"

// Enquiry is a customer contact request. Records are immutable after
// creation and never reference images.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	PackageID uint      `json:"package_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyCount is one calendar-month bucket of enquiry volume.
// Buckets span years: all January enquiries land in the same bucket.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
