package models

import "time"

// Admin is the single privileged credential record. The password column
// holds a bcrypt hash, never plaintext.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats holds per-entity record totals for the admin dashboard.
type Stats struct {
	Packages  int64 `json:"packages"`
	Hotels    int64 `json:"hotels"`
	Visas     int64 `json:"visas"`
	Flights   int64 `json:"flights"`
	Enquiries int64 `json:"enquiries"`
}
