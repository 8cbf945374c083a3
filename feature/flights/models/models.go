package models

import "time"

// Flight is a bookable flight listing with an optional airline logo.
type Flight struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Airline      string    `json:"airline"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	DepartureAt  time.Time `json:"departure_at"`
	ArrivalAt    time.Time `json:"arrival_at"`
	Price        float64   `json:"price"`
	SeatClass    string    `json:"seat_class"`
	Logo         string    `json:"logo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
