package models

import "time"

type Customer struct {
	ID               string    `json:"customer_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	Area             string    `json:"area"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	RegistrationDate time.Time `json:"registration_date"`
	HasDashpass      bool      `json:"has_dashpass"`
	Segment          string    `json:"segment"`
}
