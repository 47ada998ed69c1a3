package models

import "time"

type Driver struct {
	ID                   string    `json:"driver_id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	VehicleType          string    `json:"vehicle_type"`
	Rating               float64   `json:"rating"`
	StartDate            time.Time `json:"start_date"`
	AvgDeliveriesPerWeek int       `json:"avg_deliveries_per_week"`
	Status               string    `json:"status"`
}
