package models

import "time"

// Delivery exists only for orders with status Completed, one per order.
// CustomerRating and IssueReported are absent rather than zero when the
// customer left no rating or reported nothing.
type Delivery struct {
	ID                      string    `json:"delivery_id"`
	OrderID                 string    `json:"order_id"`
	DriverID                string    `json:"driver_id"`
	EstimatedDeliveryTime   time.Time `json:"estimated_delivery_time"`
	ActualDeliveryTime      time.Time `json:"actual_delivery_time"`
	DeliveryDurationMinutes float64   `json:"delivery_duration_minutes"`
	Status                  string    `json:"status"`
	CustomerRating          *int      `json:"customer_rating"`
	IssueReported           *string   `json:"issue_reported"`
}
