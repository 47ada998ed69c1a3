package models

import "time"

type Order struct {
	ID            string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	RestaurantID  string    `json:"restaurant_id"`
	OrderDate     time.Time `json:"order_date"`
	DayOfWeek     string    `json:"day_of_week"`
	MealTime      string    `json:"meal_time"`
	Status        string    `json:"status"`
	ItemsCount    int       `json:"items_count"`
	Subtotal      float64   `json:"subtotal"`
	Tax           float64   `json:"tax"`
	DeliveryFee   float64   `json:"delivery_fee"`
	Tip           float64   `json:"tip"`
	PromoDiscount float64   `json:"promo_discount"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
}

// OrderItem captures the menu price at generation time; later menu edits
// must not drift into historical orders.
type OrderItem struct {
	ID                  string  `json:"order_item_id"`
	OrderID             string  `json:"order_id"`
	ItemID              string  `json:"item_id"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions *string `json:"special_instructions"`
}
