package models

type MenuItem struct {
	ID           string  `json:"item_id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	IsPopular    bool    `json:"is_popular"`
}
