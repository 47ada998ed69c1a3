package models

type Restaurant struct {
	ID             string  `json:"restaurant_id"`
	Name           string  `json:"name"`
	Cuisine        string  `json:"cuisine"`
	PriceRange     string  `json:"price_range"`
	Rating         float64 `json:"rating"`
	Address        string  `json:"address"`
	Area           string  `json:"area"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	IsDashpass     bool    `json:"is_dashpass"`
	AvgPrepTimeMin int     `json:"avg_prep_time_min"`
}
