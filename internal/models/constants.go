package models

const (
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
	OrderStatusRefunded  = "Refunded"

	DeliveryStatusDelivered = "Delivered"

	DriverStatusActive   = "Active"
	DriverStatusInactive = "Inactive"
	DriverStatusOnLeave  = "On leave"
	DriverStatusNew      = "New"
)

const (
	SegmentNew        = "New"
	SegmentOccasional = "Occasional"
	SegmentRegular    = "Regular"
	SegmentFrequent   = "Frequent"
	SegmentVIP        = "VIP"
)

// CustomerSegments is ordered from least to most engaged; SegmentWeights is
// index-aligned with it.
var CustomerSegments = []string{SegmentNew, SegmentOccasional, SegmentRegular, SegmentFrequent, SegmentVIP}

// SegmentWeights drives how the customer population splits across segments.
var SegmentWeights = []float64{0.15, 0.25, 0.3, 0.2, 0.1}

// SegmentOrderWeights drives how often a customer in each segment places
// orders. VIPs order ten times as often as new customers.
var SegmentOrderWeights = map[string]float64{
	SegmentNew:        0.5,
	SegmentOccasional: 1.0,
	SegmentRegular:    2.0,
	SegmentFrequent:   3.0,
	SegmentVIP:        5.0,
}

var Cuisines = []string{
	"Italian", "Chinese", "Mexican", "Indian", "American", "Japanese",
	"Thai", "Mediterranean", "Vietnamese", "Korean", "Greek", "French",
	"Spanish", "Middle Eastern", "Burger", "Pizza", "Sushi", "BBQ",
	"Vegetarian", "Vegan", "Seafood", "Steakhouse",
}

var Areas = []string{"Downtown", "Uptown", "Midtown", "West Side", "East Side"}

// PriceRanges are the four ordered restaurant price tiers. Each tier maps to
// a delivery-fee base and a menu-price distribution.
var (
	PriceRanges      = []string{"$", "$$", "$$$", "$$$$"}
	PriceRangeWeight = []float64{0.3, 0.4, 0.2, 0.1}

	BaseDeliveryFees = map[string]float64{
		"$":    2.99,
		"$$":   3.99,
		"$$$":  4.99,
		"$$$$": 5.99,
	}

	// Menu price mean and standard deviation per tier.
	MenuPriceMeans   = map[string]float64{"$": 8, "$$": 15, "$$$": 25, "$$$$": 40}
	MenuPriceStdDevs = map[string]float64{"$": 3, "$$": 5, "$$$": 8, "$$$$": 15}
)

var (
	MenuCategories     = []string{"Appetizer", "Main Course", "Side", "Dessert", "Beverage"}
	MenuCategoryWeight = []float64{0.2, 0.5, 0.15, 0.1, 0.05}
)

var (
	VehicleTypes       = []string{"Car", "Motorcycle", "Bicycle", "Scooter", "On foot"}
	VehicleTypeWeight  = []float64{0.6, 0.2, 0.1, 0.08, 0.02}
	DriverStatuses     = []string{DriverStatusActive, DriverStatusInactive, DriverStatusOnLeave, DriverStatusNew}
	DriverStatusWeight = []float64{0.7, 0.15, 0.1, 0.05}
)

// DaysOfWeek is Monday-first to line up with DayOfWeekWeight, which leans
// towards the weekend.
var (
	DaysOfWeek      = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	DayOfWeekWeight = []float64{0.1, 0.1, 0.12, 0.13, 0.15, 0.2, 0.2}
)

// MealTime is a named hour range used to bias order timestamps. EndHour may
// be smaller than StartHour, in which case the range wraps past midnight.
type MealTime struct {
	Name      string
	StartHour int
	EndHour   int
}

var (
	MealTimes = []MealTime{
		{Name: "Breakfast", StartHour: 6, EndHour: 10},
		{Name: "Lunch", StartHour: 11, EndHour: 14},
		{Name: "Afternoon", StartHour: 15, EndHour: 16},
		{Name: "Dinner", StartHour: 17, EndHour: 21},
		{Name: "Late Night", StartHour: 22, EndHour: 5},
	}
	MealTimeWeight = []float64{0.15, 0.3, 0.1, 0.35, 0.1}
)

var (
	OrderStatuses     = []string{OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded}
	OrderStatusWeight = []float64{0.93, 0.05, 0.02}

	PaymentMethods      = []string{"Credit Card", "Debit Card", "PayPal", "Apple Pay", "Google Pay", "Cash"}
	PaymentMethodWeight = []float64{0.4, 0.3, 0.15, 0.08, 0.05, 0.02}
)

var SpecialInstructions = []string{
	"No onions please",
	"Extra spicy",
	"Dressing on the side",
	"No cilantro",
	"Add extra sauce",
	"Well done",
	"Substitute fries for salad",
	"Extra napkins please",
	"No ice in the drink",
	"Gluten-free if possible",
}

var DeliveryIssues = []string{
	"Food was cold",
	"Missing items",
	"Late delivery",
	"Wrong order",
	"Damaged packaging",
	"Incorrect address",
	"Driver was unprofessional",
	"Food quality issue",
}

// DeliveryRatings and DeliveryRatingWeight skew heavily towards five stars.
var (
	DeliveryRatings      = []int{1, 2, 3, 4, 5}
	DeliveryRatingWeight = []float64{0.01, 0.04, 0.1, 0.25, 0.6}
)

const (
	TaxRate            = 0.08
	MaxTipRate         = 0.25
	CrossAreaFee       = 2.0
	NearbyAreaWeight   = 3.0
	DashpassPairWeight = 1.5
	PromoProbability   = 0.15
	PromoRate          = 0.20
	PromoCap           = 10.0

	BaseDeliveryMinutes   = 30.0
	RushHourFactor        = 1.3
	WeekendDeliveryFactor = 1.2
	MinDeliveryMinutes    = 5.0
)
