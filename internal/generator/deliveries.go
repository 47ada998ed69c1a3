package generator

import (
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/lucsky/cuid"
)

// generateDeliveries emits exactly one delivery per completed order, in
// order sequence. Cancelled and refunded orders get none.
func (g *Generator) generateDeliveries(ds *models.Dataset) error {
	for _, order := range ds.Orders {
		if order.Status != models.OrderStatusCompleted {
			continue
		}

		delivery, err := g.synthesizeDelivery(order, ds.Drivers)
		if err != nil {
			return err
		}
		ds.Deliveries = append(ds.Deliveries, delivery)
	}
	return nil
}

func (g *Generator) synthesizeDelivery(order *models.Order, drivers []*models.Driver) (*models.Delivery, error) {
	driver, err := g.pickDriver(drivers)
	if err != nil {
		return nil, err
	}

	estimatedMinutes := models.BaseDeliveryMinutes *
		rushFactor(order.OrderDate) *
		weekendFactor(order.OrderDate) *
		g.Rng.UniformRange(0.9, 1.4) // weather

	actualMinutes := estimatedMinutes + g.Rng.Normal(0, 10)
	if actualMinutes < models.MinDeliveryMinutes {
		actualMinutes = models.MinDeliveryMinutes
	}

	var rating *int
	if g.Rng.Chance(0.7) {
		r, err := rng.WeightedChoice(g.Rng, models.DeliveryRatings, models.DeliveryRatingWeight)
		if err != nil {
			return nil, err
		}
		rating = &r
	}

	var issue *string
	if g.Rng.Chance(0.1) {
		text := models.DeliveryIssues[g.Rng.Intn(len(models.DeliveryIssues))]
		issue = &text
	}

	return &models.Delivery{
		ID:                      cuid.New(),
		OrderID:                 order.ID,
		DriverID:                driver.ID,
		EstimatedDeliveryTime:   order.OrderDate.Add(time.Duration(int(estimatedMinutes)) * time.Minute),
		ActualDeliveryTime:      order.OrderDate.Add(time.Duration(int(actualMinutes)) * time.Minute),
		DeliveryDurationMinutes: actualMinutes,
		Status:                  models.DeliveryStatusDelivered,
		CustomerRating:          rating,
		IssueReported:           issue,
	}, nil
}

// pickDriver weights drivers by weekly delivery volume, so busier drivers
// are assigned more often.
func (g *Generator) pickDriver(drivers []*models.Driver) (*models.Driver, error) {
	weights := make([]float64, len(drivers))
	for i, driver := range drivers {
		weights[i] = float64(driver.AvgDeliveriesPerWeek)
	}
	return rng.WeightedChoice(g.Rng, drivers, weights)
}

// rushFactor slows deliveries during the weekday lunch rush and the evening
// dinner rush. The dinner window applies on every day of the week.
func rushFactor(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	lunchRush := isWeekday(t) && hour >= 11.5 && hour <= 13.5
	dinnerRush := hour >= 17.5 && hour <= 19.5
	if lunchRush || dinnerRush {
		return models.RushHourFactor
	}
	return 1.0
}

func weekendFactor(t time.Time) float64 {
	if !isWeekday(t) {
		return models.WeekendDeliveryFactor
	}
	return 1.0
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
