package generator

import (
	"math"
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"
)

// generateOrders runs the requested number of order attempts. An attempt
// whose restaurant has no menu items is abandoned without emitting anything,
// so the final order count can fall short of the target.
func (g *Generator) generateOrders(ds *models.Dataset) error {
	bar := progressbar.Default(int64(g.Config.OrderCount), "orders")
	defer bar.Close()

	for i := 0; i < g.Config.OrderCount; i++ {
		_ = bar.Add(1)

		order, items, err := g.synthesizeOrder(ds)
		if err != nil {
			return err
		}
		if order == nil {
			ds.SkippedOrders++
			continue
		}
		ds.Orders = append(ds.Orders, order)
		ds.OrderItems = append(ds.OrderItems, items...)
	}
	return nil
}

// synthesizeOrder returns (nil, nil, nil) when the attempt is skipped.
func (g *Generator) synthesizeOrder(ds *models.Dataset) (*models.Order, []*models.OrderItem, error) {
	customer, err := g.pickCustomer(ds.Customers)
	if err != nil {
		return nil, nil, err
	}

	dayOfWeek, err := rng.WeightedChoice(g.Rng, models.DaysOfWeek, models.DayOfWeekWeight)
	if err != nil {
		return nil, nil, err
	}

	mealTime, orderDate, err := g.orderTimestamp()
	if err != nil {
		return nil, nil, err
	}

	restaurant, err := g.pickRestaurant(customer, ds.Restaurants)
	if err != nil {
		return nil, nil, err
	}

	status, err := rng.WeightedChoice(g.Rng, models.OrderStatuses, models.OrderStatusWeight)
	if err != nil {
		return nil, nil, err
	}

	paymentMethod, err := rng.WeightedChoice(g.Rng, models.PaymentMethods, models.PaymentMethodWeight)
	if err != nil {
		return nil, nil, err
	}

	itemsCount := int(math.Round(g.Rng.LogNormal(1.1, 0.3)))
	if itemsCount < 1 {
		itemsCount = 1
	}

	menu := g.menuByRestaurant[restaurant.ID]
	if len(menu) == 0 {
		return nil, nil, nil
	}

	// Sample with replacement; ordering the same dish twice is two
	// references to the same item id.
	sampled := make([]*models.MenuItem, itemsCount)
	quantities := make([]int, itemsCount)
	for i := 0; i < itemsCount; i++ {
		sampled[i] = g.itemByID[menu[g.Rng.Intn(len(menu))]]
		quantities[i] = 1
		if g.Rng.Chance(0.2) {
			quantities[i] = g.Rng.IntBetween(2, 4)
		}
	}

	// The legacy subtotal counts each sampled reference once and ignores
	// the per-line quantity assigned above. Downstream reports assume that
	// definition, so it stays the default; consistent_totals opts into
	// quantity-aware subtotals.
	subtotal := 0.0
	for i, item := range sampled {
		if g.Config.ConsistentTotals {
			subtotal += item.Price * float64(quantities[i])
		} else {
			subtotal += item.Price
		}
	}
	subtotal = round2(subtotal)

	tax := round2(subtotal * models.TaxRate)
	deliveryFee := g.deliveryFee(customer, restaurant)
	tip := round2(subtotal * g.Rng.UniformRange(0, models.MaxTipRate))

	promoDiscount := 0.0
	if g.Rng.Chance(models.PromoProbability) {
		promoDiscount = round2(math.Min(models.PromoCap, subtotal*models.PromoRate))
	}

	total := round2(subtotal + tax + deliveryFee + tip - promoDiscount)
	if total < 0 {
		total = 0
	}

	order := &models.Order{
		ID:            cuid.New(),
		CustomerID:    customer.ID,
		RestaurantID:  restaurant.ID,
		OrderDate:     orderDate,
		DayOfWeek:     dayOfWeek,
		MealTime:      mealTime.Name,
		Status:        status,
		ItemsCount:    itemsCount,
		Subtotal:      subtotal,
		Tax:           tax,
		DeliveryFee:   deliveryFee,
		Tip:           tip,
		PromoDiscount: promoDiscount,
		Total:         total,
		PaymentMethod: paymentMethod,
	}

	items := make([]*models.OrderItem, 0, itemsCount)
	for i, item := range sampled {
		var instructions *string
		if g.Rng.Chance(0.3) {
			note := models.SpecialInstructions[g.Rng.Intn(len(models.SpecialInstructions))]
			instructions = &note
		}

		items = append(items, &models.OrderItem{
			ID:                  cuid.New(),
			OrderID:             order.ID,
			ItemID:              item.ID,
			Quantity:            quantities[i],
			Price:               item.Price,
			SpecialInstructions: instructions,
		})
	}

	return order, items, nil
}

// pickCustomer weights customers by loyalty segment, so frequent customers
// place proportionally more orders.
func (g *Generator) pickCustomer(customers []*models.Customer) (*models.Customer, error) {
	weights := make([]float64, len(customers))
	for i, customer := range customers {
		weights[i] = models.SegmentOrderWeights[customer.Segment]
	}
	return rng.WeightedChoice(g.Rng, customers, weights)
}

// pickRestaurant recomputes the selection weights for every order: the
// customer's area, the restaurant rating, and a shared subscription all
// raise the odds. The weights depend on the customer, so there is no static
// distribution to reuse across orders.
func (g *Generator) pickRestaurant(customer *models.Customer, restaurants []*models.Restaurant) (*models.Restaurant, error) {
	weights := make([]float64, len(restaurants))
	for i, restaurant := range restaurants {
		ratingFactor := restaurant.Rating / 5.0 * 2.0

		nearbyFactor := 1.0
		if restaurant.Area == customer.Area {
			nearbyFactor = models.NearbyAreaWeight
		}

		dashpassFactor := 1.0
		if restaurant.IsDashpass && customer.HasDashpass {
			dashpassFactor = models.DashpassPairWeight
		}

		weights[i] = nearbyFactor * ratingFactor * dashpassFactor
	}
	return rng.WeightedChoice(g.Rng, restaurants, weights)
}

// orderTimestamp combines a uniform date within the configured period with
// a meal-time biased hour and a uniform minute and second.
func (g *Generator) orderTimestamp() (models.MealTime, time.Time, error) {
	mealTime, err := rng.WeightedChoice(g.Rng, models.MealTimes, models.MealTimeWeight)
	if err != nil {
		return models.MealTime{}, time.Time{}, err
	}

	day := g.Rng.TimeBetween(g.Config.PeriodStart, g.Config.PeriodEnd)
	ts := time.Date(day.Year(), day.Month(), day.Day(),
		g.hourForMealTime(mealTime), g.Rng.Intn(60), g.Rng.Intn(60), 0, day.Location())
	return mealTime, ts, nil
}

// hourForMealTime draws an hour within the bucket's range. Late Night wraps
// midnight: 60% of draws land before it, 40% after.
func (g *Generator) hourForMealTime(mealTime models.MealTime) int {
	if mealTime.StartHour < mealTime.EndHour {
		return g.Rng.IntBetween(mealTime.StartHour, mealTime.EndHour)
	}
	if g.Rng.Chance(0.6) {
		return g.Rng.IntBetween(mealTime.StartHour, 23)
	}
	return g.Rng.IntBetween(0, mealTime.EndHour)
}

// deliveryFee is zero only when both sides are enrolled in the fee-waiver
// program; otherwise the restaurant's price tier sets the base and crossing
// areas adds a flat surcharge.
func (g *Generator) deliveryFee(customer *models.Customer, restaurant *models.Restaurant) float64 {
	if customer.HasDashpass && restaurant.IsDashpass {
		return 0
	}
	fee := models.BaseDeliveryFees[restaurant.PriceRange]
	if restaurant.Area != customer.Area {
		fee += models.CrossAreaFee
	}
	return round2(fee)
}
