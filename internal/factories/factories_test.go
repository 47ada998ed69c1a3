package factories

import (
	"math/rand"
	"testing"
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Seed:                  42,
		PeriodStart:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		RestaurantCount:       10,
		AvgItemsPerRestaurant: 10,
		CustomerCount:         10,
		DriverCount:           10,
		OrderCount:            10,
		OutputFormat:          "csv",
	}
}

func newTestStreams(seed int64) (*rng.Engine, faker.Faker) {
	return rng.New(seed), faker.NewWithSeed(rand.NewSource(seed))
}

func TestCreateRestaurant(t *testing.T) {
	engine, fake := newTestStreams(42)
	factory := NewRestaurantFactory(engine, fake)

	for i := 0; i < 50; i++ {
		r, err := factory.CreateRestaurant(testConfig())
		require.NoError(t, err)

		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Name)
		assert.Contains(t, models.Cuisines, r.Cuisine)
		assert.Contains(t, models.PriceRanges, r.PriceRange)
		assert.Contains(t, models.Areas, r.Area)
		assert.GreaterOrEqual(t, r.Rating, 2.5)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.GreaterOrEqual(t, r.Latitude, 40.5)
		assert.LessOrEqual(t, r.Latitude, 41.0)
		assert.GreaterOrEqual(t, r.Longitude, -74.0)
		assert.LessOrEqual(t, r.Longitude, -73.5)
		assert.GreaterOrEqual(t, r.AvgPrepTimeMin, 10)
		assert.LessOrEqual(t, r.AvgPrepTimeMin, 40)
	}
}

func TestCreateMenuMinimumSize(t *testing.T) {
	engine, fake := newTestStreams(42)
	restaurantFactory := NewRestaurantFactory(engine, fake)
	menuFactory := NewMenuItemFactory(engine, fake)

	restaurant, err := restaurantFactory.CreateRestaurant(testConfig())
	require.NoError(t, err)

	// An average of 1 pushes the normal draw well below the floor.
	menu, err := menuFactory.CreateMenu(restaurant, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(menu), 5)
}

func TestCreateMenuItems(t *testing.T) {
	engine, fake := newTestStreams(7)
	restaurantFactory := NewRestaurantFactory(engine, fake)
	menuFactory := NewMenuItemFactory(engine, fake)

	restaurant, err := restaurantFactory.CreateRestaurant(testConfig())
	require.NoError(t, err)

	menu, err := menuFactory.CreateMenu(restaurant, 20)
	require.NoError(t, err)

	for _, item := range menu {
		assert.Equal(t, restaurant.ID, item.RestaurantID)
		assert.NotEmpty(t, item.Name)
		assert.GreaterOrEqual(t, item.Price, 5.0, "menu prices are floored at $5")
		assert.Contains(t, models.MenuCategories, item.Category)
	}
}

func TestCreateCustomer(t *testing.T) {
	engine, fake := newTestStreams(42)
	factory := NewCustomerFactory(engine, fake)
	cfg := testConfig()

	for i := 0; i < 50; i++ {
		c, err := factory.CreateCustomer(cfg)
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Email)
		assert.Contains(t, models.CustomerSegments, c.Segment)
		assert.Contains(t, models.Areas, c.Area)
		assert.False(t, c.RegistrationDate.Before(cfg.PeriodStart.AddDate(-2, 0, 0)))
		assert.True(t, c.RegistrationDate.Before(cfg.PeriodEnd.AddDate(0, 0, 1)))
	}
}

func TestCreateDriver(t *testing.T) {
	engine, fake := newTestStreams(42)
	factory := NewDriverFactory(engine, fake)
	cfg := testConfig()

	for i := 0; i < 50; i++ {
		d, err := factory.CreateDriver(cfg)
		require.NoError(t, err)

		assert.NotEmpty(t, d.ID)
		assert.Contains(t, models.VehicleTypes, d.VehicleType)
		assert.Contains(t, models.DriverStatuses, d.Status)
		assert.GreaterOrEqual(t, d.Rating, 3.0)
		assert.LessOrEqual(t, d.Rating, 5.0)
		assert.GreaterOrEqual(t, d.AvgDeliveriesPerWeek, 10)
		assert.LessOrEqual(t, d.AvgDeliveriesPerWeek, 50)
		assert.False(t, d.StartDate.Before(cfg.PeriodStart.AddDate(-3, 0, 0)))
	}
}
