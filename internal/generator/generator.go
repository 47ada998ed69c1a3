// Package generator runs the one-shot dataset synthesis: base entities
// first, then orders and their line items, then deliveries for every
// completed order. All randomness flows through a single shared engine, so
// generation is strictly sequential.
package generator

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/delivergen/delivergen/internal/factories"
	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
)

type Generator struct {
	Config *models.Config
	Rng    *rng.Engine

	fake faker.Faker

	// Lookup indices built once after the factories run and read-only for
	// the remainder of the run.
	menuByRestaurant map[string][]string
	itemByID         map[string]*models.MenuItem
}

func New(config *models.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		Config: config,
		Rng:    rng.New(config.Seed),
		// Text fields come from a separate faker stream; they carry no
		// statistical meaning, so they don't disturb the main draw sequence.
		fake:             faker.NewWithSeed(rand.NewSource(config.Seed)),
		menuByRestaurant: make(map[string][]string),
		itemByID:         make(map[string]*models.MenuItem),
	}, nil
}

// Generate produces the whole dataset in the fixed order restaurants →
// menu items → customers → drivers → orders → deliveries.
func (g *Generator) Generate() (*models.Dataset, error) {
	start := time.Now()
	ds := &models.Dataset{}

	restaurantFactory := factories.NewRestaurantFactory(g.Rng, g.fake)
	menuItemFactory := factories.NewMenuItemFactory(g.Rng, g.fake)
	customerFactory := factories.NewCustomerFactory(g.Rng, g.fake)
	driverFactory := factories.NewDriverFactory(g.Rng, g.fake)

	for i := 0; i < g.Config.RestaurantCount; i++ {
		restaurant, err := restaurantFactory.CreateRestaurant(g.Config)
		if err != nil {
			return nil, err
		}
		ds.Restaurants = append(ds.Restaurants, restaurant)
	}

	for _, restaurant := range ds.Restaurants {
		menu, err := menuItemFactory.CreateMenu(restaurant, g.Config.AvgItemsPerRestaurant)
		if err != nil {
			return nil, err
		}
		ds.MenuItems = append(ds.MenuItems, menu...)
	}

	for i := 0; i < g.Config.CustomerCount; i++ {
		customer, err := customerFactory.CreateCustomer(g.Config)
		if err != nil {
			return nil, err
		}
		ds.Customers = append(ds.Customers, customer)
	}

	for i := 0; i < g.Config.DriverCount; i++ {
		driver, err := driverFactory.CreateDriver(g.Config)
		if err != nil {
			return nil, err
		}
		ds.Drivers = append(ds.Drivers, driver)
	}

	g.buildIndices(ds)

	if err := g.generateOrders(ds); err != nil {
		return nil, err
	}
	if err := g.generateDeliveries(ds); err != nil {
		return nil, err
	}

	log.Printf("generated %d restaurants, %d menu items, %d customers, %d drivers, %d orders (%d skipped), %d order items, %d deliveries in %s",
		len(ds.Restaurants), len(ds.MenuItems), len(ds.Customers), len(ds.Drivers),
		len(ds.Orders), ds.SkippedOrders, len(ds.OrderItems), len(ds.Deliveries),
		time.Since(start).Round(time.Millisecond))

	return ds, nil
}

func (g *Generator) buildIndices(ds *models.Dataset) {
	for _, item := range ds.MenuItems {
		g.menuByRestaurant[item.RestaurantID] = append(g.menuByRestaurant[item.RestaurantID], item.ID)
		g.itemByID[item.ID] = item
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
