package factories

import (
	"math"
	"strings"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type MenuItemFactory struct {
	rng  *rng.Engine
	fake faker.Faker
}

func NewMenuItemFactory(engine *rng.Engine, fake faker.Faker) *MenuItemFactory {
	return &MenuItemFactory{rng: engine, fake: fake}
}

// CreateMenu builds the full menu for one restaurant. Menu size varies
// around the configured average but never drops below five items, so every
// restaurant can be referenced by orders.
func (mf *MenuItemFactory) CreateMenu(restaurant *models.Restaurant, avgItems int) ([]*models.MenuItem, error) {
	count := int(mf.rng.Normal(float64(avgItems), 3))
	if count < 5 {
		count = 5
	}

	mean := models.MenuPriceMeans[restaurant.PriceRange]
	stddev := models.MenuPriceStdDevs[restaurant.PriceRange]

	items := make([]*models.MenuItem, 0, count)
	for i := 0; i < count; i++ {
		category, err := rng.WeightedChoice(mf.rng, models.MenuCategories, models.MenuCategoryWeight)
		if err != nil {
			return nil, err
		}

		items = append(items, &models.MenuItem{
			ID:           cuid.New(),
			RestaurantID: restaurant.ID,
			Name:         mf.dishName(restaurant.Cuisine),
			Price:        roundTo(math.Max(5, mf.rng.Normal(mean, stddev)), 2),
			Category:     category,
			IsPopular:    mf.rng.Chance(0.2),
		})
	}
	return items, nil
}

func (mf *MenuItemFactory) dishName(cuisine string) string {
	switch cuisine {
	case "Italian":
		bases := []string{"Pasta", "Pizza", "Risotto", "Lasagna"}
		styles := []string{"Bolognese", "Carbonara", "Margherita", "Quattro Formaggi", "al Pesto"}
		return bases[mf.rng.Intn(len(bases))] + " " + styles[mf.rng.Intn(len(styles))]
	case "Mexican":
		bases := []string{"Taco", "Burrito", "Enchilada", "Quesadilla", "Nachos"}
		styles := []string{"de Pollo", "de Carne", "Vegetariano", "con Queso", "Supremo"}
		return bases[mf.rng.Intn(len(bases))] + " " + styles[mf.rng.Intn(len(styles))]
	}

	suffixes := []string{"Plate", "Bowl", "Special", "Delight", "Combo"}
	word := mf.fake.Lorem().Word()
	if word != "" {
		word = strings.ToUpper(word[:1]) + word[1:]
	}
	return word + " " + suffixes[mf.rng.Intn(len(suffixes))]
}
