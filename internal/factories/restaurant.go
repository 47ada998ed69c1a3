package factories

import (
	"fmt"
	"math"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type RestaurantFactory struct {
	rng  *rng.Engine
	fake faker.Faker
}

func NewRestaurantFactory(engine *rng.Engine, fake faker.Faker) *RestaurantFactory {
	return &RestaurantFactory{rng: engine, fake: fake}
}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config) (*models.Restaurant, error) {
	priceRange, err := rng.WeightedChoice(rf.rng, models.PriceRanges, models.PriceRangeWeight)
	if err != nil {
		return nil, err
	}

	area := models.Areas[rf.rng.Intn(len(models.Areas))]

	return &models.Restaurant{
		ID:             cuid.New(),
		Name:           rf.fake.Company().Name(),
		Cuisine:        models.Cuisines[rf.rng.Intn(len(models.Cuisines))],
		PriceRange:     priceRange,
		Rating:         roundTo(rf.rng.UniformRange(2.5, 5.0), 1),
		Address:        fmt.Sprintf("%s %s, %s", rf.fake.Address().BuildingNumber(), rf.fake.Address().StreetName(), area),
		Area:           area,
		Latitude:       roundTo(rf.rng.UniformRange(40.5, 41.0), 6),
		Longitude:      roundTo(rf.rng.UniformRange(-74.0, -73.5), 6),
		IsDashpass:     rf.rng.Chance(0.7),
		AvgPrepTimeMin: rf.rng.IntBetween(10, 40),
	}, nil
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
