package factories

import (
	"fmt"
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type CustomerFactory struct {
	rng  *rng.Engine
	fake faker.Faker
}

func NewCustomerFactory(engine *rng.Engine, fake faker.Faker) *CustomerFactory {
	return &CustomerFactory{rng: engine, fake: fake}
}

func (cf *CustomerFactory) CreateCustomer(config *models.Config) (*models.Customer, error) {
	segment, err := rng.WeightedChoice(cf.rng, models.CustomerSegments, models.SegmentWeights)
	if err != nil {
		return nil, err
	}

	area := models.Areas[cf.rng.Intn(len(models.Areas))]

	return &models.Customer{
		ID:               cuid.New(),
		Name:             cf.fake.Person().Name(),
		Email:            cf.fake.Internet().Email(),
		Phone:            cf.fake.Phone().Number(),
		Address:          fmt.Sprintf("%s %s, %s", cf.fake.Address().BuildingNumber(), cf.fake.Address().StreetName(), area),
		Area:             area,
		Latitude:         roundTo(cf.rng.UniformRange(40.5, 41.0), 6),
		Longitude:        roundTo(cf.rng.UniformRange(-74.0, -73.5), 6),
		RegistrationDate: cf.registrationDate(config),
		HasDashpass:      cf.rng.Chance(0.4),
		Segment:          segment,
	}, nil
}

// registrationDate places signups anywhere from two years before the
// simulated period up to its end, during waking hours.
func (cf *CustomerFactory) registrationDate(config *models.Config) time.Time {
	d := cf.rng.TimeBetween(config.PeriodStart.AddDate(-2, 0, 0), config.PeriodEnd)
	return time.Date(d.Year(), d.Month(), d.Day(),
		cf.rng.IntBetween(6, 23), cf.rng.Intn(60), cf.rng.Intn(60), 0, d.Location())
}
