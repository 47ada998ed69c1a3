package factories

import (
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/delivergen/delivergen/internal/rng"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

type DriverFactory struct {
	rng  *rng.Engine
	fake faker.Faker
}

func NewDriverFactory(engine *rng.Engine, fake faker.Faker) *DriverFactory {
	return &DriverFactory{rng: engine, fake: fake}
}

func (df *DriverFactory) CreateDriver(config *models.Config) (*models.Driver, error) {
	vehicle, err := rng.WeightedChoice(df.rng, models.VehicleTypes, models.VehicleTypeWeight)
	if err != nil {
		return nil, err
	}

	status, err := rng.WeightedChoice(df.rng, models.DriverStatuses, models.DriverStatusWeight)
	if err != nil {
		return nil, err
	}

	return &models.Driver{
		ID:                   cuid.New(),
		Name:                 df.fake.Person().Name(),
		Phone:                df.fake.Phone().Number(),
		VehicleType:          vehicle,
		Rating:               roundTo(df.rng.UniformRange(3.0, 5.0), 1),
		StartDate:            df.startDate(config),
		AvgDeliveriesPerWeek: df.rng.IntBetween(10, 50),
		Status:               status,
	}, nil
}

func (df *DriverFactory) startDate(config *models.Config) time.Time {
	d := df.rng.TimeBetween(config.PeriodStart.AddDate(-3, 0, 0), config.PeriodEnd)
	return time.Date(d.Year(), d.Month(), d.Day(),
		df.rng.IntBetween(6, 23), df.rng.Intn(60), df.rng.Intn(60), 0, d.Location())
}
