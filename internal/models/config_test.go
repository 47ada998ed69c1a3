package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Seed:                  42,
		PeriodStart:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		RestaurantCount:       50,
		AvgItemsPerRestaurant: 10,
		CustomerCount:         200,
		DriverCount:           100,
		OrderCount:            2000,
		OutputFormat:          "csv",
		OutputPath:            "data",
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfigValidateRejectsBadCounts(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.RestaurantCount = 0 },
		func(c *Config) { c.AvgItemsPerRestaurant = 0 },
		func(c *Config) { c.CustomerCount = -1 },
		func(c *Config) { c.DriverCount = 0 },
		func(c *Config) { c.OrderCount = 0 },
	}
	for _, mutate := range cases {
		cfg := validConfig()
		mutate(cfg)
		assert.Error(t, cfg.Validate())
	}
}

func TestConfigValidateRejectsBadPeriod(t *testing.T) {
	cfg := validConfig()
	cfg.PeriodStart = time.Time{}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.PeriodEnd = cfg.PeriodStart
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.PeriodEnd = cfg.PeriodStart.AddDate(0, -1, 0)
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsUnknownFormat(t *testing.T) {
	cfg := validConfig()
	cfg.OutputFormat = "xml"
	assert.Error(t, cfg.Validate())

	for _, format := range []string{"csv", "json", "parquet", "postgres", "kafka"} {
		cfg := validConfig()
		cfg.OutputFormat = format
		assert.NoError(t, cfg.Validate())
	}
}
