package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	Seed                  int64     `mapstructure:"seed"`
	PeriodStart           time.Time `mapstructure:"period_start"`
	PeriodEnd             time.Time `mapstructure:"period_end"`
	RestaurantCount       int       `mapstructure:"restaurant_count"`
	AvgItemsPerRestaurant int       `mapstructure:"avg_items_per_restaurant"`
	CustomerCount         int       `mapstructure:"customer_count"`
	DriverCount           int       `mapstructure:"driver_count"`
	OrderCount            int       `mapstructure:"order_count"`

	// ConsistentTotals makes order subtotals include line-item quantities.
	// The default (false) reproduces the legacy subtotal, which counts each
	// sampled item reference once regardless of its quantity.
	ConsistentTotals bool `mapstructure:"consistent_totals"`

	OutputFormat string `mapstructure:"output_format"`
	OutputPath   string `mapstructure:"output_path"`

	KafkaBrokerList string             `mapstructure:"kafka_broker_list"`
	CloudStorage    CloudStorageConfig `mapstructure:"cloud_storage"`
	Database        DatabaseConfig     `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv() // Read in environment variables that match

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate fails fast on configurations that cannot produce a usable
// dataset. Generation never starts on an invalid config, so no partial
// output is ever written.
func (cfg *Config) Validate() error {
	if cfg.RestaurantCount < 1 {
		return fmt.Errorf("restaurant_count must be at least 1, got %d", cfg.RestaurantCount)
	}
	if cfg.AvgItemsPerRestaurant < 1 {
		return fmt.Errorf("avg_items_per_restaurant must be at least 1, got %d", cfg.AvgItemsPerRestaurant)
	}
	if cfg.CustomerCount < 1 {
		return fmt.Errorf("customer_count must be at least 1, got %d", cfg.CustomerCount)
	}
	if cfg.DriverCount < 1 {
		return fmt.Errorf("driver_count must be at least 1, got %d", cfg.DriverCount)
	}
	if cfg.OrderCount < 1 {
		return fmt.Errorf("order_count must be at least 1, got %d", cfg.OrderCount)
	}
	if cfg.PeriodStart.IsZero() || cfg.PeriodEnd.IsZero() {
		return fmt.Errorf("period_start and period_end must be set")
	}
	if !cfg.PeriodEnd.After(cfg.PeriodStart) {
		return fmt.Errorf("period_end %s must be after period_start %s",
			cfg.PeriodEnd.Format(time.RFC3339), cfg.PeriodStart.Format(time.RFC3339))
	}
	switch cfg.OutputFormat {
	case "csv", "json", "parquet", "postgres", "kafka":
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
	return nil
}
