// Package output writes a generated dataset to its destination: flat files
// (CSV, JSON, Parquet), Postgres, or Kafka. Sinks consume the dataset
// read-only and never mutate it.
package output

import (
	"fmt"

	"github.com/delivergen/delivergen/internal/models"
)

// Table names double as file basenames, Kafka topics, and SQL table names.
const (
	TableRestaurants = "restaurants"
	TableMenuItems   = "menu_items"
	TableCustomers   = "customers"
	TableDrivers     = "drivers"
	TableOrders      = "orders"
	TableOrderItems  = "order_items"
	TableDeliveries  = "deliveries"
)

var TableNames = []string{
	TableRestaurants, TableMenuItems, TableCustomers, TableDrivers,
	TableOrders, TableOrderItems, TableDeliveries,
}

type Sink interface {
	WriteDataset(ds *models.Dataset) error
	Close() error
}

// ForConfig picks the sink matching the configured output format.
func ForConfig(config *models.Config) (Sink, error) {
	switch config.OutputFormat {
	case "csv":
		return NewCSVOutput(config.OutputPath), nil
	case "json":
		return NewJSONOutput(config.OutputPath), nil
	case "parquet":
		return NewParquetOutput(config.OutputPath), nil
	case "postgres":
		return NewPostgresOutput(&config.Database)
	case "kafka":
		return NewKafkaOutput(config.KafkaBrokerList)
	default:
		return nil, fmt.Errorf("unsupported output format: %q", config.OutputFormat)
	}
}
