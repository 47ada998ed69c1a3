package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *models.Dataset {
	orderDate := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)
	note := "Extra spicy"
	rating := 5

	return &models.Dataset{
		Restaurants: []*models.Restaurant{{
			ID: "r1", Name: "Testaurant", Cuisine: "Italian", PriceRange: "$$",
			Rating: 4.5, Address: "12 Main St, Downtown", Area: "Downtown",
			Latitude: 40.7128, Longitude: -74.006, IsDashpass: true, AvgPrepTimeMin: 20,
		}},
		MenuItems: []*models.MenuItem{{
			ID: "m1", RestaurantID: "r1", Name: "Pasta Carbonara",
			Price: 15.5, Category: "Main Course", IsPopular: true,
		}},
		Customers: []*models.Customer{{
			ID: "c1", Name: "Test Customer", Email: "test@example.com",
			Phone: "555-0100", Address: "34 Side St, Downtown", Area: "Downtown",
			Latitude: 40.71, Longitude: -74.0, RegistrationDate: orderDate.AddDate(-1, 0, 0),
			HasDashpass: true, Segment: "Regular",
		}},
		Drivers: []*models.Driver{{
			ID: "d1", Name: "Test Driver", Phone: "555-0101", VehicleType: "Car",
			Rating: 4.8, StartDate: orderDate.AddDate(-2, 0, 0),
			AvgDeliveriesPerWeek: 30, Status: "Active",
		}},
		Orders: []*models.Order{{
			ID: "o1", CustomerID: "c1", RestaurantID: "r1", OrderDate: orderDate,
			DayOfWeek: "Monday", MealTime: "Dinner", Status: "Completed",
			ItemsCount: 2, Subtotal: 31.0, Tax: 2.48, DeliveryFee: 0,
			Tip: 4.65, PromoDiscount: 0, Total: 38.13, PaymentMethod: "Credit Card",
		}},
		OrderItems: []*models.OrderItem{
			{ID: "oi1", OrderID: "o1", ItemID: "m1", Quantity: 1, Price: 15.5, SpecialInstructions: &note},
			{ID: "oi2", OrderID: "o1", ItemID: "m1", Quantity: 2, Price: 15.5},
		},
		Deliveries: []*models.Delivery{{
			ID: "dl1", OrderID: "o1", DriverID: "d1",
			EstimatedDeliveryTime:   orderDate.Add(35 * time.Minute),
			ActualDeliveryTime:      orderDate.Add(40 * time.Minute),
			DeliveryDurationMinutes: 40.2, Status: "Delivered",
			CustomerRating: &rating,
		}},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVOutputWritesAllTables(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir)
	require.NoError(t, sink.WriteDataset(sampleDataset()))
	require.NoError(t, sink.Close())

	for _, name := range TableNames {
		_, err := os.Stat(filepath.Join(dir, name+".csv"))
		assert.NoError(t, err, "missing table file %s.csv", name)
	}
}

func TestCSVOrdersTable(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir)
	require.NoError(t, sink.WriteDataset(sampleDataset()))

	rows := readCSV(t, filepath.Join(dir, "orders.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"order_id", "customer_id", "restaurant_id", "order_date", "day_of_week",
		"meal_time", "status", "items_count", "subtotal", "tax", "delivery_fee",
		"tip", "promo_discount", "total", "payment_method",
	}, rows[0])
	assert.Equal(t, []string{
		"o1", "c1", "r1", "2024-01-15 18:30:00", "Monday", "Dinner", "Completed",
		"2", "31.00", "2.48", "0.00", "4.65", "0.00", "38.13", "Credit Card",
	}, rows[1])
}

func TestCSVOptionalFieldsEmptyWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir)
	require.NoError(t, sink.WriteDataset(sampleDataset()))

	items := readCSV(t, filepath.Join(dir, "order_items.csv"))
	require.Len(t, items, 3)
	assert.Equal(t, "Extra spicy", items[1][5])
	assert.Equal(t, "", items[2][5], "absent instructions serialize as empty")

	deliveries := readCSV(t, filepath.Join(dir, "deliveries.csv"))
	require.Len(t, deliveries, 2)
	assert.Equal(t, "5", deliveries[1][7])
	assert.Equal(t, "", deliveries[1][8], "absent issue serializes as empty")
	assert.Equal(t, "40.20", deliveries[1][5])
}

func TestForConfigSelectsSink(t *testing.T) {
	dir := t.TempDir()

	cfg := &models.Config{OutputFormat: "csv", OutputPath: dir}
	sink, err := ForConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &CSVOutput{}, sink)

	cfg.OutputFormat = "json"
	sink, err = ForConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &JSONOutput{}, sink)

	cfg.OutputFormat = "parquet"
	sink, err = ForConfig(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ParquetOutput{}, sink)

	cfg.OutputFormat = "xml"
	_, err = ForConfig(cfg)
	assert.Error(t, err)
}
