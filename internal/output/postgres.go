package output

import (
	"database/sql"
	"fmt"

	"github.com/delivergen/delivergen/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresOutput loads the generated dataset straight into a relational
// store. Each table is dropped, recreated, and batch-inserted inside one
// transaction, so a failed run leaves no partial table behind.
type PostgresOutput struct {
	db *sql.DB
}

func NewPostgresOutput(config *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{db: db}, nil
}

var schemaStatements = []string{
	`DROP TABLE IF EXISTS deliveries, order_items, orders, drivers, customers, menu_items, restaurants CASCADE`,
	`CREATE TABLE restaurants (
		restaurant_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		cuisine TEXT,
		price_range TEXT,
		rating DOUBLE PRECISION,
		address TEXT,
		area TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_dashpass BOOLEAN,
		avg_prep_time_min INTEGER
	)`,
	`CREATE TABLE menu_items (
		item_id TEXT PRIMARY KEY,
		restaurant_id TEXT REFERENCES restaurants (restaurant_id),
		name TEXT NOT NULL,
		price DOUBLE PRECISION,
		category TEXT,
		is_popular BOOLEAN
	)`,
	`CREATE TABLE customers (
		customer_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		address TEXT,
		area TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		registration_date TIMESTAMP,
		has_dashpass BOOLEAN,
		segment TEXT
	)`,
	`CREATE TABLE drivers (
		driver_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		vehicle_type TEXT,
		rating DOUBLE PRECISION,
		start_date TIMESTAMP,
		avg_deliveries_per_week INTEGER,
		status TEXT
	)`,
	`CREATE TABLE orders (
		order_id TEXT PRIMARY KEY,
		customer_id TEXT REFERENCES customers (customer_id),
		restaurant_id TEXT REFERENCES restaurants (restaurant_id),
		order_date TIMESTAMP,
		day_of_week TEXT,
		meal_time TEXT,
		status TEXT,
		items_count INTEGER,
		subtotal DOUBLE PRECISION,
		tax DOUBLE PRECISION,
		delivery_fee DOUBLE PRECISION,
		tip DOUBLE PRECISION,
		promo_discount DOUBLE PRECISION,
		total DOUBLE PRECISION,
		payment_method TEXT
	)`,
	`CREATE TABLE order_items (
		order_item_id TEXT PRIMARY KEY,
		order_id TEXT REFERENCES orders (order_id),
		item_id TEXT REFERENCES menu_items (item_id),
		quantity INTEGER,
		price DOUBLE PRECISION,
		special_instructions TEXT
	)`,
	`CREATE TABLE deliveries (
		delivery_id TEXT PRIMARY KEY,
		order_id TEXT REFERENCES orders (order_id),
		driver_id TEXT REFERENCES drivers (driver_id),
		estimated_delivery_time TIMESTAMP,
		actual_delivery_time TIMESTAMP,
		delivery_duration_minutes DOUBLE PRECISION,
		status TEXT,
		customer_rating INTEGER,
		issue_reported TEXT
	)`,
	`CREATE INDEX idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX idx_orders_restaurant_id ON orders (restaurant_id)`,
	`CREATE INDEX idx_orders_order_date ON orders (order_date)`,
	`CREATE INDEX idx_order_items_order_id ON order_items (order_id)`,
	`CREATE INDEX idx_deliveries_order_id ON deliveries (order_id)`,
}

func (p *PostgresOutput) WriteDataset(ds *models.Dataset) error {
	if err := p.createSchema(); err != nil {
		return err
	}

	if err := p.insertRestaurants(ds.Restaurants); err != nil {
		return err
	}
	if err := p.insertMenuItems(ds.MenuItems); err != nil {
		return err
	}
	if err := p.insertCustomers(ds.Customers); err != nil {
		return err
	}
	if err := p.insertDrivers(ds.Drivers); err != nil {
		return err
	}
	if err := p.insertOrders(ds.Orders); err != nil {
		return err
	}
	if err := p.insertOrderItems(ds.OrderItems); err != nil {
		return err
	}
	return p.insertDeliveries(ds.Deliveries)
}

func (p *PostgresOutput) createSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := p.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// execBatch runs fn for every record inside one transaction against a
// single prepared statement.
func (p *PostgresOutput) execBatch(query string, count int, args func(i int) []any) error {
	tx, err := p.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < count; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (p *PostgresOutput) insertRestaurants(restaurants []*models.Restaurant) error {
	query := `INSERT INTO restaurants (
		restaurant_id, name, cuisine, price_range, rating, address, area,
		latitude, longitude, is_dashpass, avg_prep_time_min
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	return p.execBatch(query, len(restaurants), func(i int) []any {
		r := restaurants[i]
		return []any{r.ID, r.Name, r.Cuisine, r.PriceRange, r.Rating, r.Address,
			r.Area, r.Latitude, r.Longitude, r.IsDashpass, r.AvgPrepTimeMin}
	})
}

func (p *PostgresOutput) insertMenuItems(items []*models.MenuItem) error {
	query := `INSERT INTO menu_items (
		item_id, restaurant_id, name, price, category, is_popular
	) VALUES ($1, $2, $3, $4, $5, $6)`

	return p.execBatch(query, len(items), func(i int) []any {
		m := items[i]
		return []any{m.ID, m.RestaurantID, m.Name, m.Price, m.Category, m.IsPopular}
	})
}

func (p *PostgresOutput) insertCustomers(customers []*models.Customer) error {
	query := `INSERT INTO customers (
		customer_id, name, email, phone, address, area, latitude, longitude,
		registration_date, has_dashpass, segment
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	return p.execBatch(query, len(customers), func(i int) []any {
		c := customers[i]
		return []any{c.ID, c.Name, c.Email, c.Phone, c.Address, c.Area,
			c.Latitude, c.Longitude, c.RegistrationDate, c.HasDashpass, c.Segment}
	})
}

func (p *PostgresOutput) insertDrivers(drivers []*models.Driver) error {
	query := `INSERT INTO drivers (
		driver_id, name, phone, vehicle_type, rating, start_date,
		avg_deliveries_per_week, status
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	return p.execBatch(query, len(drivers), func(i int) []any {
		d := drivers[i]
		return []any{d.ID, d.Name, d.Phone, d.VehicleType, d.Rating,
			d.StartDate, d.AvgDeliveriesPerWeek, d.Status}
	})
}

func (p *PostgresOutput) insertOrders(orders []*models.Order) error {
	query := `INSERT INTO orders (
		order_id, customer_id, restaurant_id, order_date, day_of_week,
		meal_time, status, items_count, subtotal, tax, delivery_fee, tip,
		promo_discount, total, payment_method
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	return p.execBatch(query, len(orders), func(i int) []any {
		o := orders[i]
		return []any{o.ID, o.CustomerID, o.RestaurantID, o.OrderDate, o.DayOfWeek,
			o.MealTime, o.Status, o.ItemsCount, o.Subtotal, o.Tax, o.DeliveryFee,
			o.Tip, o.PromoDiscount, o.Total, o.PaymentMethod}
	})
}

func (p *PostgresOutput) insertOrderItems(items []*models.OrderItem) error {
	query := `INSERT INTO order_items (
		order_item_id, order_id, item_id, quantity, price, special_instructions
	) VALUES ($1, $2, $3, $4, $5, $6)`

	return p.execBatch(query, len(items), func(i int) []any {
		oi := items[i]
		return []any{oi.ID, oi.OrderID, oi.ItemID, oi.Quantity, oi.Price,
			nullableString(oi.SpecialInstructions)}
	})
}

func (p *PostgresOutput) insertDeliveries(deliveries []*models.Delivery) error {
	query := `INSERT INTO deliveries (
		delivery_id, order_id, driver_id, estimated_delivery_time,
		actual_delivery_time, delivery_duration_minutes, status,
		customer_rating, issue_reported
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	return p.execBatch(query, len(deliveries), func(i int) []any {
		d := deliveries[i]
		return []any{d.ID, d.OrderID, d.DriverID, d.EstimatedDeliveryTime,
			d.ActualDeliveryTime, d.DeliveryDurationMinutes, d.Status,
			nullableInt(d.CustomerRating), nullableString(d.IssueReported)}
	})
}

func (p *PostgresOutput) Close() error {
	return p.db.Close()
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
