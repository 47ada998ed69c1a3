package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/delivergen/delivergen/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetOutput writes one parquet file per entity. Rows are flattened into
// dedicated structs because parquet needs explicit physical types; times are
// stored as formatted strings to stay readable from any query engine.
type ParquetOutput struct {
	basePath string
}

func NewParquetOutput(basePath string) *ParquetOutput {
	return &ParquetOutput{basePath: basePath}
}

type restaurantRow struct {
	RestaurantID   string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name           string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cuisine        string  `parquet:"name=cuisine, type=BYTE_ARRAY, convertedtype=UTF8"`
	PriceRange     string  `parquet:"name=price_range, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating         float64 `parquet:"name=rating, type=DOUBLE"`
	Address        string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Area           string  `parquet:"name=area, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude       float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude      float64 `parquet:"name=longitude, type=DOUBLE"`
	IsDashpass     bool    `parquet:"name=is_dashpass, type=BOOLEAN"`
	AvgPrepTimeMin int32   `parquet:"name=avg_prep_time_min, type=INT32"`
}

type menuItemRow struct {
	ItemID       string  `parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name         string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price        float64 `parquet:"name=price, type=DOUBLE"`
	Category     string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsPopular    bool    `parquet:"name=is_popular, type=BOOLEAN"`
}

type customerRow struct {
	CustomerID       string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name             string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Email            string  `parquet:"name=email, type=BYTE_ARRAY, convertedtype=UTF8"`
	Phone            string  `parquet:"name=phone, type=BYTE_ARRAY, convertedtype=UTF8"`
	Address          string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Area             string  `parquet:"name=area, type=BYTE_ARRAY, convertedtype=UTF8"`
	Latitude         float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude        float64 `parquet:"name=longitude, type=DOUBLE"`
	RegistrationDate string  `parquet:"name=registration_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	HasDashpass      bool    `parquet:"name=has_dashpass, type=BOOLEAN"`
	Segment          string  `parquet:"name=segment, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type driverRow struct {
	DriverID             string  `parquet:"name=driver_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Name                 string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Phone                string  `parquet:"name=phone, type=BYTE_ARRAY, convertedtype=UTF8"`
	VehicleType          string  `parquet:"name=vehicle_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating               float64 `parquet:"name=rating, type=DOUBLE"`
	StartDate            string  `parquet:"name=start_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	AvgDeliveriesPerWeek int32   `parquet:"name=avg_deliveries_per_week, type=INT32"`
	Status               string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type orderRow struct {
	OrderID       string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID    string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID  string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderDate     string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	DayOfWeek     string  `parquet:"name=day_of_week, type=BYTE_ARRAY, convertedtype=UTF8"`
	MealTime      string  `parquet:"name=meal_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status        string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemsCount    int32   `parquet:"name=items_count, type=INT32"`
	Subtotal      float64 `parquet:"name=subtotal, type=DOUBLE"`
	Tax           float64 `parquet:"name=tax, type=DOUBLE"`
	DeliveryFee   float64 `parquet:"name=delivery_fee, type=DOUBLE"`
	Tip           float64 `parquet:"name=tip, type=DOUBLE"`
	PromoDiscount float64 `parquet:"name=promo_discount, type=DOUBLE"`
	Total         float64 `parquet:"name=total, type=DOUBLE"`
	PaymentMethod string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type orderItemRow struct {
	OrderItemID         string  `parquet:"name=order_item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemID              string  `parquet:"name=item_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity            int32   `parquet:"name=quantity, type=INT32"`
	Price               float64 `parquet:"name=price, type=DOUBLE"`
	SpecialInstructions *string `parquet:"name=special_instructions, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

type deliveryRow struct {
	DeliveryID              string  `parquet:"name=delivery_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderID                 string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	DriverID                string  `parquet:"name=driver_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	EstimatedDeliveryTime   string  `parquet:"name=estimated_delivery_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	ActualDeliveryTime      string  `parquet:"name=actual_delivery_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	DeliveryDurationMinutes float64 `parquet:"name=delivery_duration_minutes, type=DOUBLE"`
	Status                  string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerRating          *int32  `parquet:"name=customer_rating, type=INT32, repetitiontype=OPTIONAL"`
	IssueReported           *string `parquet:"name=issue_reported, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"`
}

func (p *ParquetOutput) WriteDataset(ds *models.Dataset) error {
	if err := os.MkdirAll(p.basePath, os.ModePerm); err != nil {
		return err
	}

	if err := writeParquet(p.path(TableRestaurants), new(restaurantRow), restaurantRows(ds)); err != nil {
		return err
	}
	if err := writeParquet(p.path(TableMenuItems), new(menuItemRow), menuItemRows(ds)); err != nil {
		return err
	}
	if err := writeParquet(p.path(TableCustomers), new(customerRow), customerRows(ds)); err != nil {
		return err
	}
	if err := writeParquet(p.path(TableDrivers), new(driverRow), driverRows(ds)); err != nil {
		return err
	}
	if err := writeParquet(p.path(TableOrders), new(orderRow), orderRows(ds)); err != nil {
		return err
	}
	if err := writeParquet(p.path(TableOrderItems), new(orderItemRow), orderItemRows(ds)); err != nil {
		return err
	}
	return writeParquet(p.path(TableDeliveries), new(deliveryRow), deliveryRows(ds))
}

func (p *ParquetOutput) Close() error {
	return nil
}

func (p *ParquetOutput) path(name string) string {
	return filepath.Join(p.basePath, name+".parquet")
}

func writeParquet(path string, schema any, rows []any) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file %s: %w", path, err)
	}

	pw, err := writer.NewParquetWriter(fw, schema, 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer for %s: %w", path, err)
	}

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write parquet row to %s: %w", path, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finalize parquet file %s: %w", path, err)
	}
	return fw.Close()
}

func restaurantRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.Restaurants))
	for _, r := range ds.Restaurants {
		rows = append(rows, restaurantRow{
			RestaurantID: r.ID, Name: r.Name, Cuisine: r.Cuisine,
			PriceRange: r.PriceRange, Rating: r.Rating, Address: r.Address,
			Area: r.Area, Latitude: r.Latitude, Longitude: r.Longitude,
			IsDashpass: r.IsDashpass, AvgPrepTimeMin: int32(r.AvgPrepTimeMin),
		})
	}
	return rows
}

func menuItemRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.MenuItems))
	for _, m := range ds.MenuItems {
		rows = append(rows, menuItemRow{
			ItemID: m.ID, RestaurantID: m.RestaurantID, Name: m.Name,
			Price: m.Price, Category: m.Category, IsPopular: m.IsPopular,
		})
	}
	return rows
}

func customerRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		rows = append(rows, customerRow{
			CustomerID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone,
			Address: c.Address, Area: c.Area, Latitude: c.Latitude,
			Longitude: c.Longitude, RegistrationDate: fmtTime(c.RegistrationDate),
			HasDashpass: c.HasDashpass, Segment: c.Segment,
		})
	}
	return rows
}

func driverRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.Drivers))
	for _, d := range ds.Drivers {
		rows = append(rows, driverRow{
			DriverID: d.ID, Name: d.Name, Phone: d.Phone,
			VehicleType: d.VehicleType, Rating: d.Rating,
			StartDate:            fmtTime(d.StartDate),
			AvgDeliveriesPerWeek: int32(d.AvgDeliveriesPerWeek), Status: d.Status,
		})
	}
	return rows
}

func orderRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.Orders))
	for _, o := range ds.Orders {
		rows = append(rows, orderRow{
			OrderID: o.ID, CustomerID: o.CustomerID, RestaurantID: o.RestaurantID,
			OrderDate: fmtTime(o.OrderDate), DayOfWeek: o.DayOfWeek,
			MealTime: o.MealTime, Status: o.Status, ItemsCount: int32(o.ItemsCount),
			Subtotal: o.Subtotal, Tax: o.Tax, DeliveryFee: o.DeliveryFee,
			Tip: o.Tip, PromoDiscount: o.PromoDiscount, Total: o.Total,
			PaymentMethod: o.PaymentMethod,
		})
	}
	return rows
}

func orderItemRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.OrderItems))
	for _, oi := range ds.OrderItems {
		rows = append(rows, orderItemRow{
			OrderItemID: oi.ID, OrderID: oi.OrderID, ItemID: oi.ItemID,
			Quantity: int32(oi.Quantity), Price: oi.Price,
			SpecialInstructions: oi.SpecialInstructions,
		})
	}
	return rows
}

func deliveryRows(ds *models.Dataset) []any {
	rows := make([]any, 0, len(ds.Deliveries))
	for _, d := range ds.Deliveries {
		var rating *int32
		if d.CustomerRating != nil {
			r := int32(*d.CustomerRating)
			rating = &r
		}
		rows = append(rows, deliveryRow{
			DeliveryID: d.ID, OrderID: d.OrderID, DriverID: d.DriverID,
			EstimatedDeliveryTime:   fmtTime(d.EstimatedDeliveryTime),
			ActualDeliveryTime:      fmtTime(d.ActualDeliveryTime),
			DeliveryDurationMinutes: d.DeliveryDurationMinutes,
			Status:                  d.Status,
			CustomerRating:          rating,
			IssueReported:           d.IssueReported,
		})
	}
	return rows
}
