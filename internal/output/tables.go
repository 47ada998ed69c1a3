package output

import (
	"strconv"
	"time"

	"github.com/delivergen/delivergen/internal/models"
)

// timestampLayout matches the format the downstream reporting layer parses.
const timestampLayout = "2006-01-02 15:04:05"

// table is the row-oriented view of one entity, shared by the CSV writer
// and anything else that needs string cells.
type table struct {
	name    string
	headers []string
	rows    [][]string
}

func datasetTables(ds *models.Dataset) []table {
	tables := []table{
		{name: TableRestaurants, headers: []string{
			"restaurant_id", "name", "cuisine", "price_range", "rating",
			"address", "area", "latitude", "longitude", "is_dashpass", "avg_prep_time_min",
		}},
		{name: TableMenuItems, headers: []string{
			"item_id", "restaurant_id", "name", "price", "category", "is_popular",
		}},
		{name: TableCustomers, headers: []string{
			"customer_id", "name", "email", "phone", "address", "area",
			"latitude", "longitude", "registration_date", "has_dashpass", "segment",
		}},
		{name: TableDrivers, headers: []string{
			"driver_id", "name", "phone", "vehicle_type", "rating",
			"start_date", "avg_deliveries_per_week", "status",
		}},
		{name: TableOrders, headers: []string{
			"order_id", "customer_id", "restaurant_id", "order_date", "day_of_week",
			"meal_time", "status", "items_count", "subtotal", "tax", "delivery_fee",
			"tip", "promo_discount", "total", "payment_method",
		}},
		{name: TableOrderItems, headers: []string{
			"order_item_id", "order_id", "item_id", "quantity", "price", "special_instructions",
		}},
		{name: TableDeliveries, headers: []string{
			"delivery_id", "order_id", "driver_id", "estimated_delivery_time",
			"actual_delivery_time", "delivery_duration_minutes", "status",
			"customer_rating", "issue_reported",
		}},
	}

	for _, r := range ds.Restaurants {
		tables[0].rows = append(tables[0].rows, []string{
			r.ID, r.Name, r.Cuisine, r.PriceRange, fmtFloat(r.Rating, 1),
			r.Address, r.Area, fmtFloat(r.Latitude, 6), fmtFloat(r.Longitude, 6),
			fmtBool(r.IsDashpass), strconv.Itoa(r.AvgPrepTimeMin),
		})
	}
	for _, m := range ds.MenuItems {
		tables[1].rows = append(tables[1].rows, []string{
			m.ID, m.RestaurantID, m.Name, fmtMoney(m.Price), m.Category, fmtBool(m.IsPopular),
		})
	}
	for _, c := range ds.Customers {
		tables[2].rows = append(tables[2].rows, []string{
			c.ID, c.Name, c.Email, c.Phone, c.Address, c.Area,
			fmtFloat(c.Latitude, 6), fmtFloat(c.Longitude, 6),
			fmtTime(c.RegistrationDate), fmtBool(c.HasDashpass), c.Segment,
		})
	}
	for _, d := range ds.Drivers {
		tables[3].rows = append(tables[3].rows, []string{
			d.ID, d.Name, d.Phone, d.VehicleType, fmtFloat(d.Rating, 1),
			fmtTime(d.StartDate), strconv.Itoa(d.AvgDeliveriesPerWeek), d.Status,
		})
	}
	for _, o := range ds.Orders {
		tables[4].rows = append(tables[4].rows, []string{
			o.ID, o.CustomerID, o.RestaurantID, fmtTime(o.OrderDate), o.DayOfWeek,
			o.MealTime, o.Status, strconv.Itoa(o.ItemsCount), fmtMoney(o.Subtotal),
			fmtMoney(o.Tax), fmtMoney(o.DeliveryFee), fmtMoney(o.Tip),
			fmtMoney(o.PromoDiscount), fmtMoney(o.Total), o.PaymentMethod,
		})
	}
	for _, oi := range ds.OrderItems {
		tables[5].rows = append(tables[5].rows, []string{
			oi.ID, oi.OrderID, oi.ItemID, strconv.Itoa(oi.Quantity),
			fmtMoney(oi.Price), fmtOptString(oi.SpecialInstructions),
		})
	}
	for _, d := range ds.Deliveries {
		tables[6].rows = append(tables[6].rows, []string{
			d.ID, d.OrderID, d.DriverID, fmtTime(d.EstimatedDeliveryTime),
			fmtTime(d.ActualDeliveryTime), fmtFloat(d.DeliveryDurationMinutes, 2),
			d.Status, fmtOptInt(d.CustomerRating), fmtOptString(d.IssueReported),
		})
	}

	return tables
}

// records returns every row of one table as JSON-marshalable values, used
// by the JSON and Kafka sinks.
func records(ds *models.Dataset, name string) []any {
	var out []any
	switch name {
	case TableRestaurants:
		for _, r := range ds.Restaurants {
			out = append(out, r)
		}
	case TableMenuItems:
		for _, m := range ds.MenuItems {
			out = append(out, m)
		}
	case TableCustomers:
		for _, c := range ds.Customers {
			out = append(out, c)
		}
	case TableDrivers:
		for _, d := range ds.Drivers {
			out = append(out, d)
		}
	case TableOrders:
		for _, o := range ds.Orders {
			out = append(out, o)
		}
	case TableOrderItems:
		for _, oi := range ds.OrderItems {
			out = append(out, oi)
		}
	case TableDeliveries:
		for _, d := range ds.Deliveries {
			out = append(out, d)
		}
	}
	return out
}

func fmtFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

func fmtMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func fmtTime(t time.Time) string {
	return t.Format(timestampLayout)
}

func fmtOptString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
