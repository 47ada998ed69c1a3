package models

// Dataset is the full generated graph. Records are immutable once the
// generation run finishes; sinks consume them read-only.
type Dataset struct {
	Restaurants []*Restaurant
	MenuItems   []*MenuItem
	Customers   []*Customer
	Drivers     []*Driver
	Orders      []*Order
	OrderItems  []*OrderItem
	Deliveries  []*Delivery

	// SkippedOrders counts order attempts abandoned because the chosen
	// restaurant had no menu items. len(Orders) == requested - SkippedOrders.
	SkippedOrders int
}
