package models

// Order status values. Any status is reachable from any other; there is no
// enforced transition graph.
const (
	OrderStatusOpen      = "open"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a single line on an order. Prices are stored as float64 rounded
// to two fractional digits at input time.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a sales order. Total is derived from the items and recomputed on
// every write path that touches them.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerAddress string      `json:"customerAddress"`
	Items           []OrderItem `json:"items"`
	Status          string      `json:"status"`
	InvoiceNumber   string      `json:"invoiceNumber"`
	Notes           string      `json:"notes"`
	OrderDate       string      `json:"orderDate"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
	Total           float64     `json:"total"`
}

// EffectiveDate returns the order date, falling back to the creation
// timestamp for records that predate the orderDate field.
func (o Order) EffectiveDate() string {
	if o.OrderDate != "" {
		return o.OrderDate
	}
	return o.CreatedAt
}

// ItemsTotal sums price x quantity over the given items.
func ItemsTotal(items []OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
