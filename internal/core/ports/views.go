package ports

import "time"

// OrderView is the full materialized snapshot of an order as returned to
// callers and broadcast to displays: lines with resolved product name and
// price, the derived status, and whether a payment exists.
type OrderView struct {
	ID          string          `json:"id"`
	TableNumber int             `json:"table_number"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	Items       []OrderItemView `json:"items"`
	Paid        bool            `json:"paid"`
}

// OrderItemView is one line of an order snapshot.
type OrderItemView struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Delivered      bool    `json:"delivered"`
	DeliveredCount int     `json:"delivered_count"`
}

// PaymentView is the payment record returned by the charge operation and
// the finance reports.
type PaymentView struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Method    string    `json:"method"`
	Total     float64   `json:"total"`
	Tip       float64   `json:"tip"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductView is a catalog item as exposed over the API.
type ProductView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}
