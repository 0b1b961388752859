package http

// Request bodies accepted by the API.

type SubmitOrderRequest struct {
	TableNumber int               `json:"table_number"`
	Items       []SubmitItemEntry `json:"items"`
}

type SubmitItemEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type SetDeliveredRequest struct {
	Delivered bool `json:"delivered"`
}

type SetDeliveredCountRequest struct {
	Count int `json:"count"`
}

type ChargeOrderRequest struct {
	Method string  `json:"method"`
	Tip    float64 `json:"tip"`
}

type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	ImageURL *string  `json:"image_url"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
