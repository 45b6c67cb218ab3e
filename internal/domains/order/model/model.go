package model

// OrderItem is a line on a placed order.
type OrderItem struct {
	ID       int    `json:"id"`
	Product  int    `json:"product"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// Order as reported by the shop API. Status vocabulary comes from the
// backend; this service passes it through unchanged.
type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	Items           []OrderItem `json:"items"`
	TotalAmount     string      `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}
