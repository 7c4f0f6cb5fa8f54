package http

// CreateOrderRequest mirrors the storefront's order form. Quantity is `any`
// because clients send it as either a JSON number or a numeric string.
type CreateOrderRequest struct {
	Item     string `json:"item"`
	Quantity any    `json:"quantity"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Payment  string `json:"payment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
