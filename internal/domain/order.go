package domain

import "time"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// AllStatuses lists every valid status in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a placed customer order. Price is a snapshot of the menu item
// price at creation time; TotalPrice = Price * Quantity, fixed at creation.
type Order struct {
	ID              int64       `json:"id"`
	Item            string      `json:"item"`
	ItemID          int         `json:"itemId"`
	Quantity        int         `json:"quantity"`
	Price           int64       `json:"price"`
	TotalPrice      int64       `json:"totalPrice"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
