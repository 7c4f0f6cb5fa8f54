package domain

import "time"

type OrderCreatedEvent struct {
	OrderID    int64     `json:"orderId"`
	Item       string    `json:"item"`
	ItemID     int       `json:"itemId"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderStatusUpdatedEvent struct {
	OrderID   int64       `json:"orderId"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type OrderDeletedEvent struct {
	OrderID   int64     `json:"orderId"`
	DeletedAt time.Time `json:"deletedAt"`
}
