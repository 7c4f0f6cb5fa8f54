package services

import (
	"time"

	"github.com/Dhanuka2552/food/internal/domain"
)

func CreateMockMenuItem(id int, name string, price int64) *domain.MenuItem {
	return &domain.MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Image:       "https://example.com/" + name + ".jpg",
		Description: name + " description",
	}
}

func CreateMockOrder(id int64, itemID int, quantity int, price int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:              id,
		Item:            "Pizza",
		ItemID:          itemID,
		Quantity:        quantity,
		Price:           price,
		TotalPrice:      price * int64(quantity),
		CustomerName:    "John Doe",
		CustomerPhone:   "+1 (555) 123-4567",
		DeliveryAddress: "42 Baker Street",
		PaymentMethod:   "cash",
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func ValidCreateOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Item:     "Pizza",
		Quantity: "2",
		Name:     "John Doe",
		Phone:    "+1 (555) 123-4567",
		Address:  "42 Baker Street",
		Payment:  "cash",
	}
}

const (
	TestItemID    = 1
	TestItemName  = "Pizza"
	TestItemPrice = int64(1200)
)
