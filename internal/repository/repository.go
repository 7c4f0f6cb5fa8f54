package repository

import (
	"github.com/Dhanuka2552/food/internal/domain"
)

// Lookup methods return (nil, nil) when no record matches.

type MenuRepository interface {
	FindAll() ([]domain.MenuItem, error)
	FindByID(id int) (*domain.MenuItem, error)
	FindByName(name string) (*domain.MenuItem, error)
}

type OrderRepository interface {
	FindAll() ([]domain.Order, error)
	FindByID(id int64) (*domain.Order, error)
	Save(order *domain.Order) error
	// Update replaces the stored order with the same ID. The bool reports
	// whether a record matched.
	Update(order *domain.Order) (bool, error)
	// Delete removes the order with the given ID. The bool reports whether
	// a record matched.
	Delete(id int64) (bool, error)
}
