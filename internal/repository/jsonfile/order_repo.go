package jsonfile

import (
	"github.com/rs/zerolog/log"

	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/repository"
)

type orderRepo struct {
	store *Store
}

func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepo{store: store}
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return readDocument[domain.Order](r.store.path(ordersFile)), nil
}

func (r *orderRepo) FindByID(id int64) (*domain.Order, error) {
	orders, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *orderRepo) Save(order *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := r.store.path(ordersFile)
	orders := readDocument[domain.Order](path)
	orders = append(orders, *order)
	if err := writeDocument(path, orders); err != nil {
		log.Error().Err(err).Int64("order_id", order.ID).Msg("failed to persist order")
		return err
	}
	return nil
}

func (r *orderRepo) Update(order *domain.Order) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := r.store.path(ordersFile)
	orders := readDocument[domain.Order](path)
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = *order
			if err := writeDocument(path, orders); err != nil {
				log.Error().Err(err).Int64("order_id", order.ID).Msg("failed to persist order update")
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *orderRepo) Delete(id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := r.store.path(ordersFile)
	orders := readDocument[domain.Order](path)
	remaining := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			remaining = append(remaining, o)
		}
	}
	if len(remaining) == len(orders) {
		return false, nil
	}
	if err := writeDocument(path, remaining); err != nil {
		log.Error().Err(err).Int64("order_id", id).Msg("failed to persist order deletion")
		return false, err
	}
	return true, nil
}
