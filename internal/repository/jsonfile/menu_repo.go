package jsonfile

import (
	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/repository"
)

type menuRepo struct {
	store *Store
}

func NewMenuRepository(store *Store) repository.MenuRepository {
	return &menuRepo{store: store}
}

func (r *menuRepo) FindAll() ([]domain.MenuItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return readDocument[domain.MenuItem](r.store.path(menuFile)), nil
}

func (r *menuRepo) FindByID(id int) (*domain.MenuItem, error) {
	items, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *menuRepo) FindByName(name string) (*domain.MenuItem, error) {
	items, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, nil
}
