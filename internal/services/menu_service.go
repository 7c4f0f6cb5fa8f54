package services

import (
	"github.com/Dhanuka2552/food/internal/domain"
	"github.com/Dhanuka2552/food/internal/repository"
)

type MenuService struct {
	menu repository.MenuRepository
}

func NewMenuService(menu repository.MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) ListItems() ([]domain.MenuItem, error) {
	return s.menu.FindAll()
}

func (s *MenuService) GetItem(id int) (*domain.MenuItem, error) {
	item, err := s.menu.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}
