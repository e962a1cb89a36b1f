package service

import (
	"fmt"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type MenuService struct {
	repository MenuRepository
}

func NewMenuService(repository MenuRepository) *MenuService {
	return &MenuService{repository: repository}
}

func (s *MenuService) ListItems(category string, isVeg *bool) ([]domain.MenuItem, error) {
	items, err := s.repository.ListItems(category, isVeg)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) GetItem(id int) (*domain.MenuItem, error) {
	item, err := s.repository.GetItem(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *MenuService) CreateItem(item *domain.MenuItem) error {
	if item.Name == "" || item.Description == "" || item.Price <= 0 || item.Category == "" {
		return ErrInvalidMenuItem
	}
	if item.SpiceLevel == 0 {
		item.SpiceLevel = 1
	}
	item.IsAvailable = true
	if err := s.repository.InsertItem(item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, ErrInvalidMenuItem
	}
	item, err := s.repository.UpdateItem(id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// DeleteItem marks the item unavailable instead of removing the row, so
// historical order lines keep a valid item reference.
func (s *MenuService) DeleteItem(id int) error {
	deleted, err := s.repository.SoftDeleteItem(id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
