// Package mocks provides testify mocks for the service and storage
// interfaces used in tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t mockConstructorTestingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) ListItems(category string, isVeg *bool) ([]domain.MenuItem, error) {
	args := m.Called(category, isVeg)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuServiceInterface) GetItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuServiceInterface) CreateItem(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MenuServiceInterface) UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	args := m.Called(id, update)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuServiceInterface) DeleteItem(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t mockConstructorTestingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) Create(ctx context.Context, customerID int, req domain.OrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, customerID, req)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) CreateGuest(ctx context.Context, req domain.GuestOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) SetStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) List(callerID int, callerRole, status, date string) ([]domain.Order, error) {
	args := m.Called(callerID, callerRole, status, date)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) Get(callerID int, callerRole string, orderID int) (*domain.Order, error) {
	args := m.Called(callerID, callerRole, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderServiceInterface) Stats(ctx context.Context, period, date string) (*domain.OrderStats, error) {
	args := m.Called(ctx, period, date)
	var stats *domain.OrderStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.OrderStats)
	}
	return stats, args.Error(1)
}
