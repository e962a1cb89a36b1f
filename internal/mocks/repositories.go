package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t mockConstructorTestingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) ListItems(category string, isVeg *bool) ([]domain.MenuItem, error) {
	args := m.Called(category, isVeg)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuRepository) GetItem(id int) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuRepository) InsertItem(item *domain.MenuItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MenuRepository) UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	args := m.Called(id, update)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuRepository) SoftDeleteItem(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MenuRepository) PriceAndAvailability(id int) (float64, bool, error) {
	args := m.Called(id)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t mockConstructorTestingT) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountRepository) FindActiveCustomerByEmail(email string) (int, bool, error) {
	args := m.Called(email)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *AccountRepository) InsertAccount(account *domain.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t mockConstructorTestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) InsertOrderWithLines(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) UpdateStatus(orderID int, status string) (*domain.Order, error) {
	args := m.Called(orderID, status)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrders(customerID *int, status, date string) ([]domain.Order, error) {
	args := m.Called(customerID, status, date)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) GetOrder(orderID int, customerID *int) (*domain.Order, error) {
	args := m.Called(orderID, customerID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrderLines(orderID int) ([]domain.OrderLine, error) {
	args := m.Called(orderID)
	var lines []domain.OrderLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.OrderLine)
	}
	return lines, args.Error(1)
}

func (m *OrderRepository) Stats(period, date string) (*domain.OrderStats, error) {
	args := m.Called(period, date)
	var stats *domain.OrderStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.OrderStats)
	}
	return stats, args.Error(1)
}

type StatsCache struct {
	mock.Mock
}

func NewStatsCache(t mockConstructorTestingT) *StatsCache {
	m := &StatsCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsCache) StatsKey(period, date string) string {
	args := m.Called(period, date)
	return args.String(0)
}

func (m *StatsCache) GetStats(ctx context.Context, key string) (*domain.OrderStats, error) {
	args := m.Called(ctx, key)
	var stats *domain.OrderStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.OrderStats)
	}
	return stats, args.Error(1)
}

func (m *StatsCache) SetStats(ctx context.Context, key string, stats *domain.OrderStats) error {
	args := m.Called(ctx, key, stats)
	return args.Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t mockConstructorTestingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
