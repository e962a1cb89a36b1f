package service

import (
	"context"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type MenuServiceInterface interface {
	ListItems(category string, isVeg *bool) ([]domain.MenuItem, error)
	GetItem(id int) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error)
	DeleteItem(id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, customerID int, req domain.OrderRequest) (*domain.Order, error)
	CreateGuest(ctx context.Context, req domain.GuestOrderRequest) (*domain.Order, error)
	SetStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
	List(callerID int, callerRole, status, date string) ([]domain.Order, error)
	Get(callerID int, callerRole string, orderID int) (*domain.Order, error)
	Stats(ctx context.Context, period, date string) (*domain.OrderStats, error)
}

type MenuRepository interface {
	ListItems(category string, isVeg *bool) ([]domain.MenuItem, error)
	GetItem(id int) (*domain.MenuItem, error)
	InsertItem(item *domain.MenuItem) error
	UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error)
	SoftDeleteItem(id int) (bool, error)
	PriceAndAvailability(id int) (float64, bool, error)
}

type AccountRepository interface {
	FindActiveCustomerByEmail(email string) (int, bool, error)
	InsertAccount(account *domain.Account) error
}

type OrderRepository interface {
	InsertOrderWithLines(order *domain.Order) error
	UpdateStatus(orderID int, status string) (*domain.Order, error)
	ListOrders(customerID *int, status, date string) ([]domain.Order, error)
	GetOrder(orderID int, customerID *int) (*domain.Order, error)
	ListOrderLines(orderID int) ([]domain.OrderLine, error)
	Stats(period, date string) (*domain.OrderStats, error)
}

type StatsCache interface {
	StatsKey(period, date string) string
	GetStats(ctx context.Context, key string) (*domain.OrderStats, error)
	SetStats(ctx context.Context, key string, stats *domain.OrderStats) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
