package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type OrderService struct {
	orders    OrderRepository
	menu      MenuRepository
	accounts  AccountRepository
	cache     StatsCache
	publisher OrderPublisher
}

func NewOrderService(orders OrderRepository, menu MenuRepository, accounts AccountRepository, cache StatsCache, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		menu:      menu,
		accounts:  accounts,
		cache:     cache,
		publisher: publisher,
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("EC%d", time.Now().UnixMilli())
}

// priceLines reads price and availability for every requested line and
// computes the authoritative total from that snapshot. Any missing or
// unavailable item fails the whole order.
func (s *OrderService) priceLines(items []domain.OrderLineRequest) ([]domain.OrderLine, float64, error) {
	if len(items) == 0 {
		return nil, 0, ErrEmptyOrder
	}

	lines := make([]domain.OrderLine, 0, len(items))
	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, 0, fmt.Errorf("menu item %d: %w", item.MenuItemID, ErrInvalidQuantity)
		}
		price, available, err := s.menu.PriceAndAvailability(item.MenuItemID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read menu item %d: %w", item.MenuItemID, err)
		}
		if !available {
			return nil, 0, fmt.Errorf("menu item %d: %w", item.MenuItemID, ErrItemUnavailable)
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      price,
		})
		total += price * float64(item.Quantity)
	}
	return lines, total, nil
}

func (s *OrderService) Create(ctx context.Context, customerID int, req domain.OrderRequest) (*domain.Order, error) {
	lines, total, err := s.priceLines(req.Items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderNumber:         newOrderNumber(),
		CustomerID:          &customerID,
		TotalAmount:         total,
		Status:              domain.StatusPending,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		Items:               lines,
	}
	if err := s.orders.InsertOrderWithLines(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish(ctx, "order_created", order)
	return order, nil
}

// CreateGuest places an order for a walk-in customer, resolving identity
// through the fallback tiers in guestPlacements. Tier failures are swallowed
// and logged; only exhaustion of every tier surfaces to the caller.
func (s *OrderService) CreateGuest(ctx context.Context, req domain.GuestOrderRequest) (*domain.Order, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.CustomerEmail == "" {
		return nil, ErrGuestProfile
	}
	log.Printf("Guest checkout for %s (phone %s)", req.CustomerEmail, req.CustomerPhone)

	lines, total, err := s.priceLines(req.Items)
	if err != nil {
		return nil, err
	}
	if req.TotalAmount != 0 && req.TotalAmount != total {
		log.Printf("Guest total mismatch for %s: client sent %.2f, server computed %.2f",
			req.CustomerEmail, req.TotalAmount, total)
	}

	orderNumber := newOrderNumber()

	var lastErr error
	for _, tier := range s.guestPlacements(req) {
		customerID, address, err := tier.resolve(ctx)
		if err != nil {
			log.Printf("Guest placement %q failed for %s: %v", tier.name, req.CustomerEmail, err)
			lastErr = err
			continue
		}

		order := &domain.Order{
			OrderNumber:         orderNumber,
			CustomerID:          customerID,
			TotalAmount:         total,
			Status:              domain.StatusPending,
			DeliveryAddress:     address,
			SpecialInstructions: req.SpecialInstructions,
			Items:               lines,
		}
		if err := s.orders.InsertOrderWithLines(order); err != nil {
			log.Printf("Guest placement %q failed to persist order %s: %v", tier.name, orderNumber, err)
			lastErr = err
			continue
		}

		order.CustomerName = req.CustomerName
		order.CustomerEmail = req.CustomerEmail
		order.CustomerPhone = req.CustomerPhone
		s.publish(ctx, "order_created", order)
		return order, nil
	}

	return nil, fmt.Errorf("failed to create guest order: %w", lastErr)
}

func (s *OrderService) SetStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.UpdateStatus(orderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.publish(ctx, "status_changed", order)
	return order, nil
}

func (s *OrderService) List(callerID int, callerRole, status, date string) ([]domain.Order, error) {
	var owner *int
	if callerRole == domain.RoleCustomer {
		owner = &callerID
	}

	orders, err := s.orders.ListOrders(owner, status, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range orders {
		lines, err := s.orders.ListOrderLines(orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items for order %d: %w", orders[i].ID, err)
		}
		orders[i].Items = lines
	}
	return orders, nil
}

func (s *OrderService) Get(callerID int, callerRole string, orderID int) (*domain.Order, error) {
	var owner *int
	if callerRole == domain.RoleCustomer {
		owner = &callerID
	}

	order, err := s.orders.GetOrder(orderID, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	order.Items, err = s.orders.ListOrderLines(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for order %d: %w", orderID, err)
	}
	return order, nil
}

func (s *OrderService) Stats(ctx context.Context, period, date string) (*domain.OrderStats, error) {
	if period == "" {
		period = "today"
	}

	var key string
	if s.cache != nil {
		key = s.cache.StatsKey(period, date)
		if cached, err := s.cache.GetStats(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	stats, err := s.orders.Stats(period, date)
	if err != nil {
		return nil, fmt.Errorf("failed to compute order stats: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, key, stats); err != nil {
			log.Printf("Warning: failed to cache order stats: %v", err)
		}
	}
	return stats, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s event for order %d: %v", eventType, order.ID, err)
	}
}
