package service

import "errors"

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemUnavailable = errors.New("menu item not found or unavailable")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrGuestProfile    = errors.New("customer name, phone and email are required")
	ErrInvalidMenuItem = errors.New("name, description, positive price and category are required")
)
