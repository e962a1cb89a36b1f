package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

// guestPlacement is one tier of the guest checkout fallback chain. resolve
// yields the owner reference and the delivery address to persist with the
// order; a failing tier is logged and the next one is tried.
type guestPlacement struct {
	name    string
	resolve func(ctx context.Context) (customerID *int, deliveryAddress string, err error)
}

// guestPlacements builds the ordered fallback tiers for a guest checkout:
// reuse-or-provision an account, then an account-less order carrying the
// guest identity in the address text, then a synthetic throwaway account.
func (s *OrderService) guestPlacements(req domain.GuestOrderRequest) []guestPlacement {
	firstName, lastName := splitDisplayName(req.CustomerName)

	return []guestPlacement{
		{
			name: "resolved-account",
			resolve: func(ctx context.Context) (*int, string, error) {
				id, found, err := s.accounts.FindActiveCustomerByEmail(req.CustomerEmail)
				if err != nil {
					return nil, "", err
				}
				if found {
					return &id, req.DeliveryAddress, nil
				}
				now := time.Now().UnixMilli()
				account := &domain.Account{
					Email:     req.CustomerEmail,
					Password:  fmt.Sprintf("guest_%d", now),
					FirstName: firstName,
					LastName:  lastName,
					Role:      domain.RoleCustomer,
					IsActive:  true,
				}
				if err := s.accounts.InsertAccount(account); err != nil {
					return nil, "", err
				}
				return &account.ID, req.DeliveryAddress, nil
			},
		},
		{
			name: "account-less",
			resolve: func(ctx context.Context) (*int, string, error) {
				address := req.DeliveryAddress
				if address == "" {
					address = "N/A"
				}
				packed := fmt.Sprintf("%s, %s, %s. Address: %s",
					req.CustomerName, req.CustomerPhone, req.CustomerEmail, address)
				return nil, packed, nil
			},
		},
		{
			name: "synthetic-account",
			resolve: func(ctx context.Context) (*int, string, error) {
				now := time.Now().UnixMilli()
				account := &domain.Account{
					Email:     fmt.Sprintf("guest_%d@temp.com", now),
					Password:  fmt.Sprintf("temp_%d", now),
					FirstName: firstName,
					LastName:  lastName,
					Role:      domain.RoleCustomer,
					IsActive:  true,
				}
				if err := s.accounts.InsertAccount(account); err != nil {
					return nil, "", err
				}
				return &account.ID, req.DeliveryAddress, nil
			},
		},
	}
}

// splitDisplayName takes the first token as the first name and joins the
// rest as the last name, possibly empty.
func splitDisplayName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
