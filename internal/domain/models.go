package domain

import "time"

type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsVeg       bool      `json:"is_veg"`
	SpiceLevel  int       `json:"spice_level"`
	Rating      float64   `json:"rating"`
	PrepTime    string    `json:"prep_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItemUpdate carries a partial update; nil fields keep the stored value.
type MenuItemUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsVeg       *bool    `json:"is_veg"`
	SpiceLevel  *int     `json:"spice_level"`
	PrepTime    *string  `json:"prep_time"`
	IsAvailable *bool    `json:"is_available"`
}

type Account struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// OrderLine keeps the price captured at order creation time. Name,
// description and category are joined from the live catalog at read time.
type OrderLine struct {
	MenuItemID  int     `json:"menu_item_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// Order.CustomerID is nil only for the degraded guest fallback, where the
// guest identity is packed into the delivery address instead.
type Order struct {
	ID                  int         `json:"id"`
	OrderNumber         string      `json:"order_number"`
	CustomerID          *int        `json:"customer_id"`
	CustomerName        string      `json:"customer_name,omitempty"`
	CustomerEmail       string      `json:"customer_email,omitempty"`
	CustomerPhone       string      `json:"customer_phone,omitempty"`
	TotalAmount         float64     `json:"total_amount"`
	Status              string      `json:"status"`
	DeliveryAddress     string      `json:"delivery_address,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	OrderDate           time.Time   `json:"order_date"`
	UpdatedAt           time.Time   `json:"updated_at"`
	Items               []OrderLine `json:"items,omitempty"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var orderStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusPreparing: {},
	StatusReady:     {},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ValidOrderStatus checks membership only; any recognized status may replace
// any other.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatuses[status]
	return ok
}

type OrderLineRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type OrderRequest struct {
	Items               []OrderLineRequest `json:"items"`
	DeliveryAddress     string             `json:"delivery_address"`
	SpecialInstructions string             `json:"special_instructions"`
}

// GuestOrderRequest.TotalAmount is the client-computed figure; it is never
// persisted, the server recomputes the total from the catalog.
type GuestOrderRequest struct {
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone"`
	CustomerEmail       string             `json:"customer_email"`
	DeliveryAddress     string             `json:"delivery_address"`
	SpecialInstructions string             `json:"special_instructions"`
	Items               []OrderLineRequest `json:"items"`
	TotalAmount         float64            `json:"total_amount"`
}

type OrderStats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	UniqueCustomers   int     `json:"unique_customers"`
	CompletedOrders   int     `json:"completed_orders"`
	PendingOrders     int     `json:"pending_orders"`
	PreparingOrders   int     `json:"preparing_orders"`
}

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
